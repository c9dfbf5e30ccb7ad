// Package router chứa hạ tầng định tuyến dùng chung cho các domain router.
package router

import (
	"github.com/gofiber/fiber/v3"

	"spa_booking/internal/api/middleware"
)

// LƯU Ý FIBER V3: Group.Use đăng ký middleware khớp theo prefix cho MỌI route
// đăng ký sau đó dưới cùng prefix, nên guard của route này sẽ rò sang route khác.
// Middleware theo route phải gắn thẳng vào chuỗi handler của route
// (router.Get(path, handler, middleware...) - handler đứng trước, middleware chạy trước).
// Luôn dùng RegisterRouteWithMiddleware cho route cần middleware.

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	InsOne   bool // Insert One
	Find     bool // Find All
	FindById bool // Find By Id
	Paginate bool // Find With Pagination
	UpdById  bool // Update By Id
	DelById  bool // Delete By Id
	Count    bool // Count Documents
}

// RoleConfig quy định role được phép cho từng nhóm operation.
// Nil slice nghĩa là chỉ cần đăng nhập, không giới hạn role.
type RoleConfig struct {
	Read   []string
	Write  []string
	Delete []string
}

// Config dùng chung cho các collection
var (
	// ReadOnlyConfig chỉ cho phép đọc (find, find-by-id, paginate, count).
	ReadOnlyConfig = CRUDConfig{
		InsOne: false,
		Find:   true, FindById: true, Paginate: true,
		UpdById: false, DelById: false,
		Count: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindById: true, Paginate: true,
		UpdById: true, DelById: true,
		Count: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware gắn theo từng route.
// Middleware chỉ áp cho đúng route này, không rò sang các route khác cùng prefix
// (xem lưu ý ở đầu file).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	fullPath := prefix
	if path != "" && path != "/" {
		fullPath = prefix + path
	}

	switch method {
	case "GET":
		router.Get(fullPath, handler, middlewares...)
	case "POST":
		router.Post(fullPath, handler, middlewares...)
	case "PUT":
		router.Put(fullPath, handler, middlewares...)
	case "DELETE":
		router.Delete(fullPath, handler, middlewares...)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một collection với guard theo role.
// Dùng từ domain router.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, roles RoleConfig) {
	authMiddleware := middleware.AuthMiddleware()
	readGuard := []fiber.Handler{authMiddleware, middleware.RequireRoles(roles.Read...)}
	writeGuard := []fiber.Handler{authMiddleware, middleware.RequireRoles(roles.Write...)}
	deleteGuard := []fiber.Handler{authMiddleware, middleware.RequireRoles(roles.Delete...)}

	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", writeGuard, h.InsertOne)
	}
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", readGuard, h.Find)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", readGuard, h.FindOneById)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", readGuard, h.FindWithPagination)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", writeGuard, h.UpdateById)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", deleteGuard, h.DeleteById)
	}
	if config.Count {
		// Count chỉ cần đăng nhập, không giới hạn role
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{authMiddleware}, h.CountDocuments)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
