package router

import (
	"net/http/httptest"
	"testing"

	authmodels "spa_booking/internal/api/auth/models"
	"spa_booking/internal/api/middleware"
	"spa_booking/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth giả lập bước xác thực: đọc role từ header X-Test-Role,
// không có header thì trả 401 như thiếu token.
func fakeAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		role := c.Get("X-Test-Role")
		if role == "" {
			return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
				"code":    common.ErrCodeAuthToken.Code,
				"message": common.MsgTokenMissing,
				"status":  "error",
			})
		}
		c.Locals("user", authmodels.User{Role: role})
		return c.Next()
	}
}

func okHandler(c fiber.Ctx) error {
	return c.Status(common.StatusOK).JSON(fiber.Map{"status": "success"})
}

// newOrderTierApp dựng app với các tầng route như domain order:
// guard manager đăng ký trước, route public đăng ký sau cùng prefix,
// cuối cùng là wildcard chỉ cần đăng nhập.
func newOrderTierApp() *fiber.App {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	v1 := app.Group("/api/v1")

	authOnly := []fiber.Handler{fakeAuth()}
	managerGuard := []fiber.Handler{fakeAuth(), middleware.RequireRoles(authmodels.RoleManager)}

	RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", authOnly, okHandler)
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/dashboard-stats", managerGuard, okHandler)
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/export-monthly-revenue", managerGuard, okHandler)
	v1.Get("/orders/revenue", okHandler)
	v1.Get("/orders/most-ordered-service", okHandler)
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:orderCode", authOnly, okHandler)
	RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/:id", authOnly, okHandler)

	return app
}

func request(t *testing.T, app *fiber.App, method string, path string, role string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestOrderRoutes_PublicEndpointsNeedNoAuth(t *testing.T) {
	app := newOrderTierApp()

	// Guard của route khác cùng prefix /orders không được chặn route public
	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/orders/revenue", ""))
	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/orders/most-ordered-service", ""))
}

func TestOrderRoutes_MemberTier(t *testing.T) {
	app := newOrderTierApp()

	// Member truy cập được route chỉ cần đăng nhập, kể cả khi route
	// manager-only đăng ký trước đó dưới cùng prefix
	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/orders/ord-123-4567", "member"))
	assert.Equal(t, common.StatusOK, request(t, app, "DELETE", "/api/v1/orders/64f0c1e2a3b4c5d6e7f80910", "member"))
	assert.Equal(t, common.StatusOK, request(t, app, "POST", "/api/v1/orders", "member"))

	// Chưa đăng nhập thì bị chặn
	assert.Equal(t, common.StatusUnauthorized, request(t, app, "GET", "/api/v1/orders/ord-123-4567", ""))
	assert.Equal(t, common.StatusUnauthorized, request(t, app, "DELETE", "/api/v1/orders/64f0c1e2a3b4c5d6e7f80910", ""))
}

func TestOrderRoutes_ManagerTier(t *testing.T) {
	app := newOrderTierApp()

	assert.Equal(t, common.StatusForbidden, request(t, app, "GET", "/api/v1/orders/dashboard-stats", "member"))
	assert.Equal(t, common.StatusForbidden, request(t, app, "GET", "/api/v1/orders/export-monthly-revenue", "staff"))

	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/orders/dashboard-stats", "manager"))
	// Admin luôn được phép
	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/orders/dashboard-stats", "admin"))
}

func TestRegisterRouteWithMiddleware_NoPrefixLeak(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	v1 := app.Group("/api/v1")

	denyAll := func(c fiber.Ctx) error {
		return c.SendStatus(common.StatusForbidden)
	}
	RegisterRouteWithMiddleware(v1, "/things", "GET", "/guarded", []fiber.Handler{denyAll}, okHandler)
	v1.Get("/things/open", okHandler)

	assert.Equal(t, common.StatusForbidden, request(t, app, "GET", "/api/v1/things/guarded", ""))
	assert.Equal(t, common.StatusOK, request(t, app, "GET", "/api/v1/things/open", ""))
}
