// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	authhdl "spa_booking/internal/api/auth/handler"
	models "spa_booking/internal/api/auth/models"
	"spa_booking/internal/api/middleware"
	apirouter "spa_booking/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, admin, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	registerSystemRoutes(v1)
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) {
	router.Get("/system/health", func(c fiber.Ctx) error {
		return middleware.JSONResponse(c, 200, fiber.Map{
			"status": "ok",
			"time":   time.Now().UnixMilli(),
		})
	})
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)
	return nil
}

func registerAdminRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	adminGuard := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin)}
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/role", adminGuard, userHandler.HandleSetRole)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", adminGuard, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", adminGuard, userHandler.HandleUnBlockUser)

	// Danh sách người dùng chỉ đọc cho admin/manager
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig, apirouter.RoleConfig{
		Read: []string{models.RoleManager},
	})
	return nil
}
