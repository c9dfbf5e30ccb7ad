// Package router đăng ký các route thuộc domain insights.
package router

import (
	"github.com/gofiber/fiber/v3"

	models "spa_booking/internal/api/auth/models"
	insightshdl "spa_booking/internal/api/insights/handler"
	"spa_booking/internal/api/middleware"
	apirouter "spa_booking/internal/api/router"
)

// Register đăng ký tất cả route insights lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	insightsHandler := insightshdl.NewInsightsHandler()

	staffGuard := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleStaff, models.RoleManager),
	}
	managerGuard := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleManager),
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/insights", "GET", "/conversations", staffGuard, insightsHandler.HandleGetConversations)
	apirouter.RegisterRouteWithMiddleware(v1, "/insights", "GET", "/confirmed-bookings", managerGuard, insightsHandler.HandleGetConfirmedBookings)
	return nil
}
