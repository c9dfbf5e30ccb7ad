// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	models "spa_booking/internal/api/auth/models"
	"spa_booking/internal/api/middleware"
	orderhdl "spa_booking/internal/api/order/handler"
	apirouter "spa_booking/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
// Các path tĩnh phải đăng ký trước route wildcard /:orderCode để không bị che.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	authOnly := []fiber.Handler{middleware.AuthMiddleware()}
	managerGuard := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleManager)}

	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", authOnly, orderHandler.HandleCreateOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/member", authOnly, orderHandler.HandleGetMemberOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", managerGuard, orderHandler.HandleGetAllOrders)
	v1.Get("/orders/revenue", orderHandler.HandleGetTotalRevenue)
	v1.Get("/orders/most-ordered-service", orderHandler.HandleGetMostOrderedService)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/monthly-revenue-by-service", managerGuard, orderHandler.HandleGetMonthlyRevenueByService)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/dashboard-stats", managerGuard, orderHandler.HandleGetDashboardStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/export-monthly-revenue", managerGuard, orderHandler.HandleExportMonthlyRevenue)

	// Wildcard đăng ký cuối cùng
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:orderCode", authOnly, orderHandler.HandleGetOrderByCode)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/:id", authOnly, orderHandler.HandleDeleteOrder)
	return nil
}
