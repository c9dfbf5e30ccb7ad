// Package router đăng ký các route thuộc domain service.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "spa_booking/internal/api/auth/models"
	"spa_booking/internal/api/middleware"
	apirouter "spa_booking/internal/api/router"
	servicehdl "spa_booking/internal/api/service/handler"
)

// Register đăng ký tất cả route service lên v1.
// Route tĩnh detail-stats phải đứng trước wildcard /:id.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	catalogHandler, err := servicehdl.NewCatalogHandler()
	if err != nil {
		return fmt.Errorf("failed to create catalog handler: %w", err)
	}

	v1.Get("/services", catalogHandler.Find)
	v1.Get("/services/detail-stats/:id", catalogHandler.HandleGetDetailStats)
	v1.Get("/services/:id", catalogHandler.FindOneById)

	managerGuard := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireRoles(authmodels.RoleManager)}
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "POST", "/", managerGuard, catalogHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "PUT", "/:id", managerGuard, catalogHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "DELETE", "/:id", managerGuard, catalogHandler.DeleteById)
	return nil
}
