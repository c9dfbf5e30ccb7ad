// Package router đăng ký các route thuộc domain feedback.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	feedbackhdl "spa_booking/internal/api/feedback/handler"
	"spa_booking/internal/api/middleware"
	apirouter "spa_booking/internal/api/router"
)

// Register đăng ký tất cả route feedback lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	feedbackHandler, err := feedbackhdl.NewFeedbackHandler()
	if err != nil {
		return fmt.Errorf("failed to create feedback handler: %w", err)
	}

	v1.Get("/feedbacks/service-rating/:id", feedbackHandler.HandleGetServiceRating)

	authOnly := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/feedbacks", "POST", "/", authOnly, feedbackHandler.HandleCreateFeedback)
	return nil
}
