// Package feedbackhdl - handler đánh giá dịch vụ.
package feedbackhdl

import (
	"fmt"

	basehdl "spa_booking/internal/api/base/handler"
	feedbackdto "spa_booking/internal/api/feedback/dto"
	models "spa_booking/internal/api/feedback/models"
	feedbacksvc "spa_booking/internal/api/feedback/service"
	"spa_booking/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackHandler xử lý các request về đánh giá dịch vụ
type FeedbackHandler struct {
	*basehdl.BaseHandler[models.Feedback, feedbackdto.FeedbackCreateInput, feedbackdto.FeedbackCreateInput]
	feedbackService *feedbacksvc.FeedbackService
}

// NewFeedbackHandler tạo instance mới của FeedbackHandler
func NewFeedbackHandler() (*FeedbackHandler, error) {
	feedbackService, err := feedbacksvc.NewFeedbackService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Feedback, feedbackdto.FeedbackCreateInput, feedbackdto.FeedbackCreateInput](feedbackService)
	return &FeedbackHandler{
		BaseHandler:     baseHandler,
		feedbackService: feedbackService,
	}, nil
}

// HandleCreateFeedback tạo đánh giá mới của caller cho một dịch vụ
func (h *FeedbackHandler) HandleCreateFeedback(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Chưa xác thực người dùng", common.StatusUnauthorized, nil))
			return nil
		}
		memberID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		var input feedbackdto.FeedbackCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		feedback, err := h.feedbackService.CreateFeedback(c.Context(), memberID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreatedResponse(c, feedback)
		return nil
	})
}

// HandleGetServiceRating trả về điểm trung bình và số lượt đánh giá của một dịch vụ
func (h *FeedbackHandler) HandleGetServiceRating(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		serviceID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		ratings, err := h.feedbackService.ServiceRating(c.Context(), serviceID)
		h.HandleResponse(c, ratings, err)
		return nil
	})
}
