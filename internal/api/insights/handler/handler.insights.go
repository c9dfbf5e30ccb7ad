// Package insightshdl - handler phân tích hội thoại chatbot.
package insightshdl

import (
	"errors"
	"runtime/debug"
	"strconv"

	insightssvc "spa_booking/internal/api/insights/service"
	"spa_booking/internal/api/middleware"
	"spa_booking/internal/common"

	"github.com/gofiber/fiber/v3"
)

// InsightsHandler xử lý các request phân tích hội thoại
type InsightsHandler struct {
	insightsService *insightssvc.InsightsService
}

// NewInsightsHandler tạo instance mới của InsightsHandler
func NewInsightsHandler() *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightssvc.NewInsightsService(),
	}
}

// parseQuery đọc tiêu chí lọc và trang từ query string
func (h *InsightsHandler) parseQuery(c fiber.Ctx) (insightssvc.FilterCriteria, int) {
	criteria := insightssvc.FilterCriteria{
		Date:      c.Query("date"),
		Sentiment: c.Query("sentiment"),
		Keyword:   c.Query("keyword"),
	}
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	return criteria, page
}

// respond trả kết quả hoặc lỗi theo envelope chuẩn
func (h *InsightsHandler) respond(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			middleware.HandleErrorResponse(c, customErr)
			return
		}
		middleware.HandleErrorResponse(c, err)
		return
	}
	middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// safeHandler bọc handler với recover để bắt panic
func (h *InsightsHandler) safeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			middleware.HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleGetConversations trả về một trang hội thoại sau lọc.
// Query: date (YYYY-MM-DD), sentiment, keyword, page.
func (h *InsightsHandler) HandleGetConversations(c fiber.Ctx) error {
	return h.safeHandler(c, func() error {
		criteria, page := h.parseQuery(c)
		result, err := h.insightsService.Conversations(c.Context(), criteria, page)
		h.respond(c, result, err)
		return nil
	})
}

// HandleGetConfirmedBookings trả về một trang hội thoại có đặt lịch thành công
func (h *InsightsHandler) HandleGetConfirmedBookings(c fiber.Ctx) error {
	return h.safeHandler(c, func() error {
		criteria, page := h.parseQuery(c)
		result, err := h.insightsService.ConfirmedBookings(c.Context(), criteria, page)
		h.respond(c, result, err)
		return nil
	})
}
