// Package orderhdl - handler đơn hàng và thống kê doanh thu.
package orderhdl

import (
	"fmt"
	"strconv"

	orderdto "spa_booking/internal/api/order/dto"
	models "spa_booking/internal/api/order/models"
	ordersvc "spa_booking/internal/api/order/service"
	basehdl "spa_booking/internal/api/base/handler"
	"spa_booking/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request về đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

func (h *OrderHandler) getAuthUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "Chưa xác thực người dùng", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleCreateOrder tạo đơn hàng mới với caller là chủ sở hữu
func (h *OrderHandler) HandleCreateOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		memberID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.CreateOrder(c.Context(), memberID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreatedResponse(c, order)
		return nil
	})
}

// HandleGetMemberOrders trả về các đơn Paid của chính caller
func (h *OrderHandler) HandleGetMemberOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		memberID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		orders, err := h.orderService.FindOrdersByMember(c.Context(), memberID)
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleGetAllOrders trả về toàn bộ đơn hàng (admin/manager)
func (h *OrderHandler) HandleGetAllOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orders, err := h.orderService.FindAllOrders(c.Context())
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleGetTotalRevenue trả về tổng doanh thu của các đơn Paid
func (h *OrderHandler) HandleGetTotalRevenue(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		totalRevenue, err := h.orderService.TotalRevenue(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"totalRevenue": totalRevenue}, nil)
		return nil
	})
}

// HandleGetMostOrderedService trả về dịch vụ được đặt nhiều nhất
func (h *OrderHandler) HandleGetMostOrderedService(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.orderService.MostOrderedService(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"service": result.Service, "orderCount": result.OrderCount}, nil)
		return nil
	})
}

// HandleGetMonthlyRevenueByService trả về doanh thu theo tháng của từng dịch vụ trong năm
func (h *OrderHandler) HandleGetMonthlyRevenueByService(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		year, err := h.getYearParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		results, err := h.orderService.MonthlyRevenueByService(c.Context(), year)
		h.HandleResponse(c, results, err)
		return nil
	})
}

// HandleGetDashboardStats trả về thống kê tổng hợp cho dashboard.
// Query: status (Pending|Paid|Cancelled), scope (day|month|year), day, month, year.
func (h *OrderHandler) HandleGetDashboardStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := ordersvc.DashboardFilter{
			Status: c.Query("status"),
			Scope:  c.Query("scope"),
			Day:    c.Query("day"),
		}
		if monthStr := c.Query("month"); monthStr != "" {
			if month, err := strconv.Atoi(monthStr); err == nil {
				filter.Month = month
			}
		}
		if yearStr := c.Query("year"); yearStr != "" {
			if year, err := strconv.Atoi(yearStr); err == nil {
				filter.Year = year
			}
		}

		stats, err := h.orderService.DashboardStats(c.Context(), filter)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleExportMonthlyRevenue trả về file xlsx doanh thu theo tháng của từng dịch vụ
func (h *OrderHandler) HandleExportMonthlyRevenue(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		year, err := h.getYearParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		buf, err := h.orderService.ExportMonthlyRevenue(c.Context(), year)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="monthly-revenue-%d.xlsx"`, year))
		return c.Send(buf.Bytes())
	})
}

// HandleGetOrderByCode tra cứu đơn theo mã, không phân biệt hoa thường
func (h *OrderHandler) HandleGetOrderByCode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orderCode := c.Params("orderCode")
		if orderCode == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Mã đơn hàng không được để trống", common.StatusBadRequest, nil))
			return nil
		}
		order, err := h.orderService.FindByOrderCode(c.Context(), orderCode)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleDeleteOrder xóa đơn hàng của chính caller
func (h *OrderHandler) HandleDeleteOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		memberID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		orderID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.orderService.DeleteOwnedOrder(c.Context(), orderID, memberID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

func (h *OrderHandler) getYearParam(c fiber.Ctx) (int, error) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return 0, common.NewError(common.ErrCodeValidationInput, "Thiếu query param year", common.StatusBadRequest, nil)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, common.NewError(common.ErrCodeValidationFormat, "year phải là số nguyên", common.StatusBadRequest, nil)
	}
	return year, nil
}
