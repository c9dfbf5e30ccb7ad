// Package basehdl cung cấp base handler generic cho các domain handler.
// Mỗi domain handler embed BaseHandler để có sẵn CRUD, parse/validate input và response chuẩn.
package basehdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basesvc "spa_booking/internal/api/base/service"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
)

// BaseHandler là handler generic cho một model với DTO tạo mới và cập nhật riêng.
// Type Parameters:
//   - T: Kiểu dữ liệu của model
//   - CreateInput: DTO cho thao tác tạo mới
//   - UpdateInput: DTO cho thao tác cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
	}
}

// ParseRequestBody parse request body JSON vào struct đích
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body rỗng")
	}
	return json.Unmarshal(body, out)
}

// ValidateInput validate dữ liệu đầu vào với validator từ global (struct tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// GetPaginationParams đọc page/limit từ query string với giá trị mặc định
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetPaginationParams(c fiber.Ctx) (page int64, limit int64) {
	page = 1
	limit = 10

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.ParseInt(pageStr, 10, 64); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	return page, limit
}
