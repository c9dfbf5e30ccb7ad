// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	authdto "spa_booking/internal/api/auth/dto"
	models "spa_booking/internal/api/auth/models"
	authsvc "spa_booking/internal/api/auth/service"
	basehdl "spa_booking/internal/api/base/handler"
	"spa_booking/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// getAuthUserID đọc user_id từ Locals (do AuthMiddleware set)
func (h *UserHandler) getAuthUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleRegister xử lý đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleCreatedResponse(c, user)
		return nil
	})
}

// HandleLogin xử lý đăng nhập, trả về user kèm token mới
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Login(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.userService.Logout(c.Context(), objID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.ChangeInfo(c.Context(), objID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng đang đăng nhập
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.getAuthUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), objID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetRole gán role cho người dùng theo email (admin)
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserSetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetRole(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleBlockUser khóa tài khoản người dùng (admin)
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.BlockUser(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUnBlockUser mở khóa tài khoản người dùng (admin)
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UnBlockUser(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}
