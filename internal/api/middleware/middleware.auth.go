package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "spa_booking/internal/api/auth/models"
	authsvc "spa_booking/internal/api/auth/service"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
	"spa_booking/internal/logger"
	"spa_booking/internal/utility"
)

var (
	authUserService     *authsvc.UserService
	authUserServiceOnce sync.Once
)

// getAuthUserService trả về instance duy nhất của UserService cho middleware (singleton)
func getAuthUserService() *authsvc.UserService {
	authUserServiceOnce.Do(func() {
		var err error
		authUserService, err = authsvc.NewUserService()
		if err != nil {
			panic(err)
		}
	})
	return authUserService
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực JWT trong header Authorization, đối chiếu với token đang lưu
// của người dùng (token bị thu hồi khi logout, đổi mật khẩu, đổi role hoặc bị khóa).
func AuthMiddleware() fiber.Handler {
	userService := getAuthUserService()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		const bearerPrefix = "Bearer "
		if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := authHeader[len(bearerPrefix):]

		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("JWT không hợp lệ hoặc đã hết hạn")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Đối chiếu với token đang lưu, token cũ đã bị thu hồi sẽ không còn trong DB
		user, err := userService.FindByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"subject": claims.Subject,
			}).Warn("Token không còn hiệu lực")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRoles middleware kiểm tra role của người dùng đã xác thực.
// Không truyền role nào nghĩa là chỉ cần đăng nhập.
// Admin luôn được phép.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		if len(allowed) == 0 {
			return c.Next()
		}

		userVal := c.Locals("user")
		user, ok := userVal.(models.User)
		if !ok {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuth, "Chưa xác thực người dùng", common.StatusUnauthorized, nil))
			return nil
		}

		if user.Role == models.RoleAdmin {
			return c.Next()
		}
		if _, ok := allowed[user.Role]; ok {
			return c.Next()
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"role":    user.Role,
			"path":    c.Path(),
		}).Warn("Người dùng không có quyền truy cập")
		HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuthRole,
			"Bạn không có quyền thực hiện thao tác này",
			common.StatusForbidden,
			nil,
		))
		return nil
	}
}
