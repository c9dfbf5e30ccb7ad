// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "spa_booking/internal/api/auth/dto"
	models "spa_booking/internal/api/auth/models"
	basesvc "spa_booking/internal/api/base/service"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
	"spa_booking/internal/logger"
	"spa_booking/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới với role mặc định là member.
// Email trùng trả về lỗi DB_001 (duplicate) từ unique index.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (models.User, error) {
	var zero models.User

	_, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Email đã được sử dụng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.Phone,
		Role:     models.RoleMember,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("email", created.Email).Info("Đăng ký tài khoản mới")
	return created, nil
}

// Login xác thực email/mật khẩu và phát hành JWT mới.
// Token mới nhất được lưu vào document người dùng để middleware đối chiếu.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrInvalidCredentials
		}
		return zero, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return zero, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return zero, common.ErrUserBlocked
	}

	token, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		user.Role,
		global.MongoDB_ServerConfig.JwtExpireHours,
	)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token xác thực", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	updated, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("email", user.Email).Info("Đăng nhập thành công")
	return updated, nil
}

// Logout đăng xuất người dùng, xóa token đã phát hành
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": ""},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}

// ChangeInfo cập nhật thông tin hồ sơ của chính người dùng
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (models.User, error) {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.AvatarURL != "" {
		set["avatarUrl"] = input.AvatarURL
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, userID)
	}
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
}

// ChangePassword đổi mật khẩu sau khi kiểm tra mật khẩu cũ.
// Đổi mật khẩu thành công sẽ thu hồi token hiện tại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không đúng", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": string(hashed),
			"token":    "",
		},
	})
	return err
}

// SetRole gán role cho người dùng theo email (chỉ admin)
func (s *UserService) SetRole(ctx context.Context, input *authdto.UserSetRoleInput) (models.User, error) {
	var zero models.User
	if !models.ValidRole(input.Role) {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Role '%s' không hợp lệ", input.Role), common.StatusBadRequest, nil)
	}

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"role":  input.Role,
			"token": "",
		},
	})
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("email", input.Email).WithField("role", input.Role).Info("Gán role cho người dùng")
	return updated, nil
}

// BlockUser khóa tài khoản người dùng theo email, thu hồi token hiện tại
func (s *UserService) BlockUser(ctx context.Context, input *authdto.BlockUserInput) (models.User, error) {
	var zero models.User
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
			"token":     "",
		},
	})
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("email", input.Email).WithField("note", input.Note).Warn("Khóa tài khoản người dùng")
	return updated, nil
}

// UnBlockUser mở khóa tài khoản người dùng theo email
func (s *UserService) UnBlockUser(ctx context.Context, input *authdto.UnBlockUserInput) (models.User, error) {
	var zero models.User
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	})
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("email", input.Email).Info("Mở khóa tài khoản người dùng")
	return updated, nil
}

// FindByToken tìm người dùng theo token đã phát hành.
// Middleware dùng để đối chiếu token trong JWT với token đang lưu.
func (s *UserService) FindByToken(ctx context.Context, token string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"token": token}, nil)
}
