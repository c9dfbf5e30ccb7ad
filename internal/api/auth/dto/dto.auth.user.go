package authdto

// UserRegisterInput đầu vào đăng ký tài khoản.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone"`
}

// UserLoginInput đầu vào đăng nhập.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name      string `json:"name" validate:"omitempty,no_xss"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserSetRoleInput đầu vào gán role cho người dùng (admin).
type UserSetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
