// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role của hệ thống. Member là role mặc định khi đăng ký.
const (
	RoleMember  = "member"
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User định nghĩa mô hình người dùng.
// Token chứa JWT xác thực mới nhất của người dùng, bị xóa khi logout.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string             `json:"role" bson:"role"`
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Token     string             `json:"token,omitempty" bson:"token"`
	IsBlock   bool               `json:"-" bson:"isBlock"`
	BlockNote string             `json:"-" bson:"blockNote"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ValidRole kiểm tra role có thuộc danh sách role hệ thống hay không
func ValidRole(role string) bool {
	switch role {
	case RoleMember, RoleStaff, RoleManager, RoleAdmin:
		return true
	}
	return false
}
