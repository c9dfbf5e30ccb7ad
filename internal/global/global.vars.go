package global

import (
	"spa_booking/config"
	"spa_booking/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users     string // Tên collection cho người dùng
	Services  string // Tên collection cho dịch vụ spa
	Orders    string // Tên collection cho đơn đặt dịch vụ
	Feedbacks string // Tên collection cho đánh giá dịch vụ
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:     "users",
	Services:  "services",
	Orders:    "orders",
	Feedbacks: "feedbacks",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
