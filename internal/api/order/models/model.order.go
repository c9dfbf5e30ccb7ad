// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng. Chỉ đơn Paid được tính vào thống kê doanh thu.
const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusCancelled = "Cancelled"
)

// OrderItem là một dòng hàng trong đơn
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Order định nghĩa mô hình đơn hàng.
// OrderCode là mã chia sẻ được cho khách, duy nhất toàn hệ thống,
// lưu dạng chữ thường để tra cứu không phân biệt hoa thường.
type Order struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID            primitive.ObjectID `json:"memberId" bson:"memberId" index:"single:1"`
	ServiceID           primitive.ObjectID `json:"serviceId" bson:"serviceId" index:"single:1"`
	OrderCode           string             `json:"orderCode" bson:"orderCode" index:"unique"`
	Amount              float64            `json:"amount" bson:"amount"`
	Currency            string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Description         string             `json:"description,omitempty" bson:"description,omitempty"`
	BuyerName           string             `json:"buyerName,omitempty" bson:"buyerName,omitempty"`
	BuyerEmail          string             `json:"buyerEmail,omitempty" bson:"buyerEmail,omitempty"`
	BuyerPhone          string             `json:"buyerPhone,omitempty" bson:"buyerPhone,omitempty"`
	BuyerAddress        string             `json:"buyerAddress,omitempty" bson:"buyerAddress,omitempty"`
	Items               []OrderItem        `json:"items,omitempty" bson:"items,omitempty"`
	PaymentMethod       string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentStatus       string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	Status              string             `json:"status" bson:"status" index:"single:1"`
	TransactionDateTime int64              `json:"transactionDateTime" bson:"transactionDateTime"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt"`
}

// MonthlyBucket là doanh thu và số đơn của một dịch vụ trong một tháng
type MonthlyBucket struct {
	Month        int     `json:"month" bson:"month"`
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
	TotalOrders  int64   `json:"totalOrders" bson:"totalOrders"`
}

// ServiceMonthlyRevenue là doanh thu theo tháng của một dịch vụ trong năm.
// Chỉ chứa các tháng có ít nhất một đơn Paid.
type ServiceMonthlyRevenue struct {
	ServiceID   primitive.ObjectID `json:"serviceId" bson:"serviceId"`
	ServiceName string             `json:"serviceName" bson:"serviceName"`
	Monthly     []MonthlyBucket    `json:"monthly" bson:"monthly"`
}
