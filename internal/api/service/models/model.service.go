// Package models - model dịch vụ (Service) của spa.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service định nghĩa một dịch vụ trong catalog.
// Duration là thời lượng thực hiện tính bằng phút.
type Service struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int64              `json:"duration,omitempty" bson:"duration,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// ServiceDetailStats là thống kê chi tiết của một dịch vụ:
// tổng đơn Paid, tổng doanh thu và điểm đánh giá trung bình.
type ServiceDetailStats struct {
	ServiceID    primitive.ObjectID `json:"serviceId"`
	Name         string             `json:"name"`
	Price        float64            `json:"price"`
	TotalOrders  int64              `json:"totalOrders"`
	TotalRevenue float64            `json:"totalRevenue"`
	AvgRating    float64            `json:"avgRating"`
}
