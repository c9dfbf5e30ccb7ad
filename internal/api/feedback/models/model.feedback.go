// Package models - model đánh giá dịch vụ (Feedback).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback là một đánh giá của thành viên cho một dịch vụ
type Feedback struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID  primitive.ObjectID `json:"memberId" bson:"memberId"`
	ServiceID primitive.ObjectID `json:"serviceId" bson:"serviceId" index:"single:1"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ServiceRating là điểm trung bình và số lượt đánh giá của một dịch vụ
type ServiceRating struct {
	AverageRating  float64 `json:"averageRating" bson:"averageRating"`
	TotalFeedbacks int64   `json:"totalFeedbacks" bson:"totalFeedbacks"`
}
