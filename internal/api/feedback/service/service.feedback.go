// Package feedbacksvc - service đánh giá dịch vụ.
package feedbacksvc

import (
	"context"
	"fmt"

	basesvc "spa_booking/internal/api/base/service"
	feedbackdto "spa_booking/internal/api/feedback/dto"
	models "spa_booking/internal/api/feedback/models"
	svcmodels "spa_booking/internal/api/service/models"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
	"spa_booking/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackService là cấu trúc chứa các phương thức liên quan đến đánh giá
type FeedbackService struct {
	*basesvc.BaseServiceMongoImpl[models.Feedback]
	serviceCRUD *basesvc.BaseServiceMongoImpl[svcmodels.Service]
}

// NewFeedbackService tạo mới FeedbackService
func NewFeedbackService() (*FeedbackService, error) {
	feedbackCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Feedbacks)
	if !exist {
		return nil, fmt.Errorf("failed to get feedbacks collection: %v", common.ErrNotFound)
	}
	serviceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Services)
	if !exist {
		return nil, fmt.Errorf("failed to get services collection: %v", common.ErrNotFound)
	}

	return &FeedbackService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Feedback](feedbackCollection),
		serviceCRUD:          basesvc.NewBaseServiceMongo[svcmodels.Service](serviceCollection),
	}, nil
}

// CreateFeedback tạo đánh giá mới của caller cho một dịch vụ
func (s *FeedbackService) CreateFeedback(ctx context.Context, memberID primitive.ObjectID, input *feedbackdto.FeedbackCreateInput) (models.Feedback, error) {
	var zero models.Feedback

	serviceID := utility.String2ObjectID(input.ServiceID)
	if serviceID.IsZero() {
		return zero, common.NewError(common.ErrCodeValidationFormat, "serviceId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}
	if _, err := s.serviceCRUD.FindOneById(ctx, serviceID); err != nil {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Dịch vụ không tồn tại", common.StatusNotFound, nil)
	}

	feedback := models.Feedback{
		MemberID:  memberID,
		ServiceID: serviceID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	return s.InsertOne(ctx, feedback)
}

// ServiceRating tính điểm trung bình và số lượt đánh giá của một dịch vụ.
// Kết quả là mảng (rỗng khi chưa có đánh giá nào) để client đọc phần tử đầu.
func (s *FeedbackService) ServiceRating(ctx context.Context, serviceID primitive.ObjectID) ([]models.ServiceRating, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"serviceId": serviceID}},
		{"$group": bson.M{
			"_id":            nil,
			"averageRating":  bson.M{"$avg": "$rating"},
			"totalFeedbacks": bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.ServiceRating, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
