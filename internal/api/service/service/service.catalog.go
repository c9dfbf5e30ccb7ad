// Package servicesvc - service catalog dịch vụ và thống kê chi tiết dịch vụ.
package servicesvc

import (
	"context"
	"fmt"

	basesvc "spa_booking/internal/api/base/service"
	ordermodels "spa_booking/internal/api/order/models"
	models "spa_booking/internal/api/service/models"
	"spa_booking/internal/common"
	"spa_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService là cấu trúc chứa các phương thức liên quan đến catalog dịch vụ
type CatalogService struct {
	*basesvc.BaseServiceMongoImpl[models.Service]
	orderColl    *mongo.Collection
	feedbackColl *mongo.Collection
}

// NewCatalogService tạo mới CatalogService
func NewCatalogService() (*CatalogService, error) {
	serviceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Services)
	if !exist {
		return nil, fmt.Errorf("failed to get services collection: %v", common.ErrNotFound)
	}
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	feedbackCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Feedbacks)
	if !exist {
		return nil, fmt.Errorf("failed to get feedbacks collection: %v", common.ErrNotFound)
	}

	return &CatalogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Service](serviceCollection),
		orderColl:            orderCollection,
		feedbackColl:         feedbackCollection,
	}, nil
}

// DetailStats tính thống kê chi tiết của một dịch vụ:
// tổng đơn Paid, tổng doanh thu từ đơn Paid và điểm đánh giá trung bình.
func (s *CatalogService) DetailStats(ctx context.Context, serviceID primitive.ObjectID) (models.ServiceDetailStats, error) {
	var zero models.ServiceDetailStats

	service, err := s.FindOneById(ctx, serviceID)
	if err != nil {
		return zero, err
	}

	stats := models.ServiceDetailStats{
		ServiceID: service.ID,
		Name:      service.Name,
		Price:     service.Price,
	}

	orderPipeline := []bson.M{
		{"$match": bson.M{"serviceId": service.ID, "status": ordermodels.OrderStatusPaid}},
		{"$group": bson.M{
			"_id":          nil,
			"totalOrders":  bson.M{"$sum": 1},
			"totalRevenue": bson.M{"$sum": "$amount"},
		}},
	}
	orderCursor, err := s.orderColl.Aggregate(ctx, orderPipeline)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer orderCursor.Close(ctx)
	if orderCursor.Next(ctx) {
		var result struct {
			TotalOrders  int64   `bson:"totalOrders"`
			TotalRevenue float64 `bson:"totalRevenue"`
		}
		if err := orderCursor.Decode(&result); err != nil {
			return zero, common.ConvertMongoError(err)
		}
		stats.TotalOrders = result.TotalOrders
		stats.TotalRevenue = result.TotalRevenue
	}

	ratingPipeline := []bson.M{
		{"$match": bson.M{"serviceId": service.ID}},
		{"$group": bson.M{"_id": nil, "averageRating": bson.M{"$avg": "$rating"}}},
	}
	ratingCursor, err := s.feedbackColl.Aggregate(ctx, ratingPipeline)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer ratingCursor.Close(ctx)
	if ratingCursor.Next(ctx) {
		var result struct {
			AverageRating float64 `bson:"averageRating"`
		}
		if err := ratingCursor.Decode(&result); err != nil {
			return zero, common.ConvertMongoError(err)
		}
		stats.AvgRating = result.AverageRating
	}

	return stats, nil
}
