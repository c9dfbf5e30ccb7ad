package ordersvc

import (
	"context"

	models "spa_booking/internal/api/order/models"
	svcmodels "spa_booking/internal/api/service/models"
	"spa_booking/internal/common"
	"spa_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MostOrderedServiceResult là dịch vụ được đặt nhiều nhất kèm số lần đặt
type MostOrderedServiceResult struct {
	Service    svcmodels.Service `json:"service"`
	OrderCount int64             `json:"orderCount"`
}

// TotalRevenue tính tổng doanh thu của toàn bộ đơn Paid, trả về 0 khi chưa có đơn nào
func (s *OrderService) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.OrderStatusPaid}},
		{"$group": bson.M{"_id": nil, "totalAmount": bson.M{"$sum": "$amount"}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var result struct {
			TotalAmount float64 `bson:"totalAmount"`
		}
		if err := cursor.Decode(&result); err != nil {
			return 0, common.ConvertMongoError(err)
		}
		return result.TotalAmount, nil
	}
	return 0, nil
}

// MostOrderedService trả về dịch vụ có nhiều đơn Paid nhất.
// Khi hai dịch vụ có cùng số đơn, dịch vụ có _id nhỏ hơn thắng để kết quả ổn định.
// Trả về ErrNotFound khi chưa có đơn Paid hoặc dịch vụ đã bị xóa.
func (s *OrderService) MostOrderedService(ctx context.Context) (MostOrderedServiceResult, error) {
	var zero MostOrderedServiceResult

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.OrderStatusPaid}},
		{"$group": bson.M{"_id": "$serviceId", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
		{"$limit": 1},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Chưa có đơn hàng đã thanh toán nào", common.StatusNotFound, nil)
	}

	var top struct {
		ServiceID primitive.ObjectID `bson:"_id"`
		Count     int64              `bson:"count"`
	}
	if err := cursor.Decode(&top); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	service, err := s.serviceCRUD.FindOneById(ctx, top.ServiceID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Dịch vụ không tồn tại", common.StatusNotFound, nil)
	}

	return MostOrderedServiceResult{Service: service, OrderCount: top.Count}, nil
}

// MonthlyRevenueByService tính doanh thu theo tháng của từng dịch vụ trong một năm.
// Chỉ các tháng có ít nhất một đơn Paid xuất hiện trong monthly,
// dịch vụ không có đơn Paid trong năm sẽ vắng mặt hoàn toàn.
func (s *OrderService) MonthlyRevenueByService(ctx context.Context, year int) ([]models.ServiceMonthlyRevenue, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.OrderStatusPaid}},
		{"$project": bson.M{
			"serviceId": 1,
			"amount":    1,
			"month":     bson.M{"$month": bson.M{"$toDate": "$transactionDateTime"}},
			"year":      bson.M{"$year": bson.M{"$toDate": "$transactionDateTime"}},
		}},
		{"$match": bson.M{"year": year}},
		{"$group": bson.M{
			"_id":          bson.M{"serviceId": "$serviceId", "month": "$month"},
			"totalRevenue": bson.M{"$sum": "$amount"},
			"totalOrders":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "_id.serviceId", Value: 1}, {Key: "_id.month", Value: 1}}},
		{"$group": bson.M{
			"_id": "$_id.serviceId",
			"monthly": bson.M{"$push": bson.M{
				"month":        "$_id.month",
				"totalRevenue": "$totalRevenue",
				"totalOrders":  "$totalOrders",
			}},
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Services,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "serviceInfo",
		}},
		{"$unwind": "$serviceInfo"},
		{"$project": bson.M{
			"_id":         0,
			"serviceId":   "$serviceInfo._id",
			"serviceName": "$serviceInfo.name",
			"monthly":     1,
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.ServiceMonthlyRevenue, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
