// Package ordersvc - service đơn hàng: CRUD, sinh mã đơn và các thống kê doanh thu.
package ordersvc

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	orderdto "spa_booking/internal/api/order/dto"
	models "spa_booking/internal/api/order/models"
	basesvc "spa_booking/internal/api/base/service"
	svcmodels "spa_booking/internal/api/service/models"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
	"spa_booking/internal/logger"
	"spa_booking/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderCodeSeq đảm bảo phần đuôi của mã đơn không lặp lại trong cùng một millisecond
var orderCodeSeq = uint64(rand.Int63())

// GenerateOrderCode sinh mã đơn dạng ORD-<unix ms>-<4 chữ số>.
// Phần đuôi lấy từ bộ đếm atomic nên hai lần sinh trong cùng millisecond
// vẫn cho mã khác nhau. Mã được lưu dạng chữ thường.
func GenerateOrderCode() string {
	seq := atomic.AddUint64(&orderCodeSeq, 1)
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), 1000+seq%9000)
}

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	serviceCRUD *basesvc.BaseServiceMongoImpl[svcmodels.Service]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	serviceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Services)
	if !exist {
		return nil, fmt.Errorf("failed to get services collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		serviceCRUD:          basesvc.NewBaseServiceMongo[svcmodels.Service](serviceCollection),
	}, nil
}

// CreateOrder tạo đơn hàng mới với caller là chủ sở hữu.
// Trả về 404 nếu serviceId không tồn tại.
func (s *OrderService) CreateOrder(ctx context.Context, memberID primitive.ObjectID, input *orderdto.OrderCreateInput) (models.Order, error) {
	var zero models.Order

	serviceID := utility.String2ObjectID(input.ServiceID)
	if serviceID.IsZero() {
		return zero, common.NewError(common.ErrCodeValidationFormat, "serviceId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}
	if _, err := s.serviceCRUD.FindOneById(ctx, serviceID); err != nil {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Dịch vụ không tồn tại", common.StatusNotFound, nil)
	}

	transactionDateTime := input.TransactionDateTime
	if transactionDateTime == 0 {
		transactionDateTime = time.Now().UnixMilli()
	}
	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order := models.Order{
		MemberID:            memberID,
		ServiceID:           serviceID,
		OrderCode:           strings.ToLower(GenerateOrderCode()),
		Amount:              input.Amount,
		Currency:            input.Currency,
		Description:         input.Description,
		BuyerName:           input.BuyerName,
		BuyerEmail:          input.BuyerEmail,
		BuyerPhone:          input.BuyerPhone,
		BuyerAddress:        input.BuyerAddress,
		Items:               items,
		PaymentMethod:       input.PaymentMethod,
		PaymentStatus:       input.PaymentStatus,
		Status:              status,
		TransactionDateTime: transactionDateTime,
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithField("orderCode", created.OrderCode).WithField("memberId", memberID.Hex()).Info("Tạo đơn hàng mới")
	return created, nil
}

// FindOrdersByMember trả về các đơn Paid của chính caller
func (s *OrderService) FindOrdersByMember(ctx context.Context, memberID primitive.ObjectID) ([]models.Order, error) {
	return s.Find(ctx, bson.M{"memberId": memberID, "status": models.OrderStatusPaid}, nil)
}

// FindAllOrders trả về toàn bộ đơn hàng (admin/manager)
func (s *OrderService) FindAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Find(ctx, bson.M{}, nil)
}

// FindByOrderCode tra cứu đơn theo mã, không phân biệt hoa thường
func (s *OrderService) FindByOrderCode(ctx context.Context, orderCode string) (models.Order, error) {
	return s.FindOne(ctx, bson.M{"orderCode": strings.ToLower(orderCode)}, nil)
}

// DeleteOwnedOrder xóa đơn khi và chỉ khi đơn thuộc về caller.
// Đơn không tồn tại và đơn của người khác đều trả về ErrNotFound,
// không tiết lộ đơn có tồn tại hay không.
func (s *OrderService) DeleteOwnedOrder(ctx context.Context, orderID primitive.ObjectID, memberID primitive.ObjectID) error {
	if err := s.DeleteOne(ctx, bson.M{"_id": orderID, "memberId": memberID}); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("orderId", orderID.Hex()).WithField("memberId", memberID.Hex()).Info("Xóa đơn hàng")
	return nil
}
