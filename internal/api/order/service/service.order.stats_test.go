package ordersvc

import (
	"testing"
	"time"

	models "spa_booking/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func msAt(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func paidOrder(serviceID primitive.ObjectID, amount float64, txTime int64) models.Order {
	return models.Order{
		ServiceID:           serviceID,
		Amount:              amount,
		Status:              models.OrderStatusPaid,
		TransactionDateTime: txTime,
	}
}

func TestComputeDashboardStats_MonthlyGrouping(t *testing.T) {
	svcA := primitive.NewObjectID()
	svcB := primitive.NewObjectID()
	orders := []models.Order{
		paidOrder(svcA, 100, msAt(2026, time.January, 5)),
		paidOrder(svcA, 200, msAt(2026, time.January, 20)),
		paidOrder(svcB, 300, msAt(2026, time.March, 1)),
	}

	stats := ComputeDashboardStats(orders, DashboardFilter{})

	assert.Equal(t, float64(600), stats.TotalRevenue)
	assert.Equal(t, int64(3), stats.TotalOrders)

	require.Contains(t, stats.Monthly, 1)
	assert.Equal(t, float64(300), stats.Monthly[1].Revenue)
	assert.Equal(t, int64(2), stats.Monthly[1].Count)

	require.Contains(t, stats.Monthly, 3)
	assert.Equal(t, float64(300), stats.Monthly[3].Revenue)
	assert.Equal(t, int64(1), stats.Monthly[3].Count)
}

func TestComputeDashboardStats_StatusFilter(t *testing.T) {
	svc := primitive.NewObjectID()
	orders := []models.Order{
		paidOrder(svc, 100, msAt(2026, time.May, 1)),
		{ServiceID: svc, Amount: 999, Status: models.OrderStatusPending, TransactionDateTime: msAt(2026, time.May, 2)},
	}

	stats := ComputeDashboardStats(orders, DashboardFilter{Status: models.OrderStatusPaid})
	assert.Equal(t, float64(100), stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.TotalOrders)
}

func TestComputeDashboardStats_ScopeFilters(t *testing.T) {
	svc := primitive.NewObjectID()
	orders := []models.Order{
		paidOrder(svc, 100, msAt(2026, time.May, 1)),
		paidOrder(svc, 200, msAt(2026, time.May, 2)),
		paidOrder(svc, 400, msAt(2025, time.May, 1)),
	}

	t.Run("day", func(t *testing.T) {
		stats := ComputeDashboardStats(orders, DashboardFilter{Scope: StatsScopeDay, Day: "2026-05-01"})
		assert.Equal(t, float64(100), stats.TotalRevenue)
	})

	t.Run("month", func(t *testing.T) {
		stats := ComputeDashboardStats(orders, DashboardFilter{Scope: StatsScopeMonth, Month: 5, Year: 2026})
		assert.Equal(t, float64(300), stats.TotalRevenue)
	})

	t.Run("year", func(t *testing.T) {
		stats := ComputeDashboardStats(orders, DashboardFilter{Scope: StatsScopeYear, Year: 2025})
		assert.Equal(t, float64(400), stats.TotalRevenue)
	})
}

func TestComputeDashboardStats_TopServicesTieBreakByFirstSeen(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	third := primitive.NewObjectID()
	orders := []models.Order{
		paidOrder(first, 10, msAt(2026, time.June, 1)),
		paidOrder(second, 10, msAt(2026, time.June, 2)),
		paidOrder(second, 10, msAt(2026, time.June, 3)),
		paidOrder(third, 10, msAt(2026, time.June, 4)),
	}

	stats := ComputeDashboardStats(orders, DashboardFilter{})
	require.Len(t, stats.TopServices, 3)

	assert.Equal(t, second, stats.TopServices[0].ServiceID)
	assert.Equal(t, int64(2), stats.TopServices[0].Count)
	// first và third cùng 1 đơn, first xuất hiện trước nên đứng trước
	assert.Equal(t, first, stats.TopServices[1].ServiceID)
	assert.Equal(t, third, stats.TopServices[2].ServiceID)
}

func TestComputeDashboardStats_TopServicesCappedAtFive(t *testing.T) {
	orders := make([]models.Order, 0, 8)
	for i := 0; i < 8; i++ {
		orders = append(orders, paidOrder(primitive.NewObjectID(), 10, msAt(2026, time.June, i+1)))
	}

	stats := ComputeDashboardStats(orders, DashboardFilter{})
	assert.Len(t, stats.TopServices, 5)
}

func TestComputeDashboardStats_NoOrders(t *testing.T) {
	stats := ComputeDashboardStats(nil, DashboardFilter{})
	assert.Equal(t, float64(0), stats.TotalRevenue)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Empty(t, stats.Monthly)
	assert.Empty(t, stats.TopServices)
}
