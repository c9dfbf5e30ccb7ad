package ordersvc

import (
	"testing"

	models "spa_booking/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMonthlyRevenueWorkbook(t *testing.T) {
	svcA := primitive.NewObjectID()
	svcB := primitive.NewObjectID()
	results := []models.ServiceMonthlyRevenue{
		{
			ServiceID:   svcA,
			ServiceName: "Signature Facial",
			Monthly: []models.MonthlyBucket{
				{Month: 1, TotalRevenue: 1300000, TotalOrders: 2},
				{Month: 3, TotalRevenue: 650000, TotalOrders: 1},
			},
		},
		{
			ServiceID:   svcB,
			ServiceName: "Full Body Massage",
			Monthly: []models.MonthlyBucket{
				{Month: 2, TotalRevenue: 500000, TotalOrders: 1},
			},
		},
	}

	buf, err := buildMonthlyRevenueWorkbook(2026, results)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Revenue 2026"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	// 1 dòng header + 3 dòng dữ liệu, chỉ các tháng có đơn
	require.Len(t, rows, 4)

	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Service Name", header)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Signature Facial", name)

	month, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "3", month)

	orders, err := f.GetCellValue(sheet, "E4")
	require.NoError(t, err)
	assert.Equal(t, "1", orders)
}

func TestBuildMonthlyRevenueWorkbook_NoData(t *testing.T) {
	buf, err := buildMonthlyRevenueWorkbook(2026, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Revenue 2026")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
