package ordersvc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	models "spa_booking/internal/api/order/models"
	"spa_booking/internal/common"
)

// buildMonthlyRevenueWorkbook dựng workbook xlsx từ kết quả doanh thu theo tháng.
// Mỗi dòng là một cặp (dịch vụ, tháng), chỉ các tháng có đơn mới có dòng.
func buildMonthlyRevenueWorkbook(year int, results []models.ServiceMonthlyRevenue) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Revenue %d", year)
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Service ID", "Service Name", "Month", "Total Revenue", "Total Orders"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, service := range results {
		for _, bucket := range service.Monthly {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), service.ServiceID.Hex())
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), service.ServiceName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), bucket.Month)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), bucket.TotalRevenue)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), bucket.TotalOrders)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo file xlsx", common.StatusInternalServerError, err)
	}
	return buf, nil
}

// ExportMonthlyRevenue xuất doanh thu theo tháng của từng dịch vụ trong một năm ra xlsx
func (s *OrderService) ExportMonthlyRevenue(ctx context.Context, year int) (*bytes.Buffer, error) {
	results, err := s.MonthlyRevenueByService(ctx, year)
	if err != nil {
		return nil, err
	}
	return buildMonthlyRevenueWorkbook(year, results)
}
