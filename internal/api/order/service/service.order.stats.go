package ordersvc

import (
	"context"
	"sort"
	"time"

	models "spa_booking/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phạm vi lọc thời gian của thống kê dashboard
const (
	StatsScopeDay   = "day"
	StatsScopeMonth = "month"
	StatsScopeYear  = "year"
)

// DashboardFilter là tiêu chí lọc của thống kê dashboard.
// Status rỗng nghĩa là mọi trạng thái. Scope rỗng nghĩa là không lọc thời gian.
type DashboardFilter struct {
	Status string
	Scope  string
	Day    string // YYYY-MM-DD, dùng khi Scope = day
	Month  int    // 1-12, dùng khi Scope = month
	Year   int    // dùng khi Scope = month và year
}

// MonthlyStat là doanh thu và số đơn của một tháng
type MonthlyStat struct {
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

// TopService là một dịch vụ trong bảng xếp hạng đặt nhiều nhất
type TopService struct {
	ServiceID primitive.ObjectID `json:"serviceId"`
	Name      string             `json:"name"`
	Count     int64              `json:"count"`
}

// DashboardStats là kết quả thống kê tổng hợp cho dashboard
type DashboardStats struct {
	Monthly      map[int]MonthlyStat `json:"monthly"`
	TotalRevenue float64             `json:"totalRevenue"`
	TotalOrders  int64               `json:"totalOrders"`
	TopServices  []TopService        `json:"topServices"`
}

// ComputeDashboardStats gom nhóm danh sách đơn hàng thành thống kê dashboard.
// Hàm thuần: cùng đầu vào luôn cho cùng đầu ra.
// Top 5 xếp theo số đơn giảm dần, bằng nhau thì dịch vụ xuất hiện trước
// trong danh sách đầu vào đứng trước.
func ComputeDashboardStats(orders []models.Order, filter DashboardFilter) DashboardStats {
	stats := DashboardStats{
		Monthly:     make(map[int]MonthlyStat),
		TopServices: make([]TopService, 0),
	}

	serviceCount := make(map[primitive.ObjectID]int64)
	serviceOrder := make([]primitive.ObjectID, 0)

	for _, order := range orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}

		txTime := time.UnixMilli(order.TransactionDateTime).UTC()
		switch filter.Scope {
		case StatsScopeDay:
			if txTime.Format("2006-01-02") != filter.Day {
				continue
			}
		case StatsScopeMonth:
			if int(txTime.Month()) != filter.Month || txTime.Year() != filter.Year {
				continue
			}
		case StatsScopeYear:
			if txTime.Year() != filter.Year {
				continue
			}
		}

		stats.TotalRevenue += order.Amount
		stats.TotalOrders++

		month := int(txTime.Month())
		monthStat := stats.Monthly[month]
		monthStat.Revenue += order.Amount
		monthStat.Count++
		stats.Monthly[month] = monthStat

		if _, seen := serviceCount[order.ServiceID]; !seen {
			serviceOrder = append(serviceOrder, order.ServiceID)
		}
		serviceCount[order.ServiceID]++
	}

	ranked := make([]TopService, 0, len(serviceOrder))
	for _, serviceID := range serviceOrder {
		ranked = append(ranked, TopService{ServiceID: serviceID, Count: serviceCount[serviceID]})
	}
	// Stable giữ nguyên thứ tự xuất hiện khi số đơn bằng nhau
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.TopServices = ranked

	return stats
}

// DashboardStats tính thống kê dashboard trên toàn bộ đơn hàng
// và gắn tên dịch vụ cho bảng xếp hạng top 5.
func (s *OrderService) DashboardStats(ctx context.Context, filter DashboardFilter) (DashboardStats, error) {
	orders, err := s.FindAllOrders(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := ComputeDashboardStats(orders, filter)
	for i := range stats.TopServices {
		service, err := s.serviceCRUD.FindOneById(ctx, stats.TopServices[i].ServiceID)
		if err != nil {
			stats.TopServices[i].Name = "Unknown Service"
			continue
		}
		stats.TopServices[i].Name = service.Name
	}
	return stats, nil
}
