package insightssvc

import (
	"strings"

	"spa_booking/internal/api/insights/botpress"
)

// RowsPerPage là kích thước trang cố định của danh sách hội thoại
const RowsPerPage = 10

// FilterCriteria là tiêu chí lọc hội thoại. Trường rỗng nghĩa là bỏ qua.
// Date khớp prefix ngày (YYYY-MM-DD) trên updatedAt, Sentiment khớp chính xác
// với sentiment đã resolve, Keyword khớp substring không phân biệt hoa thường
// trên summary đã resolve.
type FilterCriteria struct {
	Date      string
	Sentiment string
	Keyword   string
}

// ResolveSummary trả về summary của dòng nếu có, không thì suy luận từ transcript
func ResolveSummary(row botpress.ConversationRow) string {
	if row.Summary != "" {
		return row.Summary
	}
	return InferSummary(row.Transcript)
}

// ResolveSentiment trả về sentiment của dòng nếu có, không thì suy luận từ transcript
func ResolveSentiment(row botpress.ConversationRow) string {
	if row.Sentiment != "" {
		return row.Sentiment
	}
	return InferSentiment(row.Transcript)
}

// ResolveTopics trả về topics của dòng nếu có, không thì suy luận từ transcript
func ResolveTopics(row botpress.ConversationRow) []string {
	if len(row.Topics) > 0 {
		return row.Topics
	}
	return InferTopics(row.Transcript)
}

// FilterRows lọc danh sách hội thoại theo tiêu chí, giữ nguyên thứ tự gốc.
// Không phá hủy: luôn lọc từ danh sách đầu vào, không ảnh hưởng đến nó.
func FilterRows(rows []botpress.ConversationRow, criteria FilterCriteria) []botpress.ConversationRow {
	result := make([]botpress.ConversationRow, 0, len(rows))
	for _, row := range rows {
		if criteria.Date != "" && !strings.HasPrefix(row.UpdatedAt, criteria.Date) {
			continue
		}
		if criteria.Sentiment != "" && ResolveSentiment(row) != criteria.Sentiment {
			continue
		}
		if criteria.Keyword != "" {
			summary := ResolveSummary(row)
			if summary == "" || !strings.Contains(strings.ToLower(summary), strings.ToLower(criteria.Keyword)) {
				continue
			}
		}
		result = append(result, row)
	}
	return result
}

// Paginate cắt danh sách đã lọc thành trang cố định 10 dòng.
// Page tính từ 1, nhỏ hơn 1 được đưa về 1. totalPages = ceil(n/10).
func Paginate(rows []botpress.ConversationRow, page int) ([]botpress.ConversationRow, int) {
	totalPages := (len(rows) + RowsPerPage - 1) / RowsPerPage
	if page < 1 {
		page = 1
	}

	start := (page - 1) * RowsPerPage
	if start >= len(rows) {
		return []botpress.ConversationRow{}, totalPages
	}
	end := start + RowsPerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}

// RowSet giữ snapshot gốc của các dòng đã tải cùng tiêu chí lọc và trang hiện tại.
// Đổi tiêu chí luôn lọc lại từ snapshot gốc và đưa trang về 1.
type RowSet struct {
	allRows  []botpress.ConversationRow
	filtered []botpress.ConversationRow
	criteria FilterCriteria
	page     int
}

// NewRowSet tạo RowSet từ snapshot các dòng đã tải, trang khởi tạo là 1
func NewRowSet(rows []botpress.ConversationRow) *RowSet {
	return &RowSet{
		allRows:  rows,
		filtered: rows,
		page:     1,
	}
}

// SetCriteria áp tiêu chí lọc mới trên snapshot gốc và đưa trang về 1
func (rs *RowSet) SetCriteria(criteria FilterCriteria) {
	rs.criteria = criteria
	rs.filtered = FilterRows(rs.allRows, criteria)
	rs.page = 1
}

// SetPage chuyển sang trang khác, nhỏ hơn 1 được đưa về 1
func (rs *RowSet) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	rs.page = page
}

// Page trả về trang hiện tại
func (rs *RowSet) Page() int {
	return rs.page
}

// CurrentRows trả về các dòng của trang hiện tại cùng tổng số trang
func (rs *RowSet) CurrentRows() ([]botpress.ConversationRow, int) {
	return Paginate(rs.filtered, rs.page)
}

// FilteredCount trả về số dòng sau lọc
func (rs *RowSet) FilteredCount() int {
	return len(rs.filtered)
}
