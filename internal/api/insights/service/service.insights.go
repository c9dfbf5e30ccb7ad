package insightssvc

import (
	"context"

	"spa_booking/internal/api/insights/botpress"
	"spa_booking/internal/global"
)

// ConversationView là một hội thoại sau khi resolve đủ summary/sentiment/topics
type ConversationView struct {
	ID             string   `json:"id"`
	ConversationID string   `json:"conversationId"`
	UpdatedAt      string   `json:"updatedAt"`
	Summary        string   `json:"summary"`
	Sentiment      string   `json:"sentiment"`
	Topics         []string `json:"topics"`
	LastMessage    string   `json:"lastMessage"`
}

// ConversationPage là một trang kết quả hội thoại
type ConversationPage struct {
	Items      []ConversationView `json:"items"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	TotalItems int                `json:"totalItems"`
}

// InsightsService điều phối việc tải hội thoại từ chatbot,
// suy luận metadata và lọc/phân trang kết quả.
type InsightsService struct {
	client *botpress.Client
	table  string
}

// NewInsightsService tạo mới InsightsService từ cấu hình chatbot trong global
func NewInsightsService() *InsightsService {
	cfg := global.MongoDB_ServerConfig
	return &InsightsService{
		client: botpress.NewClient(cfg.BotpressBaseURL, cfg.BotpressToken, cfg.BotpressBotID),
		table:  cfg.BotpressTableID,
	}
}

// fetchRows tải snapshot các dòng hội thoại theo thứ tự row_id tăng dần
func (s *InsightsService) fetchRows(ctx context.Context) ([]botpress.ConversationRow, error) {
	return s.client.FindTableRows(ctx, s.table, botpress.FindTableRowsRequest{
		Limit:          50,
		Offset:         0,
		Filter:         map[string]interface{}{},
		OrderBy:        "row_id",
		OrderDirection: "asc",
	})
}

// toView resolve các trường suy luận của một dòng thành view trả về client
func toView(row botpress.ConversationRow) ConversationView {
	lastMessage := ""
	if len(row.Transcript) > 0 {
		lastMessage = row.Transcript[len(row.Transcript)-1].Preview
	}
	return ConversationView{
		ID:             row.ID.String(),
		ConversationID: row.ConversationID,
		UpdatedAt:      row.UpdatedAt,
		Summary:        ResolveSummary(row),
		Sentiment:      ResolveSentiment(row),
		Topics:         ResolveTopics(row),
		LastMessage:    lastMessage,
	}
}

// pageOf lọc và phân trang một snapshot rồi build trang kết quả
func pageOf(rows []botpress.ConversationRow, criteria FilterCriteria, page int) ConversationPage {
	filtered := FilterRows(rows, criteria)
	pageRows, totalPages := Paginate(filtered, page)

	items := make([]ConversationView, 0, len(pageRows))
	for _, row := range pageRows {
		items = append(items, toView(row))
	}
	if page < 1 {
		page = 1
	}
	return ConversationPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(filtered),
	}
}

// Conversations trả về một trang hội thoại (mọi hội thoại) sau lọc
func (s *InsightsService) Conversations(ctx context.Context, criteria FilterCriteria, page int) (ConversationPage, error) {
	rows, err := s.fetchRows(ctx)
	if err != nil {
		return ConversationPage{}, err
	}
	return pageOf(rows, criteria, page), nil
}

// ConfirmedBookings trả về một trang các hội thoại kết thúc bằng
// xác nhận đặt lịch thành công, sau lọc
func (s *InsightsService) ConfirmedBookings(ctx context.Context, criteria FilterCriteria, page int) (ConversationPage, error) {
	rows, err := s.fetchRows(ctx)
	if err != nil {
		return ConversationPage{}, err
	}

	confirmed := make([]botpress.ConversationRow, 0, len(rows))
	for _, row := range rows {
		if IsConfirmedBooking(row) {
			confirmed = append(confirmed, row)
		}
	}
	return pageOf(confirmed, criteria, page), nil
}
