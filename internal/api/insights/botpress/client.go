// Package botpress - client gọi Table API của nền tảng chatbot.
package botpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"spa_booking/internal/common"
	"spa_booking/internal/logger"
)

// TranscriptMessage là một tin nhắn trong transcript của hội thoại
type TranscriptMessage struct {
	Sender  string `json:"sender"`
	Preview string `json:"preview"`
}

// ConversationRow là một dòng trong bảng hội thoại của chatbot.
// Summary/Sentiment/Topics có thể rỗng và được suy luận lại từ transcript.
type ConversationRow struct {
	ID             json.Number         `json:"id"`
	ConversationID string              `json:"conversationId"`
	UpdatedAt      string              `json:"updatedAt"`
	Transcript     []TranscriptMessage `json:"transcript"`
	Summary        string              `json:"summary"`
	Sentiment      string              `json:"sentiment"`
	Topics         []string            `json:"topics"`
}

// FindTableRowsRequest là body của POST /tables/{table}/rows/find
type FindTableRowsRequest struct {
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Filter         map[string]interface{} `json:"filter"`
	OrderBy        string                 `json:"orderBy,omitempty"`
	OrderDirection string                 `json:"orderDirection,omitempty"`
}

// FindTableRowsResponse là response của Table API
type FindTableRowsResponse struct {
	Rows []ConversationRow `json:"rows"`
}

// Client gọi Table API của chatbot với bearer token
type Client struct {
	baseURL    string
	token      string
	botID      string
	httpClient *http.Client
}

// NewClient tạo client mới cho Table API
func NewClient(baseURL string, token string, botID string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		botID:      botID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FindTableRows tải các dòng hội thoại từ một bảng.
// Lỗi mạng và status ngoài 2xx đều trả về ErrUpstreamFailure.
func (c *Client) FindTableRows(ctx context.Context, table string, req FindTableRowsRequest) ([]ConversationRow, error) {
	log := logger.GetAppLogger()

	if req.Filter == nil {
		req.Filter = map[string]interface{}{}
	}
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/tables/%s/rows/find", c.baseURL, table)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	if c.botID != "" {
		httpReq.Header.Set("x-bot-id", c.botID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).WithField("table", table).Error("Lỗi khi gọi Table API của chatbot")
		return nil, common.NewError(common.ErrCodeUpstream, "Không gọi được Table API của chatbot", common.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"table":      table,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("Table API của chatbot trả về lỗi")
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("Table API trả về status %d", resp.StatusCode),
			common.StatusBadGateway, string(bodyBytes))
	}

	var result FindTableRowsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Response của Table API không đúng định dạng", common.StatusBadGateway, err.Error())
	}
	return result.Rows, nil
}
