package botpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spa_booking/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTableRows_SendsExpectedRequest(t *testing.T) {
	var gotReq FindTableRowsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tables/DataTable/rows/find", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "bot-123", r.Header.Get("x-bot-id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(FindTableRowsResponse{
			Rows: []ConversationRow{
				{
					ID:             "1",
					ConversationID: "conv-a",
					UpdatedAt:      "2026-08-15T10:00:00Z",
					Transcript: []TranscriptMessage{
						{Sender: "user", Preview: "I want a facial"},
						{Sender: "bot", Preview: "Your appointment has been booked."},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "bot-123")
	rows, err := client.FindTableRows(context.Background(), "DataTable", FindTableRowsRequest{
		Limit:          50,
		OrderBy:        "row_id",
		OrderDirection: "asc",
	})
	require.NoError(t, err)

	assert.Equal(t, 50, gotReq.Limit)
	assert.Equal(t, "row_id", gotReq.OrderBy)
	assert.Equal(t, "asc", gotReq.OrderDirection)
	assert.NotNil(t, gotReq.Filter)

	require.Len(t, rows, 1)
	assert.Equal(t, json.Number("1"), rows[0].ID)
	assert.Equal(t, "conv-a", rows[0].ConversationID)
	require.Len(t, rows[0].Transcript, 2)
	assert.Equal(t, "bot", rows[0].Transcript[1].Sender)
}

func TestFindTableRows_Non2xxStatus_ReturnsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", "bot-123")
	rows, err := client.FindTableRows(context.Background(), "DataTable", FindTableRowsRequest{})
	require.Error(t, err)
	assert.Nil(t, rows)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstream.Code, customErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
}

func TestFindTableRows_NetworkFailure_ReturnsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "token", "bot-123")
	_, err := client.FindTableRows(context.Background(), "DataTable", FindTableRowsRequest{})
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstream.Code, customErr.Code.Code)
}

func TestFindTableRows_MalformedResponse_ReturnsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token", "bot-123")
	_, err := client.FindTableRows(context.Background(), "DataTable", FindTableRowsRequest{})
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstream.Code, customErr.Code.Code)
}
