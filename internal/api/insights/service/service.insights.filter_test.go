package insightssvc

import (
	"encoding/json"
	"fmt"
	"testing"

	"spa_booking/internal/api/insights/botpress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(n int) []botpress.ConversationRow {
	rows := make([]botpress.ConversationRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, botpress.ConversationRow{
			ID:        json.Number(fmt.Sprintf("%d", i+1)),
			UpdatedAt: "2026-08-15T10:00:00Z",
			Summary:   fmt.Sprintf("conversation %d", i+1),
			Sentiment: "positive",
		})
	}
	return rows
}

func TestFilterRows_ByDatePrefix(t *testing.T) {
	rows := []botpress.ConversationRow{
		{ID: "1", UpdatedAt: "2026-08-15T10:00:00Z", Summary: "a", Sentiment: "positive"},
		{ID: "2", UpdatedAt: "2026-08-16T11:00:00Z", Summary: "b", Sentiment: "positive"},
		{ID: "3", UpdatedAt: "2026-08-15T23:59:00Z", Summary: "c", Sentiment: "positive"},
	}
	filtered := FilterRows(rows, FilterCriteria{Date: "2026-08-15"})
	require.Len(t, filtered, 2)
	assert.Equal(t, json.Number("1"), filtered[0].ID)
	assert.Equal(t, json.Number("3"), filtered[1].ID)
}

func TestFilterRows_BySentiment_UsesInferredWhenMissing(t *testing.T) {
	rows := []botpress.ConversationRow{
		{ID: "1", Sentiment: "negative", Summary: "a"},
		// Sentiment rỗng, suy luận từ transcript ra positive
		{ID: "2", Summary: "b", Transcript: []botpress.TranscriptMessage{botMsg("Great, confirmed!")}},
		{ID: "3", Sentiment: "positive", Summary: "c"},
	}
	filtered := FilterRows(rows, FilterCriteria{Sentiment: "positive"})
	require.Len(t, filtered, 2)
	assert.Equal(t, json.Number("2"), filtered[0].ID)
	assert.Equal(t, json.Number("3"), filtered[1].ID)
}

func TestFilterRows_ByKeyword_CaseInsensitive(t *testing.T) {
	rows := []botpress.ConversationRow{
		{ID: "1", Summary: "Facial booking confirmed"},
		{ID: "2", Summary: "massage enquiry"},
		{ID: "3", Summary: "FACIAL follow-up"},
	}
	filtered := FilterRows(rows, FilterCriteria{Keyword: "facial"})
	require.Len(t, filtered, 2)
	assert.Equal(t, json.Number("1"), filtered[0].ID)
	assert.Equal(t, json.Number("3"), filtered[1].ID)
}

func TestFilterRows_EmptyCriteria_ReturnsAllInOrder(t *testing.T) {
	rows := makeRows(7)
	filtered := FilterRows(rows, FilterCriteria{})
	require.Len(t, filtered, 7)
	for i, row := range filtered {
		assert.Equal(t, rows[i].ID, row.ID)
	}
}

func TestPaginate_25RowsInto3Pages(t *testing.T) {
	rows := makeRows(25)

	page1, totalPages := Paginate(rows, 1)
	assert.Equal(t, 3, totalPages)
	require.Len(t, page1, 10)
	assert.Equal(t, json.Number("1"), page1[0].ID)

	page2, _ := Paginate(rows, 2)
	require.Len(t, page2, 10)
	assert.Equal(t, json.Number("11"), page2[0].ID)

	page3, _ := Paginate(rows, 3)
	require.Len(t, page3, 5)
	assert.Equal(t, json.Number("21"), page3[0].ID)
}

func TestPaginate_PageBelowOne_ClampedToOne(t *testing.T) {
	rows := makeRows(5)
	page, totalPages := Paginate(rows, 0)
	assert.Equal(t, 1, totalPages)
	assert.Len(t, page, 5)
}

func TestPaginate_PageBeyondEnd_ReturnsEmpty(t *testing.T) {
	rows := makeRows(5)
	page, totalPages := Paginate(rows, 4)
	assert.Equal(t, 1, totalPages)
	assert.Empty(t, page)
}

func TestPaginate_EmptyInput(t *testing.T) {
	page, totalPages := Paginate(nil, 1)
	assert.Equal(t, 0, totalPages)
	assert.Empty(t, page)
}

func TestRowSet_SetCriteriaResetsToPageOne(t *testing.T) {
	rs := NewRowSet(makeRows(25))
	rs.SetPage(3)
	require.Equal(t, 3, rs.Page())

	rs.SetCriteria(FilterCriteria{Keyword: "conversation"})
	assert.Equal(t, 1, rs.Page())
	assert.Equal(t, 25, rs.FilteredCount())
}

func TestRowSet_RefilterIsNonDestructive(t *testing.T) {
	rs := NewRowSet(makeRows(25))

	rs.SetCriteria(FilterCriteria{Keyword: "conversation 2"})
	// "conversation 2", "conversation 20" .. "conversation 25"
	assert.Equal(t, 7, rs.FilteredCount())

	// Xóa tiêu chí phải trả về đầy đủ snapshot gốc
	rs.SetCriteria(FilterCriteria{})
	assert.Equal(t, 25, rs.FilteredCount())

	rows, totalPages := rs.CurrentRows()
	assert.Equal(t, 3, totalPages)
	assert.Len(t, rows, 10)
}
