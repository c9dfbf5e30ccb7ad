package insightssvc

import (
	"testing"

	"spa_booking/internal/api/insights/botpress"

	"github.com/stretchr/testify/assert"
)

func rowWithTranscript(msgs ...botpress.TranscriptMessage) botpress.ConversationRow {
	return botpress.ConversationRow{Transcript: msgs}
}

func TestIsConfirmedBooking_English(t *testing.T) {
	cases := []string{
		"Your appointment has been booked for Friday at 3pm.",
		"Booking is successful, see you soon!",
		"Your facial has been scheduled.",
		"We look forward to seeing you tomorrow.",
		"Thank you for booking with us!",
	}
	for _, lastMsg := range cases {
		row := rowWithTranscript(userMsg("book me in"), botMsg(lastMsg))
		assert.True(t, IsConfirmedBooking(row), "tin cuối: %q", lastMsg)
	}
}

func TestIsConfirmedBooking_Vietnamese(t *testing.T) {
	cases := []string{
		"Đặt lịch thành công! Hẹn gặp bạn vào thứ Sáu.",
		"Lịch hẹn của bạn đã được đặt.",
		"Cảm ơn bạn đã đặt lịch với chúng tôi.",
	}
	for _, lastMsg := range cases {
		row := rowWithTranscript(botMsg(lastMsg))
		assert.True(t, IsConfirmedBooking(row), "tin cuối: %q", lastMsg)
	}
}

func TestIsConfirmedBooking_NotConfirmed(t *testing.T) {
	cases := []string{
		"What time works best for you?",
		"Could you tell me your preferred time?",
	}
	for _, lastMsg := range cases {
		row := rowWithTranscript(botMsg(lastMsg))
		assert.False(t, IsConfirmedBooking(row), "tin cuối: %q", lastMsg)
	}
}

func TestIsConfirmedBooking_OnlyLastMessageCounts(t *testing.T) {
	// Xác nhận ở giữa hội thoại nhưng tin cuối không phải xác nhận
	row := rowWithTranscript(
		botMsg("Your appointment has been booked."),
		userMsg("actually cancel it"),
		botMsg("Okay, I cancelled it."),
	)
	assert.False(t, IsConfirmedBooking(row))
}

func TestIsConfirmedBooking_EmptyTranscript(t *testing.T) {
	assert.False(t, IsConfirmedBooking(rowWithTranscript()))
	assert.False(t, IsConfirmedBooking(rowWithTranscript(botMsg(""))))
}
