package insightssvc

import (
	"regexp"

	"spa_booking/internal/api/insights/botpress"
)

// bookingSuccessPattern nhận diện câu xác nhận đặt lịch thành công
// bằng cả tiếng Anh và tiếng Việt.
var bookingSuccessPattern = regexp.MustCompile(`(?i)(confirm(ed|ation)?|successfully booked|has been booked|appointment is booked|booking is successful|has been scheduled|look forward to seeing you|thank you for booking|đặt lịch thành công|đã được đặt|cảm ơn bạn đã đặt lịch)`)

// IsConfirmedBooking kiểm tra hội thoại có kết thúc bằng xác nhận đặt lịch
// thành công hay không. Chỉ tin nhắn cuối cùng của transcript được xét,
// transcript rỗng hoặc preview rỗng trả về false.
func IsConfirmedBooking(row botpress.ConversationRow) bool {
	if len(row.Transcript) == 0 {
		return false
	}
	lastMsg := row.Transcript[len(row.Transcript)-1].Preview
	if lastMsg == "" {
		return false
	}
	return bookingSuccessPattern.MatchString(lastMsg)
}
