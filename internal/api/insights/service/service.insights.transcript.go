// Package insightssvc - phân tích hội thoại chatbot: suy luận transcript,
// phân loại đặt lịch thành công, lọc và phân trang.
package insightssvc

import (
	"regexp"
	"strings"

	"spa_booking/internal/api/insights/botpress"
)

// SentimentNA là giá trị trả về khi không suy luận được sentiment
const SentimentNA = "N/A"

// TopicNotAvailable là giá trị trả về khi hội thoại không có tin nhắn nào của user
const TopicNotAvailable = "N/A"

// inferenceRule là một luật suy luận: nhóm kết quả kèm pattern nhận diện.
// Các luật được đánh giá theo đúng thứ tự khai báo.
type inferenceRule struct {
	category string
	pattern  *regexp.Regexp
}

// Luật tóm tắt theo thứ tự ưu tiên: xác nhận đặt lịch, báo không khả dụng, chào kết thúc.
var summaryRules = []inferenceRule{
	{"confirmation", regexp.MustCompile(`(?i)(has been (successfully )?booked|has been confirmed|has been scheduled|booking is successful|successfully booked|look forward to seeing you|appointment.*has been (successfully )?booked)`)},
	{"unavailable", regexp.MustCompile(`(?i)(couldn['’]?t confirm|not available|would you like me to check|I couldn['’]?t confirm)`)},
	{"closing", regexp.MustCompile(`(?i)(thank you|we look forward|feel free to let me know)`)},
}

// Luật sentiment theo thứ tự ưu tiên: positive thắng negative thắng neutral.
var sentimentRules = []inferenceRule{
	{"positive", regexp.MustCompile(`(?i)(successfully|confirmed|look forward|thank you|happy|great|wonderful|glad)`)},
	{"negative", regexp.MustCompile(`(?i)(couldn['’]?t|not available|unfortunately|sorry|fail|unable|problem|issue)`)},
	{"neutral", regexp.MustCompile(`(?i)(please confirm|could you|would you|let me know|need more information|waiting)`)},
}

// Từ khóa dịch vụ dùng để trích topic từ tin nhắn của user
var topicPattern = regexp.MustCompile(`(?i)(booking|service|facial|massage|treatment|appointment|consultant|pro|skin|hydrat|bright|dermaplaning)`)

// botMessagesNewestFirst trả về các tin nhắn của bot, tin mới nhất trước
func botMessagesNewestFirst(transcript []botpress.TranscriptMessage) []botpress.TranscriptMessage {
	msgs := make([]botpress.TranscriptMessage, 0, len(transcript))
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Sender == "bot" {
			msgs = append(msgs, transcript[i])
		}
	}
	return msgs
}

// userMessages trả về các tin nhắn của user theo thứ tự gốc
func userMessages(transcript []botpress.TranscriptMessage) []botpress.TranscriptMessage {
	msgs := make([]botpress.TranscriptMessage, 0, len(transcript))
	for _, msg := range transcript {
		if msg.Sender == "user" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// InferSummary suy luận tóm tắt từ transcript: quét tin nhắn bot từ mới
// đến cũ, trả về tin đầu tiên khớp luật theo thứ tự ưu tiên. Không luật nào
// khớp thì trả về tin nhắn bot mới nhất, không có tin bot nào thì trả về "".
// Hàm thuần, không bao giờ lỗi.
func InferSummary(transcript []botpress.TranscriptMessage) string {
	botMsgs := botMessagesNewestFirst(transcript)
	for _, rule := range summaryRules {
		for _, msg := range botMsgs {
			if rule.pattern.MatchString(msg.Preview) {
				return msg.Preview
			}
		}
	}
	if len(botMsgs) > 0 {
		return botMsgs[0].Preview
	}
	return ""
}

// InferSentiment suy luận sentiment từ transcript. Mỗi nhóm quét toàn bộ
// tin nhắn bot độc lập, nhóm đầu tiên (theo thứ tự ưu tiên) có tin khớp thắng.
// Không nhóm nào khớp hoặc không có tin bot nào thì trả về "N/A".
func InferSentiment(transcript []botpress.TranscriptMessage) string {
	botMsgs := botMessagesNewestFirst(transcript)
	for _, rule := range sentimentRules {
		for _, msg := range botMsgs {
			if rule.pattern.MatchString(msg.Preview) {
				return rule.category
			}
		}
	}
	return SentimentNA
}

// InferTopics suy luận danh sách topic từ transcript: tìm tin nhắn user đầu
// tiên chứa từ khóa dịch vụ và trích mọi từ khóa trong tin đó. Không trích
// được thì trả về nguyên tin nhắn. Không tin user nào khớp thì trả về tin
// user đầu tiên. Không có tin user nào thì trả về ["N/A"].
func InferTopics(transcript []botpress.TranscriptMessage) []string {
	userMsgs := userMessages(transcript)
	for _, msg := range userMsgs {
		if !topicPattern.MatchString(msg.Preview) {
			continue
		}
		matches := topicPattern.FindAllString(msg.Preview, -1)
		if len(matches) > 0 {
			topics := make([]string, 0, len(matches))
			for _, match := range matches {
				topics = append(topics, strings.TrimSpace(match))
			}
			return topics
		}
		return []string{msg.Preview}
	}
	if len(userMsgs) > 0 {
		return []string{userMsgs[0].Preview}
	}
	return []string{TopicNotAvailable}
}
