package insightssvc

import (
	"testing"

	"spa_booking/internal/api/insights/botpress"

	"github.com/stretchr/testify/assert"
)

func botMsg(preview string) botpress.TranscriptMessage {
	return botpress.TranscriptMessage{Sender: "bot", Preview: preview}
}

func userMsg(preview string) botpress.TranscriptMessage {
	return botpress.TranscriptMessage{Sender: "user", Preview: preview}
}

func TestInferSummary_ConfirmationWinsOverClosing(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		userMsg("I want a facial"),
		botMsg("Your appointment has been successfully booked for tomorrow."),
		botMsg("Thank you for choosing us!"),
	}
	// Câu xác nhận có ưu tiên cao hơn câu chào kết thúc dù đứng trước
	assert.Equal(t, "Your appointment has been successfully booked for tomorrow.", InferSummary(transcript))
}

func TestInferSummary_UnavailableBeforeClosing(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Unfortunately that slot is not available."),
		botMsg("Feel free to let me know if you need anything else."),
	}
	assert.Equal(t, "Unfortunately that slot is not available.", InferSummary(transcript))
}

func TestInferSummary_NoRuleMatch_ReturnsNewestBotMessage(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Hello, how can I help?"),
		userMsg("Just browsing"),
		botMsg("Alright."),
	}
	assert.Equal(t, "Alright.", InferSummary(transcript))
}

func TestInferSummary_NoBotMessages_ReturnsEmpty(t *testing.T) {
	transcript := []botpress.TranscriptMessage{userMsg("Anyone there?")}
	assert.Equal(t, "", InferSummary(transcript))

	assert.Equal(t, "", InferSummary(nil))
}

func TestInferSentiment_PositiveWinsOverNegative(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Sorry, that slot was taken."),
		botMsg("Your booking is confirmed, we look forward to seeing you!"),
	}
	assert.Equal(t, "positive", InferSentiment(transcript))
}

func TestInferSentiment_Negative(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Unfortunately I was unable to find that service."),
	}
	assert.Equal(t, "negative", InferSentiment(transcript))
}

func TestInferSentiment_Neutral(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Could you tell me which date works for you?"),
	}
	assert.Equal(t, "neutral", InferSentiment(transcript))
}

func TestInferSentiment_NoBotMessages_ReturnsNA(t *testing.T) {
	assert.Equal(t, SentimentNA, InferSentiment([]botpress.TranscriptMessage{userMsg("hello")}))
	assert.Equal(t, SentimentNA, InferSentiment(nil))
}

func TestInferSentiment_Deterministic(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		botMsg("Sorry about that."),
		botMsg("Great, confirmed!"),
	}
	first := InferSentiment(transcript)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, InferSentiment(transcript))
	}
}

func TestInferTopics_ExtractsAllKeywordsFromFirstMatchingUserMessage(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		userMsg("hi"),
		userMsg("I would like a facial and a massage appointment"),
		userMsg("also a treatment"),
	}
	assert.Equal(t, []string{"facial", "massage", "appointment"}, InferTopics(transcript))
}

func TestInferTopics_NoKeyword_ReturnsFirstUserMessage(t *testing.T) {
	transcript := []botpress.TranscriptMessage{
		userMsg("hello there"),
		userMsg("what are your opening hours?"),
	}
	assert.Equal(t, []string{"hello there"}, InferTopics(transcript))
}

func TestInferTopics_NoUserMessages_ReturnsNA(t *testing.T) {
	transcript := []botpress.TranscriptMessage{botMsg("Welcome!")}
	assert.Equal(t, []string{TopicNotAvailable}, InferTopics(transcript))
	assert.Equal(t, []string{TopicNotAvailable}, InferTopics(nil))
}
