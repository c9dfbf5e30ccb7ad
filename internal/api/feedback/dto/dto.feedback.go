package feedbackdto

// FeedbackCreateInput đầu vào tạo đánh giá dịch vụ.
type FeedbackCreateInput struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,no_xss"`
}
