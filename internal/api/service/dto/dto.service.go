package servicedto

// ServiceCreateInput đầu vào tạo dịch vụ (admin/manager).
type ServiceCreateInput struct {
	Name        string  `json:"name" validate:"required,no_xss"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Duration    int64   `json:"duration" validate:"omitempty,gt=0"`
}

// ServiceUpdateInput đầu vào cập nhật dịch vụ.
type ServiceUpdateInput struct {
	Name        string  `json:"name" validate:"omitempty,no_xss"`
	Price       float64 `json:"price" validate:"omitempty,gt=0"`
	Description string  `json:"description"`
	Duration    int64   `json:"duration" validate:"omitempty,gt=0"`
}
