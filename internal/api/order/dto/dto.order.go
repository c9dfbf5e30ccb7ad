package orderdto

// OrderItemInput là một dòng hàng trong body tạo đơn.
type OrderItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// OrderCreateInput đầu vào tạo đơn hàng.
// TransactionDateTime là unix millisecond, bỏ trống sẽ lấy thời điểm tạo.
type OrderCreateInput struct {
	ServiceID           string           `json:"serviceId" validate:"required"`
	Amount              float64          `json:"amount" validate:"required,gt=0"`
	Currency            string           `json:"currency"`
	Description         string           `json:"description"`
	BuyerName           string           `json:"buyerName"`
	BuyerEmail          string           `json:"buyerEmail" validate:"omitempty,email"`
	BuyerPhone          string           `json:"buyerPhone"`
	BuyerAddress        string           `json:"buyerAddress"`
	Items               []OrderItemInput `json:"items" validate:"omitempty,dive"`
	PaymentMethod       string           `json:"paymentMethod"`
	PaymentStatus       string           `json:"paymentStatus"`
	Status              string           `json:"status" validate:"omitempty,oneof=Pending Paid Cancelled"`
	TransactionDateTime int64            `json:"transactionDateTime"`
}

// OrderUpdateInput đầu vào cập nhật trạng thái đơn hàng (admin/manager).
type OrderUpdateInput struct {
	Status        string `json:"status" validate:"omitempty,oneof=Pending Paid Cancelled"`
	PaymentStatus string `json:"paymentStatus"`
}
