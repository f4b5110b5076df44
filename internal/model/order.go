package model

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	// OrderDelivered is an accepted alias for the terminal status; older
	// payloads use it interchangeably with "completed".
	OrderDelivered OrderStatus = "delivered"
)

type OrderItem struct {
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"` // quantity * unitPrice, snapshot at order time
	Margin     float64 `json:"margin"`     // absolute margin on the line
}

type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber" validate:"required"`
	ClientID     string      `json:"clientId" validate:"required"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	MarginAmount float64     `json:"marginAmount"`
	Status       OrderStatus `json:"status" validate:"required,oneof=draft pending confirmed completed delivered"`
	CreatedAt    string      `json:"createdAt"` // ISO-8601
}
