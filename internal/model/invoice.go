package model

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber" validate:"required"`
	OrderID       string        `json:"orderId"`
	ClientID      string        `json:"clientId" validate:"required"`
	TotalAmount   float64       `json:"totalAmount"`
	MarginAmount  float64       `json:"marginAmount"`
	Status        InvoiceStatus `json:"status" validate:"required,oneof=draft sent paid"`
	CreatedAt     string        `json:"createdAt"` // ISO-8601
	DueDate       string        `json:"dueDate"`   // ISO-8601
}
