package model

type Supplier struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Category  string `json:"category"` // free-text label (Fournitures, Logistique, ...)
	CreatedAt string `json:"createdAt"`
}
