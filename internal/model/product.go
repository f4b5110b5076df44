package model

// LowStockThreshold flags products for the dashboard; display only, there is
// no reorder workflow.
const LowStockThreshold = 50

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	CostPrice float64 `json:"costPrice"` // zero is legal; the margin guard handles it
	SalePrice float64 `json:"salePrice"`
	Quantity  int     `json:"quantity"`
	// Margin is stored, not re-derived on read: it is recomputed whenever
	// costPrice or salePrice change and never edited independently.
	Margin float64 `json:"margin"`
}
