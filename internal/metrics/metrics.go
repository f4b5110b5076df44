// Package metrics derives cross-entity aggregates from a document snapshot.
// Every function is pure: no side effects, no mutation of the input, safe to
// call in any order and from any goroutine. Every percentage guards division
// by zero and yields 0; nothing here produces NaN or panics on bad data.
package metrics

import "go-erp-dashboard/internal/model"

// UnknownClient is the fixed label a dangling client reference resolves to.
const UnknownClient = "Unknown client"

// TotalRevenue sums invoice totals across the document.
func TotalRevenue(doc model.Document) float64 {
	var sum float64
	for _, inv := range doc.Invoices {
		sum += inv.TotalAmount
	}
	return sum
}

// TotalMargin sums invoice margins across the document.
func TotalMargin(doc model.Document) float64 {
	var sum float64
	for _, inv := range doc.Invoices {
		sum += inv.MarginAmount
	}
	return sum
}

// MarginPercentage is margin over revenue as a percentage, 0 when revenue
// is not positive.
func MarginPercentage(revenue, margin float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return margin / revenue * 100
}

func ClientCount(doc model.Document) int {
	return len(doc.Clients)
}

func OrderCount(doc model.Document) int {
	return len(doc.Orders)
}

// ProductMargin is (salePrice - costPrice) / costPrice as a percentage.
// A zero cost price has no meaningful markup ratio; it yields 0, the same
// policy as every other percentage guard here.
func ProductMargin(costPrice, salePrice float64) float64 {
	if costPrice == 0 {
		return 0
	}
	return (salePrice - costPrice) / costPrice * 100
}

// LowStock reports whether the product falls under the low-stock threshold.
// Boundary: a quantity of exactly 50 is not low.
func LowStock(p model.Product) bool {
	return p.Quantity < model.LowStockThreshold
}

// OrderMarginPercentage is the order's margin over its total as a percentage,
// 0 when the total is not positive.
func OrderMarginPercentage(o model.Order) float64 {
	return MarginPercentage(o.TotalAmount, o.MarginAmount)
}

// ResolveClientName returns the referenced client's name, or UnknownClient
// when the reference dangles. Referential integrity is not enforced by the
// store, so this is the degradation path for deleted clients.
func ResolveClientName(doc model.Document, clientID string) string {
	if c := doc.FindClient(clientID); c != nil {
		return c.Name
	}
	return UnknownClient
}

// LowStockProducts returns the products under the threshold, in stored order.
func LowStockProducts(doc model.Document) []model.Product {
	var out []model.Product
	for _, p := range doc.Products {
		if LowStock(p) {
			out = append(out, p)
		}
	}
	return out
}
