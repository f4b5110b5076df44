package metrics

import (
	"fmt"
	"math"
	"testing"

	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSeedAggregates(t *testing.T) {
	doc := store.SeedDocument()

	if got := TotalRevenue(doc); got != 855 {
		t.Fatalf("TotalRevenue = %v, want 855", got)
	}
	if got := TotalMargin(doc); got != 515 {
		t.Fatalf("TotalMargin = %v, want 515", got)
	}
	if got := fmt.Sprintf("%.1f", MarginPercentage(855, 515)); got != "60.2" {
		t.Fatalf("MarginPercentage rendered %s, want 60.2", got)
	}
	if got := ClientCount(doc); got != 2 {
		t.Fatalf("ClientCount = %d, want 2", got)
	}
	if got := OrderCount(doc); got != 1 {
		t.Fatalf("OrderCount = %d, want 1", got)
	}
}

func TestMarginPercentageZeroRevenue(t *testing.T) {
	doc := model.Document{}
	if got := MarginPercentage(TotalRevenue(doc), TotalMargin(doc)); got != 0 {
		t.Fatalf("expected 0 for empty document, got %v", got)
	}
	if got := MarginPercentage(0, 100); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := MarginPercentage(-5, 100); got != 0 {
		t.Fatalf("expected 0 for negative revenue, got %v", got)
	}
}

func TestProductMargin(t *testing.T) {
	if got := ProductMargin(50, 120); !almostEqual(got, 140) {
		t.Fatalf("ProductMargin(50,120) = %v, want 140", got)
	}
	if got := ProductMargin(100, 250); !almostEqual(got, 150) {
		t.Fatalf("ProductMargin(100,250) = %v, want 150", got)
	}
	// Zero cost has no markup ratio: the documented policy is 0, never NaN.
	got := ProductMargin(0, 120)
	if got != 0 {
		t.Fatalf("ProductMargin(0,120) = %v, want 0", got)
	}
	if math.IsNaN(ProductMargin(0, 0)) {
		t.Fatal("ProductMargin(0,0) produced NaN")
	}
}

func TestLowStockBoundary(t *testing.T) {
	if LowStock(model.Product{Quantity: 50}) {
		t.Fatal("quantity 50 must not be low stock")
	}
	if !LowStock(model.Product{Quantity: 49}) {
		t.Fatal("quantity 49 must be low stock")
	}
	if !LowStock(model.Product{Quantity: 0}) {
		t.Fatal("quantity 0 must be low stock")
	}
}

func TestLowStockProducts(t *testing.T) {
	doc := store.SeedDocument()
	// Seed: quantities 150, 200, 50 — none under the threshold.
	if got := LowStockProducts(doc); len(got) != 0 {
		t.Fatalf("expected no low-stock seed products, got %d", len(got))
	}

	doc.Products[0].Quantity = 40
	got := LowStockProducts(doc)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected product 1 flagged, got %+v", got)
	}
}

func TestOrderMarginPercentage(t *testing.T) {
	o := store.SeedDocument().Orders[0]
	if got := fmt.Sprintf("%.1f", OrderMarginPercentage(o)); got != "60.2" {
		t.Fatalf("OrderMarginPercentage rendered %s, want 60.2", got)
	}
	if got := OrderMarginPercentage(model.Order{MarginAmount: 10}); got != 0 {
		t.Fatalf("zero-total order must yield 0, got %v", got)
	}
}

func TestResolveClientName(t *testing.T) {
	doc := store.SeedDocument()
	if got := ResolveClientName(doc, "1"); got != "Acme Corp" {
		t.Fatalf("ResolveClientName(1) = %q", got)
	}
	if got := ResolveClientName(doc, "nonexistent-id"); got != UnknownClient {
		t.Fatalf("expected fallback label, got %q", got)
	}
	if got := ResolveClientName(model.Document{}, ""); got != UnknownClient {
		t.Fatalf("expected fallback on empty document, got %q", got)
	}
}

func TestPurityNoMutation(t *testing.T) {
	doc := store.SeedDocument()
	before := len(doc.Invoices)

	TotalRevenue(doc)
	TotalMargin(doc)
	LowStockProducts(doc)
	ResolveClientName(doc, "1")

	if len(doc.Invoices) != before || doc.Invoices[0].TotalAmount != 855 {
		t.Fatal("engine mutated its input document")
	}
}
