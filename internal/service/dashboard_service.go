package service

import (
	"fmt"

	"go-erp-dashboard/internal/metrics"
	"go-erp-dashboard/internal/store"
)

// DashboardStats is the overview block the dashboard renders. Amounts are
// plain numbers; the display layer attaches the currency label.
// MarginPercentage is pre-formatted to one decimal, matching the original
// display contract.
type DashboardStats struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalMargin      float64 `json:"totalMargin"`
	MarginPercentage string  `json:"marginPercentage"`
	ClientCount      int     `json:"clientCount"`
	OrderCount       int     `json:"orderCount"`
	LowStockCount    int     `json:"lowStockCount"`
}

type DashboardService interface {
	Stats() *DashboardStats
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

func (s *dashboardService) Stats() *DashboardStats {
	doc := s.store.Load()

	revenue := metrics.TotalRevenue(doc)
	margin := metrics.TotalMargin(doc)

	// Zero revenue renders as the bare "0", not "0.0".
	marginPct := "0"
	if revenue > 0 {
		marginPct = fmt.Sprintf("%.1f", metrics.MarginPercentage(revenue, margin))
	}

	return &DashboardStats{
		TotalRevenue:     revenue,
		TotalMargin:      margin,
		MarginPercentage: marginPct,
		ClientCount:      metrics.ClientCount(doc),
		OrderCount:       metrics.OrderCount(doc),
		LowStockCount:    len(metrics.LowStockProducts(doc)),
	}
}
