package handler

import (
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the overview block: revenue, margin, margin percentage,
// client and order counts, low-stock count.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
