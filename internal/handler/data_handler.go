package handler

import (
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DataHandler struct {
	service service.DataService
}

func NewDataHandler(s service.DataService) *DataHandler {
	return &DataHandler{service: s}
}

// GetDocument dumps the whole document; a UI hydrates from this once.
func (h *DataHandler) GetDocument(c *fiber.Ctx) error {
	return c.JSON(h.service.Document())
}

// Reset wipes the persisted document and returns the seed it reverts to.
func (h *DataHandler) Reset(c *fiber.Ctx) error {
	doc, err := h.service.Reset()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(doc)
}
