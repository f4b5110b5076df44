package handler

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req model.Invoice
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(invoice)
}

func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var req model.Invoice
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(invoice)
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
