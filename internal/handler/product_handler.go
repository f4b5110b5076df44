package handler

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// LowStock lists the products under the threshold for the warning panel.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"threshold": model.LowStockThreshold,
		"products":  h.service.LowStock(),
	})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
