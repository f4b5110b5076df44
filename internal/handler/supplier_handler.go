package handler

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
