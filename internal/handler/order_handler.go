package handler

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req model.Order
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(order)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var req model.Order
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
