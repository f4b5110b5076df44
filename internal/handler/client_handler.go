package handler

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req model.Client
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req model.Client
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
