package handler

import (
	"staff-planner/internal/database"
	"staff-planner/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
