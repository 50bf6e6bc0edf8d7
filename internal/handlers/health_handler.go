package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/database"
	"github.com/sondregut/trackspeed-site/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		DB:        "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := database.Ping(); err != nil {
		resp.Status = "degraded"
		resp.DB = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
