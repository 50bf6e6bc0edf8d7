package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.analytics.Dashboard(c.Context())
	if err != nil {
		slog.Error("analytics aggregation failed", "error", err)
		return internalError(c)
	}
	return c.JSON(resp)
}
