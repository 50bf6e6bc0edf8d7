package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/revenuecat"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type WebhookHandler struct {
	cfg           *config.Config
	subscriptions *services.SubscriptionService
}

func NewWebhookHandler(cfg *config.Config, subscriptions *services.SubscriptionService) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, subscriptions: subscriptions}
}

// Liveness answers RevenueCat's endpoint check.
func (h *WebhookHandler) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "revenuecat-webhook"})
}

// HandleRevenueCat authenticates and reconciles one webhook delivery.
func (h *WebhookHandler) HandleRevenueCat(c *fiber.Ctx) error {
	secret := h.cfg.RevenueCatWebhookSecret
	if secret == "" {
		// Fail closed rather than accept unauthenticated writes.
		slog.Error("webhook secret not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhook not configured",
		})
	}

	if subtle.ConstantTimeCompare([]byte(c.Get("Authorization")), []byte(secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var webhook revenuecat.Webhook
	if err := c.BodyParser(&webhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}

	if err := h.subscriptions.HandleWebhookEvent(&webhook.Event); err != nil {
		slog.Error("webhook processing failed",
			"event_type", webhook.Event.Type,
			"app_user_id", webhook.Event.AppUserID,
			"error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process webhook event",
		})
	}

	slog.Info("webhook processed",
		"event_type", webhook.Event.Type, "app_user_id", webhook.Event.AppUserID)
	return c.JSON(dto.SuccessResponse{Success: true})
}
