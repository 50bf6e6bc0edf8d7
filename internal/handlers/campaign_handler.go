package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
}

func NewCampaignHandler(campaigns *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) SendTestEmail(c *fiber.Ctx) error {
	var req dto.TestEmailRequest
	if !parseBody(c, &req) {
		return nil
	}

	log, err := h.campaigns.SendTestEmail(req.To, req.Subject, req.HTML)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(log)
}

func (h *CampaignHandler) SendCampaignEmail(c *fiber.Ctx) error {
	var req dto.CampaignEmailRequest
	if !parseBody(c, &req) {
		return nil
	}

	sent, failed, err := h.campaigns.SendCampaignEmail(req.Subject, req.HTML)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "sent": sent, "failed": failed})
}

func (h *CampaignHandler) SendTestSMS(c *fiber.Ctx) error {
	var req dto.TestSMSRequest
	if !parseBody(c, &req) {
		return nil
	}

	log, err := h.campaigns.SendTestSMS(req.To, req.Body)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(log)
}

func (h *CampaignHandler) DispatchPush(c *fiber.Ctx) error {
	var req dto.PushRequest
	if !parseBody(c, &req) {
		return nil
	}

	log, err := h.campaigns.DispatchPush(req.Title, req.Body, req.Audience)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(log)
}

func campaignError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmailNotConfigured),
		errors.Is(err, services.ErrSMSNotConfigured),
		errors.Is(err, services.ErrPushNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		slog.Error("campaign operation failed", "error", err)
		return internalError(c)
	}
}
