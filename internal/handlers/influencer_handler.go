package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type InfluencerHandler struct {
	influencers *services.InfluencerService
}

func NewInfluencerHandler(influencers *services.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencers: influencers}
}

// Apply is the public application intake on the marketing site.
func (h *InfluencerHandler) Apply(c *fiber.Ctx) error {
	var req dto.InfluencerApplication
	if !parseBody(c, &req) {
		return nil
	}

	influencer, err := h.influencers.Apply(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("influencer application failed", "error", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"referral_code": influencer.ReferralCode,
		"status":        influencer.Status,
	})
}

func (h *InfluencerHandler) List(c *fiber.Ctx) error {
	influencers, err := h.influencers.List(c.Query("status"))
	if err != nil {
		slog.Error("influencer list failed", "error", err)
		return internalError(c)
	}
	return c.JSON(influencers)
}

// UpdateStatus runs one of the admin transitions: approve, reject,
// suspend.
func (h *InfluencerHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid influencer id")
	}

	var req dto.UpdateInfluencerStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	influencer, err := h.influencers.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInfluencerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidTransition):
			return badRequest(c, err.Error())
		default:
			slog.Error("influencer status update failed", "influencer_id", id, "error", err)
			return internalError(c)
		}
	}
	return c.JSON(influencer)
}
