package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type PromoHandler struct {
	promos *services.PromoService
}

func NewPromoHandler(promos *services.PromoService) *PromoHandler {
	return &PromoHandler{promos: promos}
}

func (h *PromoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePromoCodeRequest
	if !parseBody(c, &req) {
		return nil
	}

	promo, err := h.promos.Create(req)
	if err != nil {
		return promoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(promo)
}

func (h *PromoHandler) List(c *fiber.Ctx) error {
	codes, err := h.promos.List()
	if err != nil {
		slog.Error("promo list failed", "error", err)
		return internalError(c)
	}
	return c.JSON(codes)
}

func (h *PromoHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid promo code id")
	}

	var req dto.UpdatePromoCodeRequest
	if !parseBody(c, &req) {
		return nil
	}

	promo, err := h.promos.Update(id, req)
	if err != nil {
		return promoError(c, err)
	}
	return c.JSON(promo)
}

func (h *PromoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid promo code id")
	}

	if err := h.promos.Delete(id); err != nil {
		return promoError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Validate is the public dry-run check used by the mobile client.
func (h *PromoHandler) Validate(c *fiber.Ctx) error {
	promo, err := h.promos.Validate(c.Params("code"))
	if err != nil {
		if isPromoRejection(err) {
			return c.JSON(dto.ValidatePromoResponse{Valid: false})
		}
		slog.Error("promo validate failed", "error", err)
		return internalError(c)
	}
	return c.JSON(dto.ValidatePromoResponse{
		Valid:        true,
		Type:         promo.Type,
		DurationDays: promo.DurationDays,
	})
}

// Redeem is the public endpoint the mobile client calls with a device id.
func (h *PromoHandler) Redeem(c *fiber.Ctx) error {
	var req dto.RedeemPromoRequest
	if !parseBody(c, &req) {
		return nil
	}

	redemption, err := h.promos.Redeem(req.Code, req.DeviceID)
	if err != nil {
		return promoError(c, err)
	}

	promo, _ := h.promos.Validate(req.Code)
	resp := dto.RedeemPromoResponse{
		Success:      true,
		ProExpiresAt: redemption.ProExpiresAt,
	}
	if promo != nil {
		resp.Type = promo.Type
	}
	return c.JSON(resp)
}

func (h *PromoHandler) ListRedemptions(c *fiber.Ctx) error {
	rows, err := h.promos.ListRedemptions(c.QueryInt("limit", 200))
	if err != nil {
		slog.Error("redemption list failed", "error", err)
		return internalError(c)
	}
	return c.JSON(rows)
}

func (h *PromoHandler) RevokeRedemption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid redemption id")
	}

	if err := h.promos.RevokeRedemption(id); err != nil {
		return promoError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func isPromoRejection(err error) bool {
	return errors.Is(err, services.ErrCodeInvalid) ||
		errors.Is(err, services.ErrCodeNotFound) ||
		errors.Is(err, services.ErrCodeInactive) ||
		errors.Is(err, services.ErrCodeExpired) ||
		errors.Is(err, services.ErrCodeExhausted)
}

func promoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCodeExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, services.ErrCodeInvalid):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrCodeNotFound), errors.Is(err, services.ErrRedemptionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case isPromoRejection(err):
		return badRequest(c, err.Error())
	default:
		slog.Error("promo operation failed", "error", err)
		return internalError(c)
	}
}
