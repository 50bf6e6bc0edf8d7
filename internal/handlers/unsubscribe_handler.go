package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/unsubscribe"
	"gorm.io/gorm"
)

type UnsubscribeHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewUnsubscribeHandler(cfg *config.Config, db *gorm.DB) *UnsubscribeHandler {
	return &UnsubscribeHandler{cfg: cfg, db: db}
}

// OneClick implements RFC 8058 one-click unsubscribe: a POST with a valid
// token succeeds with an empty body.
func (h *UnsubscribeHandler) OneClick(c *fiber.Ctx) error {
	email, ok := h.verify(c)
	if !ok {
		return c.SendStatus(fiber.StatusForbidden)
	}

	if err := h.flip(email); err != nil {
		slog.Error("unsubscribe failed", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Confirm handles the browser GET from the email footer link and renders a
// confirmation page.
func (h *UnsubscribeHandler) Confirm(c *fiber.Ctx) error {
	email, ok := h.verify(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).Type("html").SendString(unsubscribeErrorPage)
	}

	if err := h.flip(email); err != nil {
		slog.Error("unsubscribe failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).Type("html").SendString(unsubscribeErrorPage)
	}
	return c.Type("html").SendString(unsubscribeSuccessPage)
}

func (h *UnsubscribeHandler) verify(c *fiber.Ctx) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	token := c.Query("token")
	if email == "" || token == "" {
		return "", false
	}
	if !unsubscribe.Verify(h.cfg.UnsubscribeSecret, email, token) {
		slog.Warn("unsubscribe token rejected", "email", email)
		return "", false
	}
	return email, true
}

// flip marks the contact unsubscribed. A second unsubscribe for the same
// address stays a success; links in old emails keep working.
func (h *UnsubscribeHandler) flip(email string) error {
	now := time.Now().UTC()
	return h.db.Model(&models.Contact{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"unsubscribed":    true,
			"unsubscribed_at": now,
		}).Error
}

const unsubscribeSuccessPage = `<!DOCTYPE html>
<html><head><title>Unsubscribed - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:560px;margin:80px auto;padding:20px;color:#333;text-align:center}h1{color:#1a1a1a}</style>
</head><body>
<h1>You're unsubscribed</h1>
<p>You will no longer receive marketing emails from TrackSpeed.</p>
<p>Changed your mind? You can sign up again anytime at trackspeed.app.</p>
</body></html>`

const unsubscribeErrorPage = `<!DOCTYPE html>
<html><head><title>Invalid link - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:560px;margin:80px auto;padding:20px;color:#333;text-align:center}h1{color:#1a1a1a}</style>
</head><body>
<h1>This link is not valid</h1>
<p>The unsubscribe link is incomplete or has been altered. Please use the
link from the bottom of a recent TrackSpeed email.</p>
</body></html>`
