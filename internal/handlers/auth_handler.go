package handlers

import (
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/session"
)

type AuthHandler struct {
	cfg      *config.Config
	sessions *session.Manager
}

func NewAuthHandler(cfg *config.Config, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

// Login checks the shared admin password and sets the signed session
// cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.cfg.AdminPassword == "" {
		slog.Error("admin password not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin login not configured",
		})
	}

	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid password",
		})
	}

	token, err := h.sessions.Issue()
	if err != nil {
		slog.Error("session issue failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout expires the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}
