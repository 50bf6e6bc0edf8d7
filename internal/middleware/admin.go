package middleware

import (
	"net/url"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/session"
)

// AdminGate protects the admin area with the signed session cookie. API
// calls get a 401 JSON body; page loads are sent to the login form with
// the original path preserved so login can return them there.
func AdminGate(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.SessionSecret)},
		TokenLookup: "cookie:" + session.CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if strings.HasPrefix(c.Path(), "/admin/api") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized: invalid or expired session",
				})
			}
			return c.Redirect("/admin/login?redirect="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		},
	})
}
