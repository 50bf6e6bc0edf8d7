package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/handlers"
	"github.com/sondregut/trackspeed-site/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Webhook deliveries arrive in bursts from a small set of vendor IPs and
// must never see a 429: with bad auth every request in a burst well past
// the per-IP window gets the documented 401, not a limiter response.
func TestWebhookDeliveriesBypassAPILimiter(t *testing.T) {
	cfg := &config.Config{
		RevenueCatWebhookSecret: "shared-secret",
		SessionSecret:           "session-secret",
	}

	app := fiber.New()
	Setup(app, cfg, Handlers{
		Health:  handlers.NewHealthHandler(),
		Webhook: handlers.NewWebhookHandler(cfg, nil),
		Auth:    handlers.NewAuthHandler(cfg, session.NewManager(cfg.SessionSecret)),
	})

	for i := 0; i < 70; i++ {
		req := httptest.NewRequest("POST", "/api/webhooks/revenuecat", nil)
		req.Header.Set("Authorization", "wrong")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "request %d", i+1)
	}
}
