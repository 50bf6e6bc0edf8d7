package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookApp(secret string) *fiber.App {
	h := NewWebhookHandler(&config.Config{RevenueCatWebhookSecret: secret}, nil)
	app := fiber.New()
	app.Get("/api/webhooks/revenuecat", h.Liveness)
	app.Post("/api/webhooks/revenuecat", h.HandleRevenueCat)
	return app
}

func TestWebhookLiveness(t *testing.T) {
	app := newWebhookApp("shh")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/webhooks/revenuecat", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWebhookFailsClosedWithoutSecret(t *testing.T) {
	app := newWebhookApp("")

	req := httptest.NewRequest("POST", "/api/webhooks/revenuecat", nil)
	req.Header.Set("Authorization", "anything")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestWebhookRejectsBadAuth(t *testing.T) {
	app := newWebhookApp("shared-secret")

	tests := []struct {
		name string
		auth string
	}{
		{name: "missing header", auth: ""},
		{name: "wrong secret", auth: "wrong"},
		{name: "prefix only", auth: "shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/webhooks/revenuecat", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
