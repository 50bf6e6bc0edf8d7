package handlers

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/unsubscribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The handler is wired with a nil DB: these cases must reject before any
// state change is attempted.
func newUnsubscribeApp(secret string) *fiber.App {
	h := NewUnsubscribeHandler(&config.Config{UnsubscribeSecret: secret}, nil)
	app := fiber.New()
	app.Get("/unsubscribe", h.Confirm)
	app.Post("/unsubscribe", h.OneClick)
	return app
}

func TestUnsubscribeRejectsInvalidToken(t *testing.T) {
	app := newUnsubscribeApp("secret")

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing params", target: "/unsubscribe"},
		{name: "missing token", target: "/unsubscribe?email=a%40b.com"},
		{name: "forged token", target: "/unsubscribe?email=a%40b.com&token=deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

			resp, err = app.Test(httptest.NewRequest("POST", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		})
	}
}

func TestUnsubscribeTokenForOtherAddressRejected(t *testing.T) {
	app := newUnsubscribeApp("secret")

	token := unsubscribe.Token("secret", "other@example.com")
	target := "/unsubscribe?email=" + url.QueryEscape("victim@example.com") + "&token=" + token

	resp, err := app.Test(httptest.NewRequest("POST", target, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
