package middleware

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp(secret string) *fiber.App {
	cfg := &config.Config{SessionSecret: secret}
	app := fiber.New()

	admin := app.Group("/admin", AdminGate(cfg))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendString("dashboard") })
	admin.Get("/api/analytics", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestAdminGateRedirectsPagesToLogin(t *testing.T) {
	app := newGatedApp("test-secret")

	req := httptest.NewRequest("GET", "/admin/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "/admin/login?redirect=")

	parsed, err := url.Parse(location)
	require.NoError(t, err)
	assert.Equal(t, "/admin/", parsed.Query().Get("redirect"))
}

func TestAdminGateRejectsAPIWithJSON(t *testing.T) {
	app := newGatedApp("test-secret")

	req := httptest.NewRequest("GET", "/admin/api/analytics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestAdminGateAcceptsValidSessionCookie(t *testing.T) {
	app := newGatedApp("test-secret")

	token, err := session.NewManager("test-secret").Issue()
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/api/analytics", nil)
	req.Header.Set("Cookie", session.CookieName+"="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminGateRejectsForgedCookie(t *testing.T) {
	app := newGatedApp("test-secret")

	token, err := session.NewManager("other-secret").Issue()
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/api/analytics", nil)
	req.Header.Set("Cookie", session.CookieName+"="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
