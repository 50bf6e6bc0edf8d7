package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/handlers"
	"github.com/sondregut/trackspeed-site/internal/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Webhook     *handlers.WebhookHandler
	Auth        *handlers.AuthHandler
	Promo       *handlers.PromoHandler
	Influencer  *handlers.InfluencerHandler
	Feedback    *handlers.FeedbackHandler
	Analytics   *handlers.AnalyticsHandler
	Campaign    *handlers.CampaignHandler
	Unsubscribe *handlers.UnsubscribeHandler
	Legal       *handlers.LegalHandler
	Pages       *handlers.PagesHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP. Vendor webhooks are
	// exempt: RevenueCat retries on 429 and delivers bursts from a small
	// set of egress IPs, and the endpoint carries its own secret auth.
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/webhooks")
		},
	}))

	api.Get("/health", h.Health.Check)

	// Webhooks authenticate with the shared secret header, not a session
	webhooks := api.Group("/webhooks")
	webhooks.Get("/revenuecat", h.Webhook.Liveness)
	webhooks.Post("/revenuecat", h.Webhook.HandleRevenueCat)

	// Public promo endpoints, stricter limit to slow down code guessing
	promo := api.Group("/promo")
	promo.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	promo.Get("/validate/:code", h.Promo.Validate)
	promo.Post("/redeem", h.Promo.Redeem)

	// Public feedback board
	feedback := api.Group("/feedback")
	feedback.Get("/posts", h.Feedback.ListPosts)
	feedback.Post("/posts", h.Feedback.CreatePost)
	feedback.Get("/posts/:id/comments", h.Feedback.ListComments)
	feedback.Post("/posts/:id/comments", h.Feedback.AddComment)
	feedback.Post("/posts/:id/vote", h.Feedback.Vote)

	// Influencer self-service application
	api.Post("/influencers/apply", h.Influencer.Apply)

	// Unsubscribe links carry their own HMAC auth
	app.Get("/unsubscribe", h.Unsubscribe.Confirm)
	app.Post("/unsubscribe", h.Unsubscribe.OneClick)

	// Admin: login page and session endpoints stay outside the gate
	app.Get("/admin/login", h.Pages.AdminLogin)
	app.Post("/admin/api/login", h.Auth.Login)
	app.Post("/admin/api/logout", h.Auth.Logout)

	admin := app.Group("/admin", middleware.AdminGate(cfg))
	admin.Get("/", h.Pages.AdminDashboard)

	adminAPI := admin.Group("/api")
	adminAPI.Get("/analytics", h.Analytics.Dashboard)

	adminAPI.Post("/promo-codes", h.Promo.Create)
	adminAPI.Get("/promo-codes", h.Promo.List)
	adminAPI.Put("/promo-codes/:id", h.Promo.Update)
	adminAPI.Delete("/promo-codes/:id", h.Promo.Delete)
	adminAPI.Get("/redemptions", h.Promo.ListRedemptions)
	adminAPI.Post("/redemptions/:id/revoke", h.Promo.RevokeRedemption)

	adminAPI.Get("/influencers", h.Influencer.List)
	adminAPI.Put("/influencers/:id/status", h.Influencer.UpdateStatus)

	adminAPI.Post("/campaigns/test-email", h.Campaign.SendTestEmail)
	adminAPI.Post("/campaigns/email", h.Campaign.SendCampaignEmail)
	adminAPI.Post("/campaigns/test-sms", h.Campaign.SendTestSMS)
	adminAPI.Post("/campaigns/push", h.Campaign.DispatchPush)

	// Legal and marketing pages; the localized catch-all goes last
	app.Get("/privacy", h.Legal.PrivacyPolicy)
	app.Get("/terms", h.Legal.TermsOfService)
	app.Get("/", h.Pages.Home)
	app.Get("/:lang", h.Pages.Home)
}
