package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/content"
	"github.com/sondregut/trackspeed-site/internal/database"
	"github.com/sondregut/trackspeed-site/internal/email"
	"github.com/sondregut/trackspeed-site/internal/handlers"
	"github.com/sondregut/trackspeed-site/internal/logging"
	"github.com/sondregut/trackspeed-site/internal/middleware"
	"github.com/sondregut/trackspeed-site/internal/notify"
	"github.com/sondregut/trackspeed-site/internal/push"
	"github.com/sondregut/trackspeed-site/internal/routes"
	"github.com/sondregut/trackspeed-site/internal/services"
	"github.com/sondregut/trackspeed-site/internal/session"
	"github.com/sondregut/trackspeed-site/internal/sms"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Secrets without safe defaults; refuse to start rather than run open.
	required := map[string]string{
		"DATABASE_URL":              cfg.DatabaseURL,
		"ADMIN_PASSWORD":            cfg.AdminPassword,
		"SESSION_SECRET":            cfg.SessionSecret,
		"REVENUECAT_WEBHOOK_SECRET": cfg.RevenueCatWebhookSecret,
		"UNSUBSCRIBE_SECRET":        cfg.UnsubscribeSecret,
	}
	for name, val := range required {
		if val == "" {
			slog.Error(name + " environment variable is required")
			os.Exit(1)
		}
	}

	// Marketing copy
	registry, err := content.LoadDir(cfg.LocalesDir)
	if err != nil {
		slog.Error("failed to load locales", "dir", cfg.LocalesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("locales loaded", "locales", registry.Locales())

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Outbound channels
	var emailSender email.Sender
	switch {
	case cfg.ResendAPIKey != "":
		emailSender = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	case cfg.SMTPHost != "":
		emailSender = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	default:
		slog.Warn("no email provider configured, email endpoints disabled")
	}

	var smsClient *sms.Client
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		smsClient = sms.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}
	pushClient := push.NewClient(cfg.PushFunctionURL)
	notifier := notify.NewChatNotifier(cfg.ChatWebhookURL)

	// Services
	subscriptionService := services.NewSubscriptionService(database.DB, notifier)
	promoService := services.NewPromoService(database.DB)
	influencerService := services.NewInfluencerService(database.DB, emailSender, notifier)
	feedbackService := services.NewFeedbackService(database.DB)
	analyticsService := services.NewAnalyticsService(database.DB)
	campaignService := services.NewCampaignService(database.DB, emailSender, smsClient, pushClient, cfg.SiteBaseURL, cfg.UnsubscribeSecret)

	sessions := session.NewManager(cfg.SessionSecret)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, routes.Handlers{
		Health:      handlers.NewHealthHandler(),
		Webhook:     handlers.NewWebhookHandler(cfg, subscriptionService),
		Auth:        handlers.NewAuthHandler(cfg, sessions),
		Promo:       handlers.NewPromoHandler(promoService),
		Influencer:  handlers.NewInfluencerHandler(influencerService),
		Feedback:    handlers.NewFeedbackHandler(cfg, feedbackService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
		Campaign:    handlers.NewCampaignHandler(campaignService),
		Unsubscribe: handlers.NewUnsubscribeHandler(cfg, database.DB),
		Legal:       handlers.NewLegalHandler(),
		Pages:       handlers.NewPagesHandler(registry),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
