package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	AppEnv      string
	CORSOrigins string
	SiteBaseURL string
	LocalesDir  string

	// Database (Supabase Postgres connection string)
	DatabaseURL string

	// Admin back-office
	AdminPassword string
	SessionSecret string

	// RevenueCat
	RevenueCatWebhookSecret string

	// Email (Resend API preferred, SMTP fallback)
	ResendAPIKey string
	EmailFrom    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string

	// Twilio SMS
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	// Outbound integrations
	PushFunctionURL string
	ChatWebhookURL  string

	// Public surface secrets
	UnsubscribeSecret string
	VoteSalt          string

	// Observability
	SentryDSN string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		SiteBaseURL: getEnv("SITE_BASE_URL", "http://localhost:8080"),
		LocalesDir:  getEnv("LOCALES_DIR", "locales"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),

		RevenueCatWebhookSecret: getEnv("REVENUECAT_WEBHOOK_SECRET", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "TrackSpeed <hello@trackspeed.app>"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:       getEnv("TWILIO_FROM", ""),

		PushFunctionURL: getEnv("PUSH_FUNCTION_URL", ""),
		ChatWebhookURL:  getEnv("CHAT_WEBHOOK_URL", ""),

		UnsubscribeSecret: getEnv("UNSUBSCRIBE_SECRET", ""),
		VoteSalt:          getEnv("VOTE_SALT", "trackspeed-feedback"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

// IsProduction reports whether the server runs with production settings
// (secure cookies, strict CORS).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
