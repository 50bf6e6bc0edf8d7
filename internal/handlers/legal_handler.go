package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, sprint session data, and app usage data to provide our services. Video recorded for timing analysis is processed on your device and is never uploaded unless you explicitly share it.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate TrackSpeed, sync your training history across devices, and improve our timing accuracy.</p>
<h2>Subscriptions</h2>
<p>Subscription status is managed through RevenueCat and the App Store. We receive purchase events but never see your payment details.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@trackspeed.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Acceptance</h2>
<p>By using TrackSpeed, you agree to these terms.</p>
<h2>Use of the App</h2>
<p>TrackSpeed provides sprint timing and training analysis. Timing results are estimates and should not be relied on for official competition.</p>
<h2>Subscriptions</h2>
<p>Pro features require an active subscription managed through the App Store. Subscriptions auto-renew unless cancelled 24 hours before the end of the current period. Promo codes grant access on the terms stated at redemption and may be revoked if obtained fraudulently.</p>
<h2>Feedback Board</h2>
<p>You agree not to post offensive, illegal, or harmful content on the public feedback board. We reserve the right to remove content that violates these terms.</p>
<h2>Termination</h2>
<p>We may suspend or terminate accounts that violate these terms.</p>
<h2>Contact</h2>
<p>For questions, contact us at support@trackspeed.app</p>
</body></html>`)
}
