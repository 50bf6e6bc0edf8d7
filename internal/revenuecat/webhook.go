// Package revenuecat defines the subset of the RevenueCat webhook schema
// that the reconciler consumes.
package revenuecat

// Event types delivered by RevenueCat.
const (
	EventInitialPurchase     = "INITIAL_PURCHASE"
	EventRenewal             = "RENEWAL"
	EventNonRenewingPurchase = "NON_RENEWING_PURCHASE"
	EventUncancellation      = "UNCANCELLATION"
	EventCancellation        = "CANCELLATION"
	EventExpiration          = "EXPIRATION"
	EventBillingIssue        = "BILLING_ISSUE"
	EventProductChange       = "PRODUCT_CHANGE"
	EventTransfer            = "TRANSFER"
	EventSubscriberAlias     = "SUBSCRIBER_ALIAS"
)

// PeriodTypeTrial marks an introductory trial period.
const PeriodTypeTrial = "TRIAL"

// Webhook is the envelope RevenueCat posts to the webhook endpoint.
type Webhook struct {
	APIVersion string `json:"api_version"`
	Event      Event  `json:"event"`
}

// Event is a single webhook event. Price fields are pointers so that an
// absent field is distinguishable from an explicit zero.
type Event struct {
	ID                        string   `json:"id"`
	Type                      string   `json:"type"`
	AppUserID                 string   `json:"app_user_id"`
	OriginalAppUserID         string   `json:"original_app_user_id"`
	ProductID                 string   `json:"product_id"`
	EntitlementIDs            []string `json:"entitlement_ids"`
	PeriodType                string   `json:"period_type"`
	PurchasedAtMs             int64    `json:"purchased_at_ms"`
	ExpirationAtMs            int64    `json:"expiration_at_ms"`
	GracePeriodExpirationAtMs int64    `json:"grace_period_expiration_at_ms"`
	IsTrialConversion         bool     `json:"is_trial_conversion"`
	Environment               string   `json:"environment"`
	Store                     string   `json:"store"`
	CountryCode               string   `json:"country_code"`
	Currency                  string   `json:"currency"`
	Price                     *float64 `json:"price"`
	PriceInPurchasedCurrency  *float64 `json:"price_in_purchased_currency"`
	TransferredFrom           []string `json:"transferred_from"`
	TransferredTo             []string `json:"transferred_to"`
}
