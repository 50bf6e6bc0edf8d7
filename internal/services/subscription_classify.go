package services

import (
	"math"
	"strings"

	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/revenuecat"
)

// statusByEvent is the fixed classification table. Event types absent from
// it are skipped explicitly by the reconciler instead of being treated as
// purchases.
var statusByEvent = map[string]string{
	revenuecat.EventInitialPurchase:     models.SubStatusActive,
	revenuecat.EventRenewal:             models.SubStatusActive,
	revenuecat.EventNonRenewingPurchase: models.SubStatusActive,
	revenuecat.EventUncancellation:      models.SubStatusActive,
	revenuecat.EventCancellation:        models.SubStatusCancelled,
	revenuecat.EventExpiration:          models.SubStatusExpired,
	revenuecat.EventBillingIssue:        models.SubStatusBillingIssue,
}

// paymentEvents is the allow-list of event types that carry revenue and may
// produce a ledger entry.
var paymentEvents = map[string]bool{
	revenuecat.EventInitialPurchase:     true,
	revenuecat.EventRenewal:             true,
	revenuecat.EventNonRenewingPurchase: true,
}

func statusForEvent(eventType string) (string, bool) {
	status, ok := statusByEvent[eventType]
	return status, ok
}

// isTrial reports whether the delivery describes an active trial period. A
// trial conversion clears the flag even while the vendor still reports a
// trial period type.
func isTrial(periodType string, trialConverted bool) bool {
	return periodType == revenuecat.PeriodTypeTrial && !trialConverted
}

// planFromProductID derives monthly/yearly from the product identifier by
// case-insensitive substring match. Returns "" when neither token matches;
// callers default to monthly when persisting.
func planFromProductID(productID string) string {
	id := strings.ToLower(productID)
	switch {
	case strings.Contains(id, "month"):
		return models.PlanMonthly
	case strings.Contains(id, "year"):
		return models.PlanYearly
	default:
		return ""
	}
}

// priceCents resolves the event price to integer cents, preferring the
// price in the purchased currency. Returns nil when the delivery carries no
// price field at all.
func priceCents(e *revenuecat.Event) *int64 {
	price := e.PriceInPurchasedCurrency
	if price == nil {
		price = e.Price
	}
	if price == nil {
		return nil
	}
	cents := int64(math.Round(*price * 100))
	return &cents
}
