package services

import (
	"testing"

	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForEvent(t *testing.T) {
	tests := []struct {
		eventType string
		want      string
	}{
		{revenuecat.EventInitialPurchase, models.SubStatusActive},
		{revenuecat.EventRenewal, models.SubStatusActive},
		{revenuecat.EventNonRenewingPurchase, models.SubStatusActive},
		{revenuecat.EventUncancellation, models.SubStatusActive},
		{revenuecat.EventCancellation, models.SubStatusCancelled},
		{revenuecat.EventExpiration, models.SubStatusExpired},
		{revenuecat.EventBillingIssue, models.SubStatusBillingIssue},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			got, ok := statusForEvent(tt.eventType)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusForEventUnknownTypeIsNotMapped(t *testing.T) {
	_, ok := statusForEvent("TEMPORARY_ENTITLEMENT_GRANT")
	assert.False(t, ok)

	_, ok = statusForEvent("")
	assert.False(t, ok)
}

func TestIsTrial(t *testing.T) {
	assert.True(t, isTrial(revenuecat.PeriodTypeTrial, false))
	// Conversion clears the flag even while the vendor still reports TRIAL.
	assert.False(t, isTrial(revenuecat.PeriodTypeTrial, true))
	assert.False(t, isTrial("NORMAL", false))
	assert.False(t, isTrial("", false))
}

func TestPlanFromProductID(t *testing.T) {
	tests := []struct {
		productID string
		want      string
	}{
		{"trackspeed_yearly_49", models.PlanYearly},
		{"trackspeed_month", models.PlanMonthly},
		{"TRACKSPEED_MONTHLY_PRO", models.PlanMonthly},
		{"TrackSpeed_YEAR", models.PlanYearly},
		{"trackspeed_lifetime", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.productID, func(t *testing.T) {
			assert.Equal(t, tt.want, planFromProductID(tt.productID))
		})
	}
}

func TestPriceCents(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("rounds to integer cents", func(t *testing.T) {
		got := priceCents(&revenuecat.Event{Price: f(9.99)})
		require.NotNil(t, got)
		assert.Equal(t, int64(999), *got)
	})

	t.Run("prefers purchased currency price", func(t *testing.T) {
		got := priceCents(&revenuecat.Event{
			Price:                    f(9.99),
			PriceInPurchasedCurrency: f(109.0),
		})
		require.NotNil(t, got)
		assert.Equal(t, int64(10900), *got)
	})

	t.Run("absent price fields yield nil", func(t *testing.T) {
		assert.Nil(t, priceCents(&revenuecat.Event{}))
	})

	t.Run("explicit zero is kept", func(t *testing.T) {
		got := priceCents(&revenuecat.Event{Price: f(0)})
		require.NotNil(t, got)
		assert.Equal(t, int64(0), *got)
	})

	t.Run("sub-cent fractions round to nearest", func(t *testing.T) {
		got := priceCents(&revenuecat.Event{Price: f(49.999)})
		require.NotNil(t, got)
		assert.Equal(t, int64(5000), *got)
	})
}
