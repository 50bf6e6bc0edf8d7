package services

import (
	"testing"

	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseEvent(id, appUserID string, price float64) *revenuecat.Event {
	return &revenuecat.Event{
		ID:                       id,
		Type:                     revenuecat.EventInitialPurchase,
		AppUserID:                appUserID,
		ProductID:                "trackspeed_yearly_49",
		PurchasedAtMs:            1756400000000,
		ExpirationAtMs:           1787936000000,
		Currency:                 "USD",
		PriceInPurchasedCurrency: &price,
		Store:                    "app_store",
		Environment:              "PRODUCTION",
	}
}

func TestWebhookReplayIsIdempotent(t *testing.T) {
	db := newTestDB(t, &models.Subscription{}, &models.SubscriptionEvent{})
	svc := NewSubscriptionService(db, nil)

	event := purchaseEvent("evt-1", "user-1", 49.99)
	require.NoError(t, svc.HandleWebhookEvent(event))
	require.NoError(t, svc.HandleWebhookEvent(event))

	var subs []models.Subscription
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, models.SubStatusActive, subs[0].Status)
	assert.Equal(t, models.PlanYearly, subs[0].PlanType)
	require.NotNil(t, subs[0].PriceCents)
	assert.Equal(t, int64(4999), *subs[0].PriceCents)

	var ledger int64
	require.NoError(t, db.Model(&models.SubscriptionEvent{}).Count(&ledger).Error)
	assert.Equal(t, int64(1), ledger, "redelivery must not add a second ledger row")
}

func TestUnknownEventTypeIsSkipped(t *testing.T) {
	db := newTestDB(t, &models.Subscription{}, &models.SubscriptionEvent{})
	svc := NewSubscriptionService(db, nil)

	err := svc.HandleWebhookEvent(&revenuecat.Event{
		ID:        "evt-x",
		Type:      "TEMPORARY_ENTITLEMENT_GRANT",
		AppUserID: "user-1",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Subscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransferReplacesExistingDestinationRow(t *testing.T) {
	db := newTestDB(t, &models.Subscription{}, &models.SubscriptionEvent{})
	svc := NewSubscriptionService(db, nil)

	require.NoError(t, svc.HandleWebhookEvent(purchaseEvent("evt-a", "user-a", 9.99)))
	require.NoError(t, svc.HandleWebhookEvent(purchaseEvent("evt-b", "user-b", 9.99)))

	err := svc.HandleWebhookEvent(&revenuecat.Event{
		ID:              "evt-t",
		Type:            revenuecat.EventTransfer,
		TransferredFrom: []string{"user-a"},
		TransferredTo:   []string{"user-b"},
	})
	require.NoError(t, err)

	var subs []models.Subscription
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, "user-b", subs[0].AppUserID)
}

func TestTransferToFreshSubscriber(t *testing.T) {
	db := newTestDB(t, &models.Subscription{}, &models.SubscriptionEvent{})
	svc := NewSubscriptionService(db, nil)

	require.NoError(t, svc.HandleWebhookEvent(purchaseEvent("evt-a", "user-a", 9.99)))

	err := svc.HandleWebhookEvent(&revenuecat.Event{
		ID:              "evt-t",
		Type:            revenuecat.EventTransfer,
		TransferredFrom: []string{"user-a"},
		TransferredTo:   []string{"user-c"},
	})
	require.NoError(t, err)

	var sub models.Subscription
	require.NoError(t, db.First(&sub, "app_user_id = ?", "user-c").Error)
	assert.Equal(t, models.SubStatusActive, sub.Status)
}
