package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/notify"
	"github.com/sondregut/trackspeed-site/internal/revenuecat"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionService reconciles RevenueCat webhook deliveries into the
// subscriptions table and the append-only revenue ledger. The upsert is
// authoritative; the ledger is best-effort analytics.
type SubscriptionService struct {
	db       *gorm.DB
	notifier *notify.ChatNotifier
}

func NewSubscriptionService(db *gorm.DB, notifier *notify.ChatNotifier) *SubscriptionService {
	return &SubscriptionService{db: db, notifier: notifier}
}

func (s *SubscriptionService) HandleWebhookEvent(event *revenuecat.Event) error {
	switch event.Type {
	case revenuecat.EventSubscriberAlias:
		slog.Info("subscriber alias event ignored", "app_user_id", event.AppUserID)
		return nil
	case revenuecat.EventProductChange:
		return s.handleProductChange(event)
	case revenuecat.EventTransfer:
		return s.handleTransfer(event)
	}

	status, ok := statusForEvent(event.Type)
	if !ok {
		slog.Warn("unrecognized webhook event type skipped",
			"event_type", event.Type, "app_user_id", event.AppUserID)
		return nil
	}

	if event.AppUserID == "" {
		return errors.New("event has no app_user_id")
	}

	cents := priceCents(event)
	plan := planFromProductID(event.ProductID)
	if err := s.upsert(event, status, plan, cents); err != nil {
		return fmt.Errorf("subscription upsert failed: %w", err)
	}

	// Ledger failures are logged inside appendLedger and never fail the
	// delivery.
	s.appendLedger(event, plan, cents)

	if event.Type == revenuecat.EventInitialPurchase {
		s.notifier.Notify(fmt.Sprintf("New TrackSpeed purchase: %s (%s, %s)",
			event.ProductID, event.Store, event.Environment))
	}
	return nil
}

// upsert recomputes the full subscription patch from this delivery and
// writes it keyed by app user id. Price columns are only assigned when the
// delivery resolved a price; the grace column is set on billing issues and
// cleared whenever the subscriber is active again.
func (s *SubscriptionService) upsert(event *revenuecat.Event, status, plan string, cents *int64) error {
	if plan == "" {
		plan = models.PlanMonthly
	}

	sub := models.Subscription{
		AppUserID:   event.AppUserID,
		Status:      status,
		ProductID:   event.ProductID,
		PlanType:    plan,
		IsTrial:     isTrial(event.PeriodType, event.IsTrialConversion),
		Store:       event.Store,
		Environment: event.Environment,
	}

	columns := []string{"status", "product_id", "plan_type", "is_trial",
		"expires_at", "store", "environment", "updated_at"}

	if cents != nil {
		sub.PriceCents = cents
		if event.Currency != "" {
			currency := event.Currency
			sub.Currency = &currency
		}
		columns = append(columns, "price_cents", "currency")
	}

	if event.ExpirationAtMs > 0 {
		expires := msToTime(event.ExpirationAtMs)
		sub.ExpiresAt = &expires
	}

	switch status {
	case models.SubStatusBillingIssue:
		if event.GracePeriodExpirationAtMs > 0 {
			grace := msToTime(event.GracePeriodExpirationAtMs)
			sub.GraceExpiresAt = &grace
		}
		columns = append(columns, "grace_expires_at")
	case models.SubStatusActive:
		// Recovered subscribers leave the grace window.
		columns = append(columns, "grace_expires_at")
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "app_user_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&sub).Error
}

// handleProductChange patches only the product id; everything else keeps
// the state of the previous delivery.
func (s *SubscriptionService) handleProductChange(event *revenuecat.Event) error {
	result := s.db.Model(&models.Subscription{}).
		Where("app_user_id = ?", event.AppUserID).
		Update("product_id", event.ProductID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		slog.Warn("product change for unknown subscriber", "app_user_id", event.AppUserID)
	}
	return nil
}

// handleTransfer re-keys the subscription row from the old subscriber id to
// the new one.
func (s *SubscriptionService) handleTransfer(event *revenuecat.Event) error {
	if len(event.TransferredFrom) == 0 || len(event.TransferredTo) == 0 {
		return errors.New("transfer event missing transferred_from/transferred_to")
	}
	from, to := event.TransferredFrom[0], event.TransferredTo[0]

	return s.db.Transaction(func(tx *gorm.DB) error {
		// The destination may already have a row of its own (account
		// merges); drop it so the re-key cannot hit the unique index.
		if err := tx.Where("app_user_id = ?", to).
			Delete(&models.Subscription{}).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Subscription{}).
			Where("app_user_id = ?", from).
			Update("app_user_id", to)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			slog.Warn("transfer for unknown subscriber", "from", from, "to", to)
		} else {
			slog.Info("subscription transferred", "from", from, "to", to)
		}
		return nil
	})
}

// appendLedger writes a revenue row for payment-bearing events with a
// positive resolved price. The unique event id makes vendor redeliveries
// no-ops.
func (s *SubscriptionService) appendLedger(event *revenuecat.Event, plan string, cents *int64) {
	if !paymentEvents[event.Type] || cents == nil || *cents <= 0 {
		return
	}

	entry := models.SubscriptionEvent{
		EventID:     event.ID,
		AppUserID:   event.AppUserID,
		EventType:   event.Type,
		ProductID:   event.ProductID,
		PlanType:    plan,
		PriceCents:  *cents,
		Currency:    event.Currency,
		Store:       event.Store,
		Environment: event.Environment,
		PurchasedAt: msToTime(event.PurchasedAtMs),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(&entry).Error
	if err != nil {
		slog.Error("revenue ledger append failed", "event_id", event.ID, "error", err)
	}
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()
}
