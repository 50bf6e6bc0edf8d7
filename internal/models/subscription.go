package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription statuses written by the webhook reconciler.
const (
	SubStatusActive       = "active"
	SubStatusCancelled    = "cancelled"
	SubStatusExpired      = "expired"
	SubStatusBillingIssue = "billing_issue"
)

// Plan types derived from the RevenueCat product identifier.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Subscription is the reconciled billing state for one subscriber, keyed by
// the RevenueCat app user id. Rows are only ever mutated by webhook
// deliveries and are never deleted.
type Subscription struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AppUserID      string     `gorm:"size:255;not null;uniqueIndex" json:"app_user_id"`
	Status         string     `gorm:"size:20;not null;default:'active';index" json:"status"`
	ProductID      string     `gorm:"size:255" json:"product_id"`
	PlanType       string     `gorm:"size:10;default:'monthly'" json:"plan_type"`
	PriceCents     *int64     `json:"price_cents"`
	Currency       *string    `gorm:"size:3" json:"currency"`
	IsTrial        bool       `gorm:"default:false;index" json:"is_trial"`
	ExpiresAt      *time.Time `json:"expires_at"`
	GraceExpiresAt *time.Time `json:"grace_expires_at"`
	Store          string     `gorm:"size:30" json:"store"`
	Environment    string     `gorm:"size:20" json:"environment"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SubscriptionEvent is the append-only revenue ledger. One row per
// payment-bearing webhook delivery; the unique event id absorbs vendor
// redeliveries. Rows are never updated.
type SubscriptionEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     string    `gorm:"size:255;not null;uniqueIndex" json:"event_id"`
	AppUserID   string    `gorm:"size:255;not null;index" json:"app_user_id"`
	EventType   string    `gorm:"size:50;not null" json:"event_type"`
	ProductID   string    `gorm:"size:255" json:"product_id"`
	PlanType    string    `gorm:"size:10" json:"plan_type"`
	PriceCents  int64     `gorm:"not null" json:"price_cents"`
	Currency    string    `gorm:"size:3" json:"currency"`
	Store       string    `gorm:"size:30" json:"store"`
	Environment string    `gorm:"size:20" json:"environment"`
	PurchasedAt time.Time `gorm:"index" json:"purchased_at"`
	CreatedAt   time.Time `json:"created_at"`
}
