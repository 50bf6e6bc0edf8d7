package models

import (
	"time"

	"github.com/google/uuid"
)

// Promo code types.
const (
	PromoTypeFree  = "free"
	PromoTypeTrial = "trial"
)

// PromoCode grants free or trial access to the app. Created from the admin
// form or automatically when an influencer application is approved.
type PromoCode struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string     `gorm:"size:40;not null;uniqueIndex" json:"code"`
	Type         string     `gorm:"size:10;not null;default:'free'" json:"type"`
	DurationDays *int       `json:"duration_days"`
	MaxUses      *int       `json:"max_uses"`
	CurrentUses  int        `gorm:"default:0" json:"current_uses"`
	ExpiresAt    *time.Time `json:"expires_at"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	InfluencerID *uuid.UUID `gorm:"type:uuid;index" json:"influencer_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PromoRedemption links a code to a redeeming device. No foreign-key
// constraint on the code: hard-deleting a promo code leaves the reference
// dangling and the admin list resolves it via an outer join.
type PromoRedemption struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PromoCodeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"promo_code_id"`
	DeviceID     string    `gorm:"size:255;not null;index" json:"device_id"`
	ProExpiresAt time.Time `gorm:"not null" json:"pro_expires_at"`
	RedeemedAt   time.Time `gorm:"autoCreateTime;index" json:"redeemed_at"`
}
