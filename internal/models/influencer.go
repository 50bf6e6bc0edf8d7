package models

import (
	"time"

	"github.com/google/uuid"
)

// Influencer application statuses. Transitions are admin-triggered only:
// pending -> approved | rejected, approved -> suspended.
const (
	InfluencerPending   = "pending"
	InfluencerApproved  = "approved"
	InfluencerRejected  = "rejected"
	InfluencerSuspended = "suspended"
)

// Influencer is an affiliate application record.
type Influencer struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:120;not null" json:"name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	ReferralCode string     `gorm:"size:40;not null;uniqueIndex" json:"referral_code"`
	Instagram    string     `gorm:"size:255" json:"instagram"`
	TikTok       string     `gorm:"size:255" json:"tiktok"`
	YouTube      string     `gorm:"size:255" json:"youtube"`
	AudienceSize string     `gorm:"size:50" json:"audience_size"`
	Status       string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ApprovedAt   *time.Time `json:"approved_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
