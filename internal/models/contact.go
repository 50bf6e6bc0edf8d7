package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a marketing list entry, the target set for email campaigns and
// the row flipped by the unsubscribe endpoints.
type Contact struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone          string     `gorm:"size:30" json:"phone"`
	Source         string     `gorm:"size:50" json:"source"`
	Unsubscribed   bool       `gorm:"default:false;index" json:"unsubscribed"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
