package models

import (
	"time"

	"github.com/google/uuid"
)

// Delivery statuses for outbound message audit rows.
const (
	SendStatusSent   = "sent"
	SendStatusFailed = "failed"
)

// EmailSendLog is an append-only audit row per outbound email.
type EmailSendLog struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Recipient         string    `gorm:"size:255;not null;index" json:"recipient"`
	Subject           string    `gorm:"size:255" json:"subject"`
	Provider          string    `gorm:"size:20" json:"provider"`
	ProviderMessageID string    `gorm:"size:255" json:"provider_message_id"`
	Status            string    `gorm:"size:20;not null" json:"status"`
	Error             string    `gorm:"type:text" json:"error"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
}

// SMSSendLog is an append-only audit row per outbound SMS.
type SMSSendLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Recipient   string    `gorm:"size:30;not null;index" json:"recipient"`
	Body        string    `gorm:"type:text" json:"body"`
	ProviderSID string    `gorm:"size:64" json:"provider_sid"`
	Status      string    `gorm:"size:20;not null" json:"status"`
	Error       string    `gorm:"type:text" json:"error"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// NotificationLog is an append-only audit row per push dispatch proxied to
// the external push function.
type NotificationLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Audience  string    `gorm:"size:50" json:"audience"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Error     string    `gorm:"type:text" json:"error"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
