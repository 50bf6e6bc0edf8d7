package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Primary keys are generated app-side so the same models run on Postgres
// in production and on SQLite in tests.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *Subscription) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *SubscriptionEvent) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *PromoCode) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *PromoRedemption) BeforeCreate(*gorm.DB) error   { ensureID(&m.ID); return nil }
func (m *Influencer) BeforeCreate(*gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *FeedbackPost) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *FeedbackComment) BeforeCreate(*gorm.DB) error   { ensureID(&m.ID); return nil }
func (m *FeedbackVote) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *Contact) BeforeCreate(*gorm.DB) error           { ensureID(&m.ID); return nil }
func (m *EmailSendLog) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *SMSSendLog) BeforeCreate(*gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *NotificationLog) BeforeCreate(*gorm.DB) error   { ensureID(&m.ID); return nil }
func (m *SystemLog) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
