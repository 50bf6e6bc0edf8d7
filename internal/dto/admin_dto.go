package dto

import "time"

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type CreatePromoCodeRequest struct {
	Code         string     `json:"code" validate:"required,min=3,max=40"`
	Type         string     `json:"type" validate:"required,oneof=free trial"`
	DurationDays *int       `json:"duration_days" validate:"omitempty,gt=0"`
	MaxUses      *int       `json:"max_uses" validate:"omitempty,gt=0"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type UpdatePromoCodeRequest struct {
	IsActive *bool `json:"is_active"`
	MaxUses  *int  `json:"max_uses" validate:"omitempty,gt=0"`
}

type UpdateInfluencerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected suspended"`
}

type TestEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	HTML    string `json:"html" validate:"required"`
}

type CampaignEmailRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	HTML    string `json:"html" validate:"required"`
}

type TestSMSRequest struct {
	To   string `json:"to" validate:"required,e164"`
	Body string `json:"body" validate:"required,max=1600"`
}

type PushRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience" validate:"omitempty,oneof=all active_subscribers trials"`
}
