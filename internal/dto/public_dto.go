package dto

import "time"

type InfluencerApplication struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Instagram    string `json:"instagram" validate:"omitempty,max=255"`
	TikTok       string `json:"tiktok" validate:"omitempty,max=255"`
	YouTube      string `json:"youtube" validate:"omitempty,max=255"`
	AudienceSize string `json:"audience_size" validate:"omitempty,max=50"`
}

type CreateFeedbackPostRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Body       string `json:"body" validate:"omitempty,max=5000"`
	Category   string `json:"category" validate:"omitempty,oneof=feature bug timing other"`
	AuthorName string `json:"author_name" validate:"omitempty,max=80"`
}

type CreateFeedbackCommentRequest struct {
	Body       string `json:"body" validate:"required,min=1,max=2000"`
	AuthorName string `json:"author_name" validate:"omitempty,max=80"`
}

type RedeemPromoRequest struct {
	Code     string `json:"code" validate:"required,min=3,max=40"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
}

type RedeemPromoResponse struct {
	Success      bool      `json:"success"`
	Type         string    `json:"type"`
	ProExpiresAt time.Time `json:"pro_expires_at"`
}

type ValidatePromoResponse struct {
	Valid        bool   `json:"valid"`
	Type         string `json:"type,omitempty"`
	DurationDays *int   `json:"duration_days,omitempty"`
}
