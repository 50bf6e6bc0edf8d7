package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/email"
	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/notify"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("an application with this email already exists")
	ErrInfluencerNotFound = errors.New("influencer not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCodeSpaceExhausted = errors.New("could not find a free referral code")
)

// referralSuffix is appended to the applicant's first name token.
const referralSuffix = "SPEED"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerateReferralCode builds a code from the first token of the
// applicant's name plus a fixed suffix, probing exists for collisions with
// an incrementing numeric suffix.
func GenerateReferralCode(name string, exists func(code string) (bool, error)) (string, error) {
	token := ""
	if fields := strings.Fields(name); len(fields) > 0 {
		token = nonAlnum.ReplaceAllString(fields[0], "")
	}
	if token == "" {
		token = "TRACK"
	}
	base := strings.ToUpper(token) + referralSuffix

	candidate := base
	for i := 2; i < 1000; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", ErrCodeSpaceExhausted
}

type InfluencerService struct {
	db       *gorm.DB
	emails   email.Sender
	notifier *notify.ChatNotifier
}

func NewInfluencerService(db *gorm.DB, emails email.Sender, notifier *notify.ChatNotifier) *InfluencerService {
	return &InfluencerService{db: db, emails: emails, notifier: notifier}
}

// Apply files a new application with status pending.
func (s *InfluencerService) Apply(req dto.InfluencerApplication) (*models.Influencer, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Influencer
	if err := s.db.Where("email = ?", emailAddr).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code, err := GenerateReferralCode(req.Name, s.codeTaken)
	if err != nil {
		return nil, err
	}

	influencer := models.Influencer{
		Name:         strings.TrimSpace(req.Name),
		Email:        emailAddr,
		PasswordHash: string(hash),
		ReferralCode: code,
		Instagram:    req.Instagram,
		TikTok:       req.TikTok,
		YouTube:      req.YouTube,
		AudienceSize: req.AudienceSize,
		Status:       models.InfluencerPending,
	}
	if err := s.db.Create(&influencer).Error; err != nil {
		return nil, err
	}

	s.notifier.Notify(fmt.Sprintf("New influencer application: %s (%s)", influencer.Name, influencer.Email))
	return &influencer, nil
}

// codeTaken checks both namespaces the referral code must be free in: the
// influencer table and the promo codes created on approval.
func (s *InfluencerService) codeTaken(code string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Influencer{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := s.db.Model(&models.PromoCode{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *InfluencerService) List(status string) ([]models.Influencer, error) {
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var influencers []models.Influencer
	err := query.Find(&influencers).Error
	return influencers, err
}

// UpdateStatus dispatches the admin-triggered transitions.
func (s *InfluencerService) UpdateStatus(id uuid.UUID, status string) (*models.Influencer, error) {
	var influencer models.Influencer
	if err := s.db.First(&influencer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}

	switch status {
	case models.InfluencerApproved:
		return s.approve(&influencer)
	case models.InfluencerRejected:
		return s.setStatus(&influencer, models.InfluencerRejected)
	case models.InfluencerSuspended:
		return s.suspend(&influencer)
	default:
		return nil, ErrInvalidTransition
	}
}

// approve activates the applicant: status flip, create or reactivate the
// linked promo code, and send the welcome email. The email is best-effort
// once the state change is committed.
func (s *InfluencerService) approve(influencer *models.Influencer) (*models.Influencer, error) {
	now := time.Now().UTC()
	err := s.db.Model(influencer).Updates(map[string]interface{}{
		"status":      models.InfluencerApproved,
		"approved_at": now,
	}).Error
	if err != nil {
		return nil, err
	}
	influencer.Status = models.InfluencerApproved
	influencer.ApprovedAt = &now

	if err := s.ensurePromoCode(influencer); err != nil {
		return nil, err
	}

	s.sendApprovalEmail(influencer)
	return influencer, nil
}

func (s *InfluencerService) ensurePromoCode(influencer *models.Influencer) error {
	var promo models.PromoCode
	err := s.db.Where("influencer_id = ?", influencer.ID).First(&promo).Error
	switch {
	case err == nil:
		return s.db.Model(&promo).Update("is_active", true).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		promo = models.PromoCode{
			Code:         influencer.ReferralCode,
			Type:         models.PromoTypeTrial,
			IsActive:     true,
			InfluencerID: &influencer.ID,
		}
		return s.db.Create(&promo).Error
	default:
		return err
	}
}

func (s *InfluencerService) suspend(influencer *models.Influencer) (*models.Influencer, error) {
	updated, err := s.setStatus(influencer, models.InfluencerSuspended)
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.PromoCode{}).
		Where("influencer_id = ?", influencer.ID).
		Update("is_active", false).Error
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *InfluencerService) setStatus(influencer *models.Influencer, status string) (*models.Influencer, error) {
	if err := s.db.Model(influencer).Update("status", status).Error; err != nil {
		return nil, err
	}
	influencer.Status = status
	return influencer, nil
}

func (s *InfluencerService) sendApprovalEmail(influencer *models.Influencer) {
	if s.emails == nil {
		slog.Warn("no email sender configured, skipping approval email", "influencer_id", influencer.ID)
		return
	}

	html := fmt.Sprintf(`
		<div style="font-family: -apple-system, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to the TrackSpeed crew, %s!</h2>
			<p>Your application has been approved. Your personal code is:</p>
			<h1 style="letter-spacing: 3px;">%s</h1>
			<p>Share it with your followers to give them free TrackSpeed Pro access.
			Log in to the influencer portal with your email to track redemptions.</p>
		</div>
	`, influencer.Name, influencer.ReferralCode)

	if _, err := s.emails.Send(influencer.Email, "Welcome to the TrackSpeed influencer program", html); err != nil {
		slog.Error("approval email failed", "influencer_id", influencer.ID, "error", err)
	}
}
