package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCodeExists         = errors.New("promo code already exists")
	ErrCodeInvalid        = errors.New("promo code must be uppercase letters and digits")
	ErrCodeNotFound       = errors.New("promo code not found")
	ErrCodeInactive       = errors.New("promo code is not active")
	ErrCodeExpired        = errors.New("promo code has expired")
	ErrCodeExhausted      = errors.New("promo code has no uses left")
	ErrRedemptionNotFound = errors.New("redemption not found")
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// trialMarkerDate is the sentinel pro-expiry that tells the mobile client to
// start a store trial instead of granting direct access.
var trialMarkerDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// foreverYears is the pro-expiry horizon for codes with no duration.
const foreverYears = 100

// NormalizeCode uppercases a raw code and rejects anything that is not
// strictly alphanumeric.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" || !codePattern.MatchString(code) {
		return "", ErrCodeInvalid
	}
	return code, nil
}

type PromoService struct {
	db *gorm.DB
}

func NewPromoService(db *gorm.DB) *PromoService {
	return &PromoService{db: db}
}

func (s *PromoService) Create(req dto.CreatePromoCodeRequest) (*models.PromoCode, error) {
	code, err := NormalizeCode(req.Code)
	if err != nil {
		return nil, err
	}

	var existing models.PromoCode
	if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
		return nil, ErrCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	promo := models.PromoCode{
		Code:         code,
		Type:         req.Type,
		DurationDays: req.DurationDays,
		MaxUses:      req.MaxUses,
		ExpiresAt:    req.ExpiresAt,
		IsActive:     true,
	}
	if err := s.db.Create(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *PromoService) List() ([]models.PromoCode, error) {
	var codes []models.PromoCode
	err := s.db.Order("created_at DESC").Find(&codes).Error
	return codes, err
}

// Update applies a partial patch: only is_active and max_uses are editable.
func (s *PromoService) Update(id uuid.UUID, req dto.UpdatePromoCodeRequest) (*models.PromoCode, error) {
	updates := map[string]interface{}{}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.MaxUses != nil {
		updates["max_uses"] = *req.MaxUses
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.PromoCode{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrCodeNotFound
		}
	}

	var promo models.PromoCode
	if err := s.db.First(&promo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// Delete hard-deletes a code. Redemption history keeps its dangling
// reference and resolves it at read time.
func (s *PromoService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.PromoCode{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCodeNotFound
	}
	return nil
}

// Validate is the dry-run check the mobile client runs before showing the
// redeem confirmation.
func (s *PromoService) Validate(rawCode string) (*models.PromoCode, error) {
	promo, err := s.lookup(rawCode)
	if err != nil {
		return nil, err
	}
	return promo, nil
}

// Redeem validates the code, computes the pro-expiry, increments the use
// counter and appends the redemption row.
func (s *PromoService) Redeem(rawCode, deviceID string) (*models.PromoRedemption, error) {
	promo, err := s.lookup(rawCode)
	if err != nil {
		return nil, err
	}

	redemption := models.PromoRedemption{
		PromoCodeID:  promo.ID,
		DeviceID:     deviceID,
		ProExpiresAt: proExpiry(promo, time.Now().UTC()),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The increment is guarded: a concurrent redemption may have taken
		// the last use between the lookup and this update.
		result := tx.Model(&models.PromoCode{}).
			Where("id = ? AND (max_uses IS NULL OR current_uses < max_uses)", promo.ID).
			Update("current_uses", gorm.Expr("current_uses + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCodeExhausted
		}
		return tx.Create(&redemption).Error
	})
	if err != nil {
		return nil, err
	}
	return &redemption, nil
}

func (s *PromoService) lookup(rawCode string) (*models.PromoCode, error) {
	code, err := NormalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	var promo models.PromoCode
	if err := s.db.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	if !promo.IsActive {
		return nil, ErrCodeInactive
	}
	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(time.Now()) {
		return nil, ErrCodeExpired
	}
	if promo.MaxUses != nil && promo.CurrentUses >= *promo.MaxUses {
		return nil, ErrCodeExhausted
	}
	return &promo, nil
}

// proExpiry computes what the redeeming device gets: now + duration for
// dated codes of either type, the trial marker for duration-less trial
// codes, or a far-future date for duration-less free codes.
func proExpiry(promo *models.PromoCode, now time.Time) time.Time {
	if promo.DurationDays != nil {
		return now.AddDate(0, 0, *promo.DurationDays)
	}
	if promo.Type == models.PromoTypeTrial {
		return trialMarkerDate
	}
	return now.AddDate(foreverYears, 0, 0)
}

// RedemptionRow is a redemption joined with its (possibly deleted) code.
type RedemptionRow struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	DeviceID     string    `json:"device_id"`
	ProExpiresAt time.Time `json:"pro_expires_at"`
	RedeemedAt   time.Time `json:"redeemed_at"`
}

// ListRedemptions outer-joins redemptions with promo codes; deleted codes
// show up as "Unknown".
func (s *PromoService) ListRedemptions(limit int) ([]RedemptionRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	var rows []struct {
		models.PromoRedemption
		Code *string
	}
	err := s.db.Table("promo_redemptions").
		Select("promo_redemptions.*, promo_codes.code AS code").
		Joins("LEFT JOIN promo_codes ON promo_codes.id = promo_redemptions.promo_code_id").
		Order("promo_redemptions.redeemed_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RedemptionRow, len(rows))
	for i, r := range rows {
		code := "Unknown"
		if r.Code != nil {
			code = *r.Code
		}
		out[i] = RedemptionRow{
			ID:           r.ID,
			Code:         code,
			DeviceID:     r.DeviceID,
			ProExpiresAt: r.ProExpiresAt,
			RedeemedAt:   r.RedeemedAt,
		}
	}
	return out, nil
}

// RevokeRedemption models revocation by moving the pro-expiry to now.
func (s *PromoService) RevokeRedemption(id uuid.UUID) error {
	result := s.db.Model(&models.PromoRedemption{}).Where("id = ?", id).
		Update("pro_expires_at", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRedemptionNotFound
	}
	return nil
}
