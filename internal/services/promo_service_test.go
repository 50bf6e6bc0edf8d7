package services

import (
	"testing"
	"time"

	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "uppercases", raw: "sprint10", want: "SPRINT10"},
		{name: "trims whitespace", raw: "  SPEED  ", want: "SPEED"},
		{name: "already normalized", raw: "ANNA2", want: "ANNA2"},
		{name: "rejects hyphens", raw: "SPRINT-10", wantErr: true},
		{name: "rejects spaces inside", raw: "SPRINT 10", wantErr: true},
		{name: "rejects unicode", raw: "FÅRT", wantErr: true},
		{name: "rejects empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCodeInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	days := 30

	t.Run("duration-less trial codes return the sentinel marker", func(t *testing.T) {
		promo := &models.PromoCode{Type: models.PromoTypeTrial}
		assert.Equal(t, trialMarkerDate, proExpiry(promo, now))
	})

	t.Run("dated trial codes honor the duration", func(t *testing.T) {
		promo := &models.PromoCode{Type: models.PromoTypeTrial, DurationDays: &days}
		assert.Equal(t, now.AddDate(0, 0, 30), proExpiry(promo, now))
	})

	t.Run("dated free codes add the duration", func(t *testing.T) {
		promo := &models.PromoCode{Type: models.PromoTypeFree, DurationDays: &days}
		assert.Equal(t, now.AddDate(0, 0, 30), proExpiry(promo, now))
	})

	t.Run("duration-less free codes are effectively forever", func(t *testing.T) {
		promo := &models.PromoCode{Type: models.PromoTypeFree}
		assert.Equal(t, now.AddDate(100, 0, 0), proExpiry(promo, now))
	})
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	db := newTestDB(t, &models.PromoCode{})
	svc := NewPromoService(db)

	_, err := svc.Create(dto.CreatePromoCodeRequest{Code: "SPRINT10", Type: models.PromoTypeFree})
	require.NoError(t, err)

	// Normalization means the lowercase spelling is the same code.
	_, err = svc.Create(dto.CreatePromoCodeRequest{Code: "sprint10", Type: models.PromoTypeFree})
	assert.ErrorIs(t, err, ErrCodeExists)

	var count int64
	require.NoError(t, db.Model(&models.PromoCode{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRedeemStopsAtMaxUses(t *testing.T) {
	db := newTestDB(t, &models.PromoCode{}, &models.PromoRedemption{})
	svc := NewPromoService(db)

	one := 1
	_, err := svc.Create(dto.CreatePromoCodeRequest{
		Code:    "LAUNCH",
		Type:    models.PromoTypeFree,
		MaxUses: &one,
	})
	require.NoError(t, err)

	_, err = svc.Redeem("LAUNCH", "device-1")
	require.NoError(t, err)

	_, err = svc.Redeem("LAUNCH", "device-2")
	assert.ErrorIs(t, err, ErrCodeExhausted)

	var promo models.PromoCode
	require.NoError(t, db.First(&promo, "code = ?", "LAUNCH").Error)
	assert.Equal(t, 1, promo.CurrentUses)

	var redemptions int64
	require.NoError(t, db.Model(&models.PromoRedemption{}).Count(&redemptions).Error)
	assert.Equal(t, int64(1), redemptions)
}
