package services

import (
	"testing"

	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMRRCents(t *testing.T) {
	tests := []struct {
		name string
		rows []planPrice
		want int64
	}{
		{
			name: "empty",
			rows: nil,
			want: 0,
		},
		{
			name: "monthly plans at full price",
			rows: []planPrice{
				{PlanType: models.PlanMonthly, PriceCents: 999},
				{PlanType: models.PlanMonthly, PriceCents: 999},
			},
			want: 1998,
		},
		{
			name: "yearly plans divided by twelve",
			rows: []planPrice{
				{PlanType: models.PlanYearly, PriceCents: 4900},
			},
			want: 408,
		},
		{
			name: "unknown plan treated as monthly",
			rows: []planPrice{
				{PlanType: "", PriceCents: 500},
			},
			want: 500,
		},
		{
			name: "mixed",
			rows: []planPrice{
				{PlanType: models.PlanMonthly, PriceCents: 999},
				{PlanType: models.PlanYearly, PriceCents: 4900},
				{PlanType: models.PlanYearly, PriceCents: 12000},
			},
			want: 999 + 408 + 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mrrCents(tt.rows))
		})
	}
}
