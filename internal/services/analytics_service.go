package services

import (
	"context"
	"time"

	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AnalyticsService folds independent read queries into the dashboard
// shapes. All grouping happens in SQL; the fan-out exists only to cut
// request latency.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type planPrice struct {
	PlanType   string
	PriceCents int64
}

// mrrCents sums active non-trial subscriptions into monthly recurring
// revenue: yearly plans contribute a twelfth, everything else full price.
func mrrCents(rows []planPrice) int64 {
	var total int64
	for _, r := range rows {
		if r.PlanType == models.PlanYearly {
			total += r.PriceCents / 12
		} else {
			total += r.PriceCents
		}
	}
	return total
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*dto.AnalyticsResponse, error) {
	var (
		resp      dto.AnalyticsResponse
		mrrRows   []planPrice
		now       = time.Now().UTC()
		cutoff30d = now.AddDate(0, 0, -30)
	)

	g, gctx := errgroup.WithContext(ctx)
	db := func() *gorm.DB { return s.db.WithContext(gctx) }

	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Where("status = ? AND is_trial = false", models.SubStatusActive).
			Count(&resp.Overview.ActiveSubscribers).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Where("status = ? AND is_trial = true", models.SubStatusActive).
			Count(&resp.Overview.ActiveTrials).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Where("status IN ? AND updated_at >= ?",
				[]string{models.SubStatusCancelled, models.SubStatusExpired}, cutoff30d).
			Count(&resp.Overview.Churned30d).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Select("plan_type, price_cents").
			Where("status = ? AND is_trial = false AND price_cents IS NOT NULL",
				models.SubStatusActive).
			Scan(&mrrRows).Error
	})
	g.Go(func() error {
		return db().Model(&models.SubscriptionEvent{}).
			Select("COALESCE(SUM(price_cents), 0)").
			Scan(&resp.Revenue.TotalCents).Error
	})
	g.Go(func() error {
		return db().Model(&models.SubscriptionEvent{}).
			Select("COALESCE(SUM(price_cents), 0)").
			Where("purchased_at >= ?", cutoff30d).
			Scan(&resp.Revenue.Last30Cents).Error
	})
	g.Go(func() error {
		return db().Model(&models.SubscriptionEvent{}).
			Select("plan_type, COALESCE(SUM(price_cents), 0) AS cents, COUNT(*) AS events").
			Group("plan_type").
			Order("cents DESC").
			Scan(&resp.Revenue.ByPlan).Error
	})
	g.Go(func() error {
		return db().Model(&models.SubscriptionEvent{}).
			Select("TO_CHAR(purchased_at::date, 'YYYY-MM-DD') AS day, COUNT(*) AS payments, COALESCE(SUM(price_cents), 0) AS cents").
			Where("purchased_at >= ?", cutoff30d).
			Group("purchased_at::date").
			Order("day ASC").
			Scan(&resp.Daily).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Count(&resp.Funnel.TotalSubscribers).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Where("is_trial = true").
			Count(&resp.Funnel.Trials).Error
	})
	g.Go(func() error {
		return db().Model(&models.Subscription{}).
			Where("status = ?", models.SubStatusCancelled).
			Count(&resp.Funnel.Cancelled).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.Overview.MRRCents = mrrCents(mrrRows)
	resp.Funnel.Paid = resp.Overview.ActiveSubscribers
	if resp.Revenue.ByPlan == nil {
		resp.Revenue.ByPlan = []dto.PlanRevenue{}
	}
	if resp.Daily == nil {
		resp.Daily = []dto.DailyActivity{}
	}
	return &resp, nil
}
