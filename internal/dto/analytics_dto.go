package dto

// AnalyticsResponse is the folded result of the dashboard's read fan-out.
type AnalyticsResponse struct {
	Overview Overview        `json:"overview"`
	Revenue  RevenueSummary  `json:"revenue"`
	Daily    []DailyActivity `json:"daily"`
	Funnel   Funnel          `json:"funnel"`
}

type Overview struct {
	ActiveSubscribers int64 `json:"active_subscribers"`
	ActiveTrials      int64 `json:"active_trials"`
	Churned30d        int64 `json:"churned_30d"`
	MRRCents          int64 `json:"mrr_cents"`
}

type RevenueSummary struct {
	TotalCents  int64         `json:"total_cents"`
	Last30Cents int64         `json:"last_30_cents"`
	ByPlan      []PlanRevenue `json:"by_plan"`
}

type PlanRevenue struct {
	PlanType string `json:"plan_type"`
	Cents    int64  `json:"cents"`
	Events   int64  `json:"events"`
}

type DailyActivity struct {
	Day      string `json:"day"`
	Payments int64  `json:"payments"`
	Cents    int64  `json:"cents"`
}

type Funnel struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	Trials           int64 `json:"trials"`
	Paid             int64 `json:"paid"`
	Cancelled        int64 `json:"cancelled"`
}
