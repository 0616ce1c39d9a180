package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse system-wide totals for the super-admin dashboard.
type DashboardStatsResponse struct {
	TotalCompanies      int64           `json:"total_companies"`
	TotalUsers          int64           `json:"total_users"`
	TotalQuotes         int64           `json:"total_quotes"`
	MonthlyRevenue      decimal.Decimal `json:"monthly_revenue"`
	ActiveSubscriptions int64           `json:"active_subscriptions"`
}

// CompanyOverviewResponse one per-company row of the breakdown table.
type CompanyOverviewResponse struct {
	Company      CompanyResponse       `json:"company"`
	MemberCount  int64                 `json:"member_count"`
	QuoteCount   int64                 `json:"quote_count"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

// DashboardResponse the full aggregation: totals plus the breakdown.
type DashboardResponse struct {
	Stats     DashboardStatsResponse    `json:"stats"`
	Companies []CompanyOverviewResponse `json:"companies"`
}
