package models

import (
	"github.com/shopspring/decimal"
)

// ProjectSummary is the dashboard rollup of a project's trial balance and
// derived statements. Numeric fields are zero (never absent) when the project
// has no trial balance yet.
type ProjectSummary struct {
	Project           *Project        `json:"project"`
	TrialBalanceCount int             `json:"trial_balance_count"`
	StatementsCount   int             `json:"statements_count"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalLiabilities  decimal.Decimal `json:"total_liabilities"`
	TotalEquity       decimal.Decimal `json:"total_equity"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	NetIncome         decimal.Decimal `json:"net_income"`
	IsBalanced        bool            `json:"is_balanced"`
}
