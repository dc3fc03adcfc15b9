package services

import (
	"time"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// BuildEquityChangesStatement derives the statement of changes in equity.
// Ending balances come straight from the equity accounts; the beginning
// balance is reconstructed by backing the period's net income out of retained
// earnings. Capital and reserve movements are not tracked upstream, so they
// carry over unchanged.
func BuildEquityChangesStatement(project *models.Project, entries []models.TrialBalanceEntry, generatedAt time.Time) *models.EquityChangesBody {
	capital, reserves, retainedEarnings := equityComponents(entries)
	capital = round(capital)
	reserves = round(reserves)
	retainedEarnings = round(retainedEarnings)

	netIncome := round(netIncomeFrom(entries))
	totalEquity := capital.Add(reserves).Add(retainedEarnings)

	return &models.EquityChangesBody{
		StatementHeader: newStatementHeader(project, generatedAt),
		BeginningBalance: models.EquityBalance{
			Capital:          capital,
			Reserves:         reserves,
			RetainedEarnings: retainedEarnings.Sub(netIncome),
			Total:            totalEquity.Sub(netIncome),
		},
		Changes: models.EquityMovements{
			CapitalIncrease:  decimal.Zero,
			ReservesIncrease: decimal.Zero,
			NetIncome:        netIncome,
			Dividends:        decimal.Zero,
		},
		EndingBalance: models.EquityBalance{
			Capital:          capital,
			Reserves:         reserves,
			RetainedEarnings: retainedEarnings,
			Total:            totalEquity,
		},
	}
}
