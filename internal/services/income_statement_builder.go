package services

import (
	"time"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// marginScale gives margins two extra digits of precision before the final
// presentation rounding.
const marginScale = 4

// BuildIncomeStatement derives the income statement from revenue, cost of
// sales and expense accounts. Margins are zero, not an error, when there is
// no revenue.
func BuildIncomeStatement(project *models.Project, entries []models.TrialBalanceEntry, generatedAt time.Time) *models.IncomeStatementBody {
	revenueDetails := map[string]models.AccountLine{}
	expenseDetails := map[string]models.AccountLine{}

	for i := range entries {
		entry := &entries[i]
		switch entry.Classify().Category {
		case models.CategoryRevenue:
			revenueDetails[entry.AccountCode] = newAccountLine(entry)
		case models.CategoryExpense:
			expenseDetails[entry.AccountCode] = newAccountLine(entry)
		}
	}

	revenues, cogs, expenses := incomeTotals(entries)
	grossProfit := revenues.Sub(cogs)
	netIncome := grossProfit.Sub(expenses)

	grossProfitMargin := decimal.Zero
	netProfitMargin := decimal.Zero
	if revenues.GreaterThan(decimal.Zero) {
		hundred := decimal.NewFromInt(100)
		grossProfitMargin = grossProfit.DivRound(revenues, marginScale).Mul(hundred).Round(presentationScale)
		netProfitMargin = netIncome.DivRound(revenues, marginScale).Mul(hundred).Round(presentationScale)
	}

	return &models.IncomeStatementBody{
		StatementHeader: newStatementHeader(project, generatedAt),
		Revenues: models.StatementSection{
			Total:   round(revenues),
			Details: revenueDetails,
		},
		CostOfGoodsSold: round(cogs),
		GrossProfit:     round(grossProfit),
		Expenses: models.StatementSection{
			Total:   round(expenses),
			Details: expenseDetails,
		},
		NetIncome:         round(netIncome),
		GrossProfitMargin: grossProfitMargin,
		NetProfitMargin:   netProfitMargin,
	}
}
