package services

import (
	"time"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// presentationScale is the number of fractional digits statements are
// presented with. Aggregation always happens on exact decimals first;
// rounding is applied only to the published figures.
const presentationScale = 2

func newStatementHeader(project *models.Project, generatedAt time.Time) models.StatementHeader {
	return models.StatementHeader{
		CompanyName:   project.CompanyName,
		FinancialYear: project.FinancialYear,
		Currency:      project.Currency,
		GeneratedAt:   generatedAt,
	}
}

func newAccountLine(entry *models.TrialBalanceEntry) models.AccountLine {
	return models.AccountLine{
		Name:   entry.AccountName,
		NameEn: entry.AccountNameEn,
		Amount: entry.Balance().Round(presentationScale),
	}
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(presentationScale)
}

// incomeTotals sums revenue, cost of sales and expenses over the ledger.
// Shared by the income statement, cash flow and equity changes builders so
// net income is derived once, the same way, everywhere.
func incomeTotals(entries []models.TrialBalanceEntry) (revenues, cogs, expenses decimal.Decimal) {
	revenues, cogs, expenses = decimal.Zero, decimal.Zero, decimal.Zero

	for i := range entries {
		entry := &entries[i]
		amount := entry.Balance()

		switch entry.Classify().Category {
		case models.CategoryRevenue:
			revenues = revenues.Add(amount)
		case models.CategoryCostOfSales:
			cogs = cogs.Add(amount)
		case models.CategoryExpense:
			expenses = expenses.Add(amount)
		}
	}

	return revenues, cogs, expenses
}

func netIncomeFrom(entries []models.TrialBalanceEntry) decimal.Decimal {
	revenues, cogs, expenses := incomeTotals(entries)
	return revenues.Sub(cogs).Sub(expenses)
}

// equityComponents splits equity accounts into capital, reserves and
// retained earnings by their 2-digit code prefix.
func equityComponents(entries []models.TrialBalanceEntry) (capital, reserves, retainedEarnings decimal.Decimal) {
	capital, reserves, retainedEarnings = decimal.Zero, decimal.Zero, decimal.Zero

	for i := range entries {
		entry := &entries[i]
		classification := entry.Classify()
		if classification.Category != models.CategoryEquity {
			continue
		}

		amount := entry.Balance()
		switch classification.Subcategory {
		case models.SubcategoryCapital:
			capital = capital.Add(amount)
		case models.SubcategoryReserves:
			reserves = reserves.Add(amount)
		default:
			retainedEarnings = retainedEarnings.Add(amount)
		}
	}

	return capital, reserves, retainedEarnings
}
