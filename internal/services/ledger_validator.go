package services

import (
	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultBalanceEpsilon is the tolerance under which total debits and credits
// count as equal: one cent of the project currency.
var DefaultBalanceEpsilon = decimal.RequireFromString("0.01")

// ValidateTrialBalance checks the double-entry invariant over a set of trial
// balance entries and collects the account codes that fail to classify. It is
// a pure function: the input slice is never mutated, and an unbalanced or
// gap-ridden ledger is reported, not rejected.
func ValidateTrialBalance(entries []models.TrialBalanceEntry, epsilon decimal.Decimal) models.ValidationResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	unclassified := []string{}

	for i := range entries {
		entry := &entries[i]
		totalDebit = totalDebit.Add(entry.DebitAmount)
		totalCredit = totalCredit.Add(entry.CreditAmount)

		if !entry.Classify().IsClassified() {
			unclassified = append(unclassified, entry.AccountCode)
		}
	}

	difference := totalDebit.Sub(totalCredit).Abs()

	return models.ValidationResult{
		IsBalanced:        difference.LessThan(epsilon),
		TotalDebit:        totalDebit,
		TotalCredit:       totalCredit,
		Difference:        difference,
		EntryCount:        len(entries),
		UnclassifiedCodes: unclassified,
	}
}
