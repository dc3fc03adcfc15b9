package dto

import (
	"github.com/shopspring/decimal"

	"audit-statements/internal/models"
)

// TrialBalanceRow is one uploaded general-ledger account line
type TrialBalanceRow struct {
	AccountCode   string          `json:"account_code" validate:"required,account_code"`
	AccountName   string          `json:"account_name" validate:"required,min=1,max=255"`
	AccountNameEn string          `json:"account_name_en" validate:"omitempty,max=255"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
}

// ReplaceTrialBalanceRequest replaces a project's entire trial balance
type ReplaceTrialBalanceRequest struct {
	Entries []TrialBalanceRow `json:"entries" validate:"required,min=1,dive"`
}

// ToEntries converts uploaded rows into model entries
func (r *ReplaceTrialBalanceRequest) ToEntries() []models.TrialBalanceEntry {
	entries := make([]models.TrialBalanceEntry, 0, len(r.Entries))
	for i := range r.Entries {
		row := &r.Entries[i]
		entries = append(entries, models.TrialBalanceEntry{
			AccountCode:   row.AccountCode,
			AccountName:   row.AccountName,
			AccountNameEn: row.AccountNameEn,
			DebitAmount:   row.DebitAmount,
			CreditAmount:  row.CreditAmount,
		})
	}
	return entries
}

// TrialBalanceResponse returns a project's trial balance with its totals
type TrialBalanceResponse struct {
	Entries    []models.TrialBalanceEntry `json:"entries"`
	Validation models.ValidationResult    `json:"validation"`
}
