package models

import (
	"github.com/shopspring/decimal"
)

// ValidationResult is the outcome of checking a trial balance against the
// double-entry invariant. It is informational: an unbalanced ledger still
// flows through classification and statement building, flagged as unbalanced.
type ValidationResult struct {
	IsBalanced        bool            `json:"is_balanced"`
	TotalDebit        decimal.Decimal `json:"total_debit"`
	TotalCredit       decimal.Decimal `json:"total_credit"`
	Difference        decimal.Decimal `json:"difference"`
	EntryCount        int             `json:"entry_count"`
	UnclassifiedCodes []string        `json:"unclassified_codes"`
}

// HasClassificationGaps reports whether any account code failed to classify.
func (r *ValidationResult) HasClassificationGaps() bool {
	return len(r.UnclassifiedCodes) > 0
}
