package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement outcome statuses within a generation result
const (
	StatementOutcomeGenerated     = "generated"
	StatementOutcomeBuildFailed   = "build_failed"
	StatementOutcomePersistFailed = "persist_failed"
)

// StatementOutcome records what happened to one statement type during a
// generation request. Build and persistence failures are isolated per type;
// a failed type never blocks the others.
type StatementOutcome struct {
	StatementType string        `json:"statement_type"`
	Status        string        `json:"status"`
	Body          StatementBody `json:"body,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// Succeeded reports whether the statement was built and persisted.
func (o *StatementOutcome) Succeeded() bool {
	return o.Status == StatementOutcomeGenerated
}

// GenerationResult is the full outcome of one generation request. Callers
// always receive either every statement type marked generated, or a partial
// result with per-type failure detail; fatal conditions (missing project,
// empty ledger) are returned as errors instead.
type GenerationResult struct {
	ProjectID         string             `json:"project_id"`
	Outcomes          []StatementOutcome `json:"statements"`
	Validation        *ValidationResult  `json:"validation"`
	UnclassifiedCodes []string           `json:"unclassified_codes"`
	// StructuralDifference is total_assets - total_liabilities_equity from
	// the balance sheet. It is reported alongside the ledger-level
	// difference rather than asserted, since a classified trial balance can
	// be internally consistent yet structurally unbalanced.
	StructuralDifference decimal.Decimal `json:"structural_difference"`
	GeneratedAt          time.Time       `json:"generated_at"`
}

// IsPartialFailure reports whether any statement type failed while others
// succeeded.
func (r *GenerationResult) IsPartialFailure() bool {
	succeeded, failed := 0, 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded > 0 && failed > 0
}

// Outcome returns the outcome for the given statement type, or nil.
func (r *GenerationResult) Outcome(statementType string) *StatementOutcome {
	for i := range r.Outcomes {
		if r.Outcomes[i].StatementType == statementType {
			return &r.Outcomes[i]
		}
	}
	return nil
}
