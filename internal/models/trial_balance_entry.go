package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BalanceSideDebit  = "debit"
	BalanceSideCredit = "credit"
)

var (
	ErrNegativeAmount   = errors.New("debit and credit amounts cannot be negative")
	ErrEmptyAccountCode = errors.New("account code cannot be empty")
)

// TrialBalanceEntry is one general-ledger account line in a project's trial
// balance. Exactly one trial balance exists per project at a time; uploading
// a new one replaces the previous set wholesale.
type TrialBalanceEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"project_id"`
	AccountCode   string          `gorm:"type:varchar(20);not null;index" json:"account_code"`
	AccountName   string          `gorm:"type:varchar(255);not null" json:"account_name"`
	AccountNameEn string          `gorm:"type:varchar(255)" json:"account_name_en,omitempty"`
	DebitAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"debit_amount"`
	CreditAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"credit_amount"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// BeforeCreate hook for TrialBalanceEntry
func (e *TrialBalanceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate checks entry invariants
func (e *TrialBalanceEntry) Validate() error {
	if e.AccountCode == "" {
		return ErrEmptyAccountCode
	}
	if e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Balance returns the absolute net balance of the account.
func (e *TrialBalanceEntry) Balance() decimal.Decimal {
	return e.DebitAmount.Sub(e.CreditAmount).Abs()
}

// BalanceSide reports which side of the ledger the net balance falls on.
func (e *TrialBalanceEntry) BalanceSide() string {
	if e.DebitAmount.GreaterThan(e.CreditAmount) {
		return BalanceSideDebit
	}
	return BalanceSideCredit
}

// Classify maps the entry's account code onto its statement category.
func (e *TrialBalanceEntry) Classify() Classification {
	return ClassifyAccountCode(e.AccountCode)
}

func (e *TrialBalanceEntry) TableName() string {
	return "trial_balance_entries"
}
