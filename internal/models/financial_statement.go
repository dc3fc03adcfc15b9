package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Statement types derived from a trial balance
const (
	StatementTypeBalanceSheet    = "balance_sheet"
	StatementTypeIncomeStatement = "income_statement"
	StatementTypeCashFlow        = "cash_flow"
	StatementTypeEquityChanges   = "equity_changes"
)

var (
	ErrInvalidStatementType = errors.New("invalid statement type")
)

// AllStatementTypes lists every statement type the engine derives, in the
// order they are generated and persisted.
var AllStatementTypes = []string{
	StatementTypeBalanceSheet,
	StatementTypeIncomeStatement,
	StatementTypeCashFlow,
	StatementTypeEquityChanges,
}

// IsValidStatementType reports whether t names a known statement type.
func IsValidStatementType(t string) bool {
	switch t {
	case StatementTypeBalanceSheet, StatementTypeIncomeStatement,
		StatementTypeCashFlow, StatementTypeEquityChanges:
		return true
	default:
		return false
	}
}

// FinancialStatement is a persisted, regenerable statement snapshot. Identity
// is (project_id, statement_type): regeneration updates the existing row in
// place rather than creating a new one. Version supports optimistic
// concurrency so interleaved regenerations resolve last-writer-wins.
type FinancialStatement struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_statements_project_type" json:"project_id"`
	StatementType string            `gorm:"type:varchar(30);not null;uniqueIndex:idx_statements_project_type" json:"statement_type"`
	StatementData StatementDocument `gorm:"type:text" json:"statement_data"`
	Version       int               `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// BeforeCreate hook for FinancialStatement
func (fs *FinancialStatement) BeforeCreate(tx *gorm.DB) error {
	if fs.ID == uuid.Nil {
		fs.ID = uuid.New()
	}

	if fs.Version == 0 {
		fs.Version = 1
	}

	now := time.Now()
	if fs.CreatedAt.IsZero() {
		fs.CreatedAt = now
	}
	if fs.UpdatedAt.IsZero() {
		fs.UpdatedAt = now
	}

	if !IsValidStatementType(fs.StatementType) {
		return ErrInvalidStatementType
	}
	return nil
}

func (fs *FinancialStatement) TableName() string {
	return "financial_statements"
}

// StatementDocument stores a serialized statement body as a JSON column.
// Stored as text for SQLite compatibility; Postgres treats it as JSONB input.
type StatementDocument json.RawMessage

// Value implements driver.Valuer interface
func (d StatementDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}

// Scan implements sql.Scanner interface
func (d *StatementDocument) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*d = append((*d)[0:0], v...)
		return nil
	case string:
		*d = StatementDocument(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StatementDocument", value)
	}
}

// MarshalJSON returns the raw document bytes
func (d StatementDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores the raw document bytes
func (d *StatementDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}

// NewStatementDocument serializes a statement body into a storable document.
func NewStatementDocument(body interface{}) (StatementDocument, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize statement body: %w", err)
	}
	return StatementDocument(data), nil
}
