package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusDraft     = "draft"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"

	DefaultCurrency = "SAR"
)

var (
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// Project represents a financial-audit engagement. It owns the trial balance
// entries uploaded for it and the financial statements derived from them;
// both are removed when the project is deleted.
type Project struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	CompanyName   string         `gorm:"type:varchar(255);not null" json:"company_name"`
	FinancialYear string         `gorm:"type:varchar(9);not null" json:"financial_year"`
	Currency      string         `gorm:"type:varchar(3);not null;default:'SAR'" json:"currency"`
	Status        string         `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	TrialBalanceEntries []TrialBalanceEntry  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Statements          []FinancialStatement `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Status == "" {
		p.Status = ProjectStatusDraft
	}

	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// Validate checks project invariants
func (p *Project) Validate() error {
	switch p.Status {
	case ProjectStatusDraft, ProjectStatusActive, ProjectStatusCompleted:
		return nil
	default:
		return ErrInvalidProjectStatus
	}
}

func (p *Project) TableName() string {
	return "audit_projects"
}
