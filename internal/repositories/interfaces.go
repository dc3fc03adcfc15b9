package repositories

import (
	"audit-statements/internal/models"

	"github.com/google/uuid"
)

// ProjectRepositoryInterface defines the contract for audit project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll(offset, limit int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TrialBalanceRepositoryInterface defines the contract for trial balance repository operations
type TrialBalanceRepositoryInterface interface {
	ListByProjectID(projectID uuid.UUID) ([]models.TrialBalanceEntry, error)
	CountByProjectID(projectID uuid.UUID) (int64, error)
	// ReplaceForProject atomically swaps the project's trial balance for the
	// given entries. Readers either see the old set or the new one, never a mix.
	ReplaceForProject(projectID uuid.UUID, entries []models.TrialBalanceEntry) error
	DeleteByProjectID(projectID uuid.UUID) error
}

// StatementRepositoryInterface defines the contract for financial statement persistence.
// Statements are identified by (project_id, statement_type); Upsert never
// creates a second row for an existing key.
type StatementRepositoryInterface interface {
	Upsert(projectID uuid.UUID, statementType string, data models.StatementDocument) (*models.FinancialStatement, error)
	GetByProjectAndType(projectID uuid.UUID, statementType string) (*models.FinancialStatement, error)
	ListByProjectID(projectID uuid.UUID) ([]models.FinancialStatement, error)
	CountByProjectID(projectID uuid.UUID) (int64, error)
	DeleteByProjectID(projectID uuid.UUID) error
}
