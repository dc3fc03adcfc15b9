package services

import (
	"audit-statements/internal/models"

	"github.com/google/uuid"
)

// ProjectServiceInterface defines audit project lifecycle operations
type ProjectServiceInterface interface {
	CreateProject(name, companyName, financialYear, currency string) (*models.Project, error)
	GetProject(projectID uuid.UUID) (*models.Project, error)
	ListProjects(offset, limit int) ([]models.Project, int64, error)
	DeleteProject(projectID uuid.UUID) error
}

// TrialBalanceServiceInterface defines trial balance read and replace operations
type TrialBalanceServiceInterface interface {
	ListEntries(projectID uuid.UUID) ([]models.TrialBalanceEntry, error)
	ReplaceEntries(projectID uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error)
}

// StatementGenerationServiceInterface defines the statement derivation pipeline.
// Generate always computes and persists every statement type; requestedType
// only filters which bodies the caller gets back.
type StatementGenerationServiceInterface interface {
	Generate(projectID uuid.UUID, requestedType string) (*models.GenerationResult, error)
	ListStatements(projectID uuid.UUID) ([]models.FinancialStatement, error)
}

// ProjectSummaryServiceInterface defines the dashboard summary rollup
type ProjectSummaryServiceInterface interface {
	Summarize(projectID uuid.UUID) (*models.ProjectSummary, error)
}

// MetricsRecorderInterface abstracts engine metrics so services stay testable
type MetricsRecorderInterface interface {
	RecordStatementGenerated(statementType, status string)
	ObserveGenerationDuration(durationMs float64)
	RecordPersistenceRetry(statementType string)
	RecordUnbalancedLedger()
	RecordUnclassifiedCodes(count int)
}
