package repositories

import (
	"errors"
	"fmt"
	"time"

	"audit-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStatementNotFound = errors.New("financial statement not found")
	ErrStatementConflict = errors.New("statement was modified concurrently")
)

// upsertAttempts bounds the optimistic-lock retry loop inside Upsert. Two
// concurrent generations for the same project resolve last-writer-wins.
const upsertAttempts = 3

// statementRepository implements StatementRepositoryInterface
type statementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new financial statement repository
func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &statementRepository{
		db: db,
	}
}

// Upsert writes a statement body under the (project_id, statement_type) key.
// An existing row is updated in place with a version bump; a missing row is
// created. A version conflict reloads and reapplies so the newest write wins.
func (r *statementRepository) Upsert(projectID uuid.UUID, statementType string, data models.StatementDocument) (*models.FinancialStatement, error) {
	if !models.IsValidStatementType(statementType) {
		return nil, models.ErrInvalidStatementType
	}

	for attempt := 0; attempt < upsertAttempts; attempt++ {
		var existing models.FinancialStatement
		err := r.db.Where("project_id = ? AND statement_type = ?", projectID, statementType).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			statement := &models.FinancialStatement{
				ProjectID:     projectID,
				StatementType: statementType,
				StatementData: data,
			}
			if createErr := r.db.Create(statement).Error; createErr != nil {
				// A concurrent writer may have inserted the row first;
				// retry as an update.
				continue
			}
			return statement, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up statement: %w", err)
		}

		now := time.Now()
		result := r.db.Model(&models.FinancialStatement{}).
			Where("id = ? AND version = ?", existing.ID, existing.Version).
			Updates(map[string]interface{}{
				"statement_data": data,
				"version":        existing.Version + 1,
				"updated_at":     now,
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update statement: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Lost the race; reload and try again.
			continue
		}

		existing.StatementData = data
		existing.Version++
		existing.UpdatedAt = now
		return &existing, nil
	}

	return nil, ErrStatementConflict
}

// GetByProjectAndType retrieves one statement by its identity key
func (r *statementRepository) GetByProjectAndType(projectID uuid.UUID, statementType string) (*models.FinancialStatement, error) {
	var statement models.FinancialStatement
	if err := r.db.Where("project_id = ? AND statement_type = ?", projectID, statementType).
		First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

// ListByProjectID retrieves all statements for a project, newest first
func (r *statementRepository) ListByProjectID(projectID uuid.UUID) ([]models.FinancialStatement, error) {
	var statements []models.FinancialStatement
	if err := r.db.Where("project_id = ?", projectID).
		Order("updated_at DESC").
		Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return statements, nil
}

// CountByProjectID returns the number of statements persisted for a project
func (r *statementRepository) CountByProjectID(projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.FinancialStatement{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count statements: %w", err)
	}
	return count, nil
}

// DeleteByProjectID removes all statements for a project
func (r *statementRepository) DeleteByProjectID(projectID uuid.UUID) error {
	if err := r.db.Where("project_id = ?", projectID).
		Delete(&models.FinancialStatement{}).Error; err != nil {
		return fmt.Errorf("failed to delete statements: %w", err)
	}
	return nil
}
