package repositories

import (
	"fmt"

	"audit-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trialBalanceRepository implements TrialBalanceRepositoryInterface
type trialBalanceRepository struct {
	db *gorm.DB
}

// NewTrialBalanceRepository creates a new trial balance repository
func NewTrialBalanceRepository(db *gorm.DB) TrialBalanceRepositoryInterface {
	return &trialBalanceRepository{
		db: db,
	}
}

// ListByProjectID retrieves the project's trial balance ordered by account code
func (r *trialBalanceRepository) ListByProjectID(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
	var entries []models.TrialBalanceEntry
	if err := r.db.Where("project_id = ?", projectID).
		Order("account_code ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list trial balance entries: %w", err)
	}
	return entries, nil
}

// CountByProjectID returns the number of trial balance entries for a project
func (r *trialBalanceRepository) CountByProjectID(projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.TrialBalanceEntry{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count trial balance entries: %w", err)
	}
	return count, nil
}

// ReplaceForProject swaps the project's trial balance inside one transaction.
// Uploading replaces the previous set wholesale; there is no merge path.
func (r *trialBalanceRepository) ReplaceForProject(projectID uuid.UUID, entries []models.TrialBalanceEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&models.TrialBalanceEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete previous trial balance: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		for i := range entries {
			entries[i].ProjectID = projectID
			entries[i].ID = uuid.Nil
		}

		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to insert trial balance entries: %w", err)
		}
		return nil
	})
}

// DeleteByProjectID removes every trial balance entry for a project
func (r *trialBalanceRepository) DeleteByProjectID(projectID uuid.UUID) error {
	if err := r.db.Where("project_id = ?", projectID).
		Delete(&models.TrialBalanceEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete trial balance entries: %w", err)
	}
	return nil
}
