package repositories

import (
	"errors"
	"fmt"

	"audit-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// projectRepository implements ProjectRepositoryInterface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepositoryInterface {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new audit project
func (r *projectRepository) Create(project *models.Project) error {
	if project == nil {
		return fmt.Errorf("project cannot be nil")
	}
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// GetAll retrieves projects with pagination, newest first
func (r *projectRepository) GetAll(offset, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get projects: %w", err)
	}

	return projects, total, nil
}

// Update updates an existing project
func (r *projectRepository) Update(project *models.Project) error {
	if project == nil {
		return fmt.Errorf("project cannot be nil")
	}

	result := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":           project.Name,
			"company_name":   project.CompanyName,
			"financial_year": project.FinancialYear,
			"currency":       project.Currency,
			"status":         project.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Delete removes a project together with its trial balance and statements.
// Statements are derived data; nothing outside the project references them.
func (r *projectRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.FinancialStatement{}).Error; err != nil {
			return fmt.Errorf("failed to delete project statements: %w", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.TrialBalanceEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete project trial balance: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}
