package services

import (
	"errors"
	"fmt"
	"log/slog"

	"audit-statements/internal/models"
	"audit-statements/internal/repositories"

	"github.com/google/uuid"
)

type projectService struct {
	projectRepo repositories.ProjectRepositoryInterface
}

func NewProjectService(projectRepo repositories.ProjectRepositoryInterface) ProjectServiceInterface {
	return &projectService{
		projectRepo: projectRepo,
	}
}

// CreateProject creates a new audit project in draft status
func (s *projectService) CreateProject(name, companyName, financialYear, currency string) (*models.Project, error) {
	if currency == "" {
		currency = models.DefaultCurrency
	}

	project := &models.Project{
		Name:          name,
		CompanyName:   companyName,
		FinancialYear: financialYear,
		Currency:      currency,
		Status:        models.ProjectStatusDraft,
	}

	if err := s.projectRepo.Create(project); err != nil {
		slog.Error("failed to create project",
			"name", name,
			"error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("project created",
		"project_id", project.ID,
		"company_name", companyName,
		"financial_year", financialYear)

	return project, nil
}

// GetProject retrieves one project by ID
func (s *projectService) GetProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		slog.Error("failed to get project",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects retrieves projects with pagination
func (s *projectService) ListProjects(offset, limit int) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.GetAll(offset, limit)
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// DeleteProject removes a project and everything it owns. Statements are
// derived data, so there is no separate statement deletion path.
func (s *projectService) DeleteProject(projectID uuid.UUID) error {
	if err := s.projectRepo.Delete(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		slog.Error("failed to delete project",
			"project_id", projectID,
			"error", err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	slog.Info("project deleted", "project_id", projectID)
	return nil
}
