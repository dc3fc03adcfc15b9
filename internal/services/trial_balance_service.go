package services

import (
	"errors"
	"fmt"
	"log/slog"

	"audit-statements/internal/models"
	"audit-statements/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidTrialBalanceEntry = errors.New("trial balance entry is invalid")
)

type trialBalanceService struct {
	projectRepo      repositories.ProjectRepositoryInterface
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface
}

func NewTrialBalanceService(
	projectRepo repositories.ProjectRepositoryInterface,
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface,
) TrialBalanceServiceInterface {
	return &trialBalanceService{
		projectRepo:      projectRepo,
		trialBalanceRepo: trialBalanceRepo,
	}
}

// ListEntries returns the project's current trial balance ordered by account
// code. An empty result is valid for read-only views; only generation treats
// it as an error.
func (s *trialBalanceService) ListEntries(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
	if err := s.verifyProject(projectID); err != nil {
		return nil, err
	}

	entries, err := s.trialBalanceRepo.ListByProjectID(projectID)
	if err != nil {
		slog.Error("failed to list trial balance",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to list trial balance: %w", err)
	}
	return entries, nil
}

// ReplaceEntries swaps the project's trial balance for the uploaded set.
// Every row is validated before anything is written; the replacement itself
// is atomic, so a failed upload leaves the previous set intact.
func (s *trialBalanceService) ReplaceEntries(projectID uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error) {
	if err := s.verifyProject(projectID); err != nil {
		return nil, err
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrInvalidTrialBalanceEntry, i+1, err)
		}
	}

	if err := s.trialBalanceRepo.ReplaceForProject(projectID, entries); err != nil {
		slog.Error("failed to replace trial balance",
			"project_id", projectID,
			"entry_count", len(entries),
			"error", err)
		return nil, fmt.Errorf("failed to replace trial balance: %w", err)
	}

	slog.Info("trial balance replaced",
		"project_id", projectID,
		"entry_count", len(entries))

	stored, err := s.trialBalanceRepo.ListByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trial balance: %w", err)
	}
	return stored, nil
}

func (s *trialBalanceService) verifyProject(projectID uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		slog.Error("failed to verify project",
			"project_id", projectID,
			"error", err)
		return fmt.Errorf("failed to verify project: %w", err)
	}
	return nil
}
