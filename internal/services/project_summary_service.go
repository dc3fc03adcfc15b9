package services

import (
	"errors"
	"fmt"
	"log/slog"

	"audit-statements/internal/models"
	"audit-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type projectSummaryService struct {
	projectRepo      repositories.ProjectRepositoryInterface
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface
	statementRepo    repositories.StatementRepositoryInterface
	balanceEpsilon   decimal.Decimal
}

func NewProjectSummaryService(
	projectRepo repositories.ProjectRepositoryInterface,
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface,
	statementRepo repositories.StatementRepositoryInterface,
) ProjectSummaryServiceInterface {
	return &projectSummaryService{
		projectRepo:      projectRepo,
		trialBalanceRepo: trialBalanceRepo,
		statementRepo:    statementRepo,
		balanceEpsilon:   DefaultBalanceEpsilon,
	}
}

// Summarize rolls the project's trial balance and persisted statements into
// the dashboard summary. Category totals and the balance flag are aggregated
// directly from the current entries for freshness; the statements themselves
// are only counted, never re-derived here.
func (s *projectSummaryService) Summarize(projectID uuid.UUID) (*models.ProjectSummary, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		slog.Error("failed to fetch project for summary",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	entries, err := s.trialBalanceRepo.ListByProjectID(projectID)
	if err != nil {
		slog.Error("failed to fetch trial balance for summary",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch trial balance: %w", err)
	}

	statementsCount, err := s.statementRepo.CountByProjectID(projectID)
	if err != nil {
		slog.Error("failed to count statements for summary",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to count statements: %w", err)
	}

	summary := &models.ProjectSummary{
		Project:           project,
		TrialBalanceCount: len(entries),
		StatementsCount:   int(statementsCount),
		TotalAssets:       decimal.Zero,
		TotalLiabilities:  decimal.Zero,
		TotalEquity:       decimal.Zero,
		TotalRevenue:      decimal.Zero,
		NetIncome:         decimal.Zero,
		IsBalanced:        false,
	}

	// Empty trial balance yields an all-zero summary, not an error.
	if len(entries) == 0 {
		return summary, nil
	}

	for i := range entries {
		entry := &entries[i]
		amount := entry.Balance()

		switch entry.Classify().Category {
		case models.CategoryAsset:
			summary.TotalAssets = summary.TotalAssets.Add(amount)
		case models.CategoryLiability:
			summary.TotalLiabilities = summary.TotalLiabilities.Add(amount)
		case models.CategoryEquity:
			summary.TotalEquity = summary.TotalEquity.Add(amount)
		case models.CategoryRevenue:
			summary.TotalRevenue = summary.TotalRevenue.Add(amount)
		}
	}

	validation := ValidateTrialBalance(entries, s.balanceEpsilon)
	summary.IsBalanced = validation.IsBalanced
	summary.NetIncome = round(netIncomeFrom(entries))

	summary.TotalAssets = round(summary.TotalAssets)
	summary.TotalLiabilities = round(summary.TotalLiabilities)
	summary.TotalEquity = round(summary.TotalEquity)
	summary.TotalRevenue = round(summary.TotalRevenue)

	return summary, nil
}
