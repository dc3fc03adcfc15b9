package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"audit-statements/internal/config"
	"audit-statements/internal/models"
	"audit-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound      = errors.New("audit project not found")
	ErrLedgerEmpty          = errors.New("trial balance is empty or missing for this project")
	ErrInvalidStatementType = errors.New("invalid statement type")
)

// GenerationState names the phases of one generation request, in order.
type GenerationState string

const (
	StateFetching    GenerationState = "fetching"
	StateValidating  GenerationState = "validating"
	StateClassifying GenerationState = "classifying"
	StateBuilding    GenerationState = "building"
	StatePersisting  GenerationState = "persisting"
	StateDone        GenerationState = "done"
	StateFailed      GenerationState = "failed"
)

type statementGenerationService struct {
	projectRepo      repositories.ProjectRepositoryInterface
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface
	statementRepo    repositories.StatementRepositoryInterface
	metrics          MetricsRecorderInterface
	balanceEpsilon   decimal.Decimal
	persistAttempts  int
	persistBackoff   time.Duration
}

func NewStatementGenerationService(
	projectRepo repositories.ProjectRepositoryInterface,
	trialBalanceRepo repositories.TrialBalanceRepositoryInterface,
	statementRepo repositories.StatementRepositoryInterface,
	metrics MetricsRecorderInterface,
	engineCfg config.EngineConfig,
) StatementGenerationServiceInterface {
	epsilon, err := decimal.NewFromString(engineCfg.BalanceEpsilon)
	if err != nil || !epsilon.GreaterThan(decimal.Zero) {
		epsilon = DefaultBalanceEpsilon
	}

	attempts := engineCfg.PersistMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &statementGenerationService{
		projectRepo:      projectRepo,
		trialBalanceRepo: trialBalanceRepo,
		statementRepo:    statementRepo,
		metrics:          metrics,
		balanceEpsilon:   epsilon,
		persistAttempts:  attempts,
		persistBackoff:   engineCfg.PersistRetryBackoff,
	}
}

// Generate runs the fetch -> validate -> classify -> build -> persist
// pipeline for one project. All four statement types are derived and stored
// on every request; requestedType only narrows the returned bodies. Builder
// and persistence failures are isolated per statement type, so the result can
// be a partial success with per-type detail. Only a missing project or an
// empty ledger aborts the whole request.
func (s *statementGenerationService) Generate(projectID uuid.UUID, requestedType string) (*models.GenerationResult, error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveGenerationDuration(float64(time.Since(started).Milliseconds()))
	}()

	if requestedType != "" && !models.IsValidStatementType(requestedType) {
		return nil, ErrInvalidStatementType
	}

	// Fetching
	project, entries, err := s.fetchInputs(projectID)
	if err != nil {
		return nil, err
	}

	// Validating: imbalance is recorded, never fatal.
	validation := ValidateTrialBalance(entries, s.balanceEpsilon)
	if !validation.IsBalanced {
		s.metrics.RecordUnbalancedLedger()
		slog.Warn("trial balance is not balanced",
			"project_id", projectID,
			"state", StateValidating,
			"total_debit", validation.TotalDebit.String(),
			"total_credit", validation.TotalCredit.String(),
			"difference", validation.Difference.String())
	}

	// Classifying: gaps ride along in the result instead of blocking.
	s.metrics.RecordUnclassifiedCodes(len(validation.UnclassifiedCodes))
	if validation.HasClassificationGaps() {
		slog.Warn("trial balance contains unclassified account codes",
			"project_id", projectID,
			"state", StateClassifying,
			"unclassified_count", len(validation.UnclassifiedCodes),
			"codes", validation.UnclassifiedCodes)
	}

	generatedAt := time.Now().UTC()

	// Building
	outcomes := s.buildAll(project, entries, generatedAt)

	// Persisting
	s.persistAll(projectID, outcomes)

	result := &models.GenerationResult{
		ProjectID:            projectID.String(),
		Validation:           &validation,
		UnclassifiedCodes:    validation.UnclassifiedCodes,
		StructuralDifference: structuralDifference(outcomes),
		GeneratedAt:          generatedAt,
	}
	result.Outcomes = filterOutcomes(outcomes, requestedType)

	for i := range outcomes {
		s.metrics.RecordStatementGenerated(outcomes[i].StatementType, outcomes[i].Status)
	}

	slog.Info("statement generation completed",
		"project_id", projectID,
		"state", StateDone,
		"is_balanced", validation.IsBalanced,
		"partial_failure", result.IsPartialFailure(),
		"duration_ms", time.Since(started).Milliseconds())

	return result, nil
}

// ListStatements returns the persisted statements for a project
func (s *statementGenerationService) ListStatements(projectID uuid.UUID) ([]models.FinancialStatement, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	statements, err := s.statementRepo.ListByProjectID(projectID)
	if err != nil {
		slog.Error("failed to list statements",
			"project_id", projectID,
			"error", err)
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return statements, nil
}

func (s *statementGenerationService) fetchInputs(projectID uuid.UUID) (*models.Project, []models.TrialBalanceEntry, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			slog.Warn("project not found during generation",
				"project_id", projectID,
				"state", StateFailed)
			return nil, nil, ErrProjectNotFound
		}
		slog.Error("failed to fetch project",
			"project_id", projectID,
			"error", err)
		return nil, nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	entries, err := s.trialBalanceRepo.ListByProjectID(projectID)
	if err != nil {
		slog.Error("failed to fetch trial balance",
			"project_id", projectID,
			"error", err)
		return nil, nil, fmt.Errorf("failed to fetch trial balance: %w", err)
	}

	if len(entries) == 0 {
		slog.Warn("generation requested for empty trial balance",
			"project_id", projectID,
			"state", StateFailed)
		return nil, nil, ErrLedgerEmpty
	}

	return project, entries, nil
}

// buildAll invokes every builder, trapping per-type panics so one failed
// statement never takes down the rest.
func (s *statementGenerationService) buildAll(project *models.Project, entries []models.TrialBalanceEntry, generatedAt time.Time) []models.StatementOutcome {
	builders := map[string]func() models.StatementBody{
		models.StatementTypeBalanceSheet: func() models.StatementBody {
			return BuildBalanceSheet(project, entries, generatedAt)
		},
		models.StatementTypeIncomeStatement: func() models.StatementBody {
			return BuildIncomeStatement(project, entries, generatedAt)
		},
		models.StatementTypeCashFlow: func() models.StatementBody {
			return BuildCashFlowStatement(project, entries, generatedAt)
		},
		models.StatementTypeEquityChanges: func() models.StatementBody {
			return BuildEquityChangesStatement(project, entries, generatedAt)
		},
	}

	outcomes := make([]models.StatementOutcome, 0, len(models.AllStatementTypes))
	for _, statementType := range models.AllStatementTypes {
		body, err := runBuilder(builders[statementType])
		if err != nil {
			slog.Error("statement builder failed",
				"project_id", project.ID,
				"state", StateBuilding,
				"statement_type", statementType,
				"error", err)
			outcomes = append(outcomes, models.StatementOutcome{
				StatementType: statementType,
				Status:        models.StatementOutcomeBuildFailed,
				Error:         err.Error(),
			})
			continue
		}

		outcomes = append(outcomes, models.StatementOutcome{
			StatementType: statementType,
			Status:        models.StatementOutcomeGenerated,
			Body:          body,
		})
	}

	return outcomes
}

func runBuilder(build func() models.StatementBody) (body models.StatementBody, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = fmt.Errorf("builder panicked: %v", r)
		}
	}()
	return build(), nil
}

// persistAll upserts each successfully built statement. A persistence failure
// for one type is retried on storage errors, then reported on the outcome; it
// never rolls back or blocks the other types.
func (s *statementGenerationService) persistAll(projectID uuid.UUID, outcomes []models.StatementOutcome) {
	for i := range outcomes {
		outcome := &outcomes[i]
		if !outcome.Succeeded() {
			continue
		}

		document, err := models.NewStatementDocument(outcome.Body)
		if err != nil {
			outcome.Status = models.StatementOutcomePersistFailed
			outcome.Error = err.Error()
			continue
		}

		if err := s.upsertWithRetry(projectID, outcome.StatementType, document); err != nil {
			slog.Error("failed to persist statement",
				"project_id", projectID,
				"state", StatePersisting,
				"statement_type", outcome.StatementType,
				"error", err)
			outcome.Status = models.StatementOutcomePersistFailed
			outcome.Error = err.Error()
		}
	}
}

func (s *statementGenerationService) upsertWithRetry(projectID uuid.UUID, statementType string, document models.StatementDocument) error {
	var lastErr error

	for attempt := 1; attempt <= s.persistAttempts; attempt++ {
		_, err := s.statementRepo.Upsert(projectID, statementType, document)
		if err == nil {
			return nil
		}

		// Not a storage fault; retrying cannot help.
		if errors.Is(err, models.ErrInvalidStatementType) {
			return err
		}

		lastErr = err
		if attempt < s.persistAttempts {
			s.metrics.RecordPersistenceRetry(statementType)
			slog.Warn("retrying statement upsert",
				"project_id", projectID,
				"statement_type", statementType,
				"attempt", attempt,
				"error", err)
			time.Sleep(s.persistBackoff)
		}
	}

	return lastErr
}

func structuralDifference(outcomes []models.StatementOutcome) decimal.Decimal {
	for i := range outcomes {
		if outcomes[i].StatementType != models.StatementTypeBalanceSheet || !outcomes[i].Succeeded() {
			continue
		}
		if body, ok := outcomes[i].Body.(*models.BalanceSheetBody); ok {
			return body.Assets.TotalAssets.Sub(body.TotalLiabilitiesEquity)
		}
	}
	return decimal.Zero
}

func filterOutcomes(outcomes []models.StatementOutcome, requestedType string) []models.StatementOutcome {
	if requestedType == "" {
		return outcomes
	}
	for i := range outcomes {
		if outcomes[i].StatementType == requestedType {
			return outcomes[i : i+1]
		}
	}
	return outcomes
}
