package handlers

import (
	"errors"
	"net/http"

	"audit-statements/internal/dto"
	apierrors "audit-statements/internal/errors"
	"audit-statements/internal/services"

	"github.com/labstack/echo/v4"
)

type StatementHandler struct {
	generationService services.StatementGenerationServiceInterface
}

func NewStatementHandler(generationService services.StatementGenerationServiceInterface) *StatementHandler {
	return &StatementHandler{
		generationService: generationService,
	}
}

// GenerateStatements derives and persists all four financial statements from
// the project's trial balance. The optional type parameter narrows the
// response to one statement; the others are still generated and stored.
// Partial failures come back as 200 with per-type error detail.
//
// Method: POST /api/v1/projects/:id/statements/generate
//
// Query parameters:
//   - type: balance_sheet | income_statement | cash_flow | equity_changes (optional)
//
// Error Responses:
//   - 400: Invalid project ID or statement type
//   - 404: Project not found
//   - 422: Trial balance empty
//   - 500: Internal server error
func (h *StatementHandler) GenerateStatements(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	var req dto.GenerateStatementsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.generationService.Generate(projectID, req.Type)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	message := "Financial statements generated successfully"
	if result.IsPartialFailure() {
		message = "Financial statements generated with partial failures"
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: message,
	})
}

// ListStatements returns the persisted statement snapshots for a project
//
// Method: GET /api/v1/projects/:id/statements
func (h *StatementHandler) ListStatements(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	statements, err := h.generationService.ListStatements(projectID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: statements,
	})
}

func (h *StatementHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return SendError(c, apierrors.ProjectNotFound)
	case errors.Is(err, services.ErrLedgerEmpty):
		return SendError(c, apierrors.LedgerEmpty)
	case errors.Is(err, services.ErrInvalidStatementType):
		return SendError(c, apierrors.StatementInvalidType)
	default:
		return SendSystemError(c, err)
	}
}
