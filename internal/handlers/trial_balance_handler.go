package handlers

import (
	"errors"
	"net/http"

	"audit-statements/internal/dto"
	apierrors "audit-statements/internal/errors"
	"audit-statements/internal/services"

	"github.com/labstack/echo/v4"
)

type TrialBalanceHandler struct {
	trialBalanceService services.TrialBalanceServiceInterface
}

func NewTrialBalanceHandler(trialBalanceService services.TrialBalanceServiceInterface) *TrialBalanceHandler {
	return &TrialBalanceHandler{
		trialBalanceService: trialBalanceService,
	}
}

// GetTrialBalance returns the project's current trial balance with its
// double-entry validation totals. An empty trial balance is a valid read
// result, not an error.
//
// Method: GET /api/v1/projects/:id/trial-balance
func (h *TrialBalanceHandler) GetTrialBalance(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	entries, err := h.trialBalanceService.ListEntries(projectID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TrialBalanceResponse{
			Entries:    entries,
			Validation: services.ValidateTrialBalance(entries, services.DefaultBalanceEpsilon),
		},
	})
}

// ReplaceTrialBalance replaces the project's trial balance with the uploaded
// entries; the previous set is discarded atomically.
//
// Method: PUT /api/v1/projects/:id/trial-balance
func (h *TrialBalanceHandler) ReplaceTrialBalance(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	var req dto.ReplaceTrialBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	entries, err := h.trialBalanceService.ReplaceEntries(projectID, req.ToEntries())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TrialBalanceResponse{
			Entries:    entries,
			Validation: services.ValidateTrialBalance(entries, services.DefaultBalanceEpsilon),
		},
		Message: "Trial balance replaced successfully",
	})
}

func (h *TrialBalanceHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return SendError(c, apierrors.ProjectNotFound)
	case errors.Is(err, services.ErrInvalidTrialBalanceEntry):
		return SendError(c, apierrors.LedgerInvalidEntry, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
