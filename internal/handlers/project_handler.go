package handlers

import (
	"errors"
	"net/http"

	"audit-statements/internal/dto"
	apierrors "audit-statements/internal/errors"
	"audit-statements/internal/services"

	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	projectService services.ProjectServiceInterface
	summaryService services.ProjectSummaryServiceInterface
}

func NewProjectHandler(
	projectService services.ProjectServiceInterface,
	summaryService services.ProjectSummaryServiceInterface,
) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		summaryService: summaryService,
	}
}

// CreateProject creates a new audit project
//
// Method: POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(req.Name, req.CompanyName, req.FinancialYear, req.Currency)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    project,
		Message: "Project created successfully",
	})
}

// GetProject retrieves one audit project
//
// Method: GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: project,
	})
}

// ListProjects retrieves projects with pagination
//
// Method: GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	offset, limit := parsePagination(c)

	projects, total, err := h.projectService.ListProjects(offset, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: projects,
		Meta: map[string]interface{}{
			"offset": offset,
			"limit":  limit,
			"total":  total,
		},
	})
}

// DeleteProject removes a project with its trial balance and statements
//
// Method: DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	if err := h.projectService.DeleteProject(projectID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Project deleted successfully",
	})
}

// GetProjectSummary returns the dashboard rollup for one project
//
// Method: GET /api/v1/projects/:id/summary
func (h *ProjectHandler) GetProjectSummary(c echo.Context) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return SendError(c, apierrors.ProjectInvalidID)
	}

	summary, err := h.summaryService.Summarize(projectID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

func (h *ProjectHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrProjectNotFound) {
		return SendError(c, apierrors.ProjectNotFound)
	}
	return SendSystemError(c, err)
}
