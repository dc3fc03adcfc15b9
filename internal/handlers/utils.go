package handlers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parseProjectID extracts and parses the :id path parameter
func parseProjectID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// parsePagination extracts offset/limit query parameters with sane bounds
func parsePagination(c echo.Context) (offset, limit int) {
	offset = 0
	limit = defaultPageLimit

	if v := c.QueryParam("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return offset, limit
}
