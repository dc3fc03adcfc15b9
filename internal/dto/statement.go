package dto

// GenerateStatementsRequest triggers statement generation for a project.
// Type optionally narrows the response to one statement; every type is still
// derived and persisted.
type GenerateStatementsRequest struct {
	Type string `json:"type" query:"type" validate:"omitempty,statement_type"`
}
