package dto

// CreateProjectRequest is the payload for creating an audit project
type CreateProjectRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	CompanyName   string `json:"company_name" validate:"required,min=1,max=255"`
	FinancialYear string `json:"financial_year" validate:"required,financial_year"`
	Currency      string `json:"currency" validate:"omitempty,currency_code"`
}

// ListProjectsParams contains pagination parameters for listing projects
type ListProjectsParams struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}
