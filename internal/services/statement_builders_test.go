package services

import (
	"time"

	"audit-statements/internal/models"
)

func testProject() *models.Project {
	return &models.Project{
		Name:          "FY2024 Audit",
		CompanyName:   "Acme Trading Co",
		FinancialYear: "2024",
		Currency:      "SAR",
		Status:        models.ProjectStatusActive,
	}
}

// sampleLedger is a balanced trial balance exercising every category and
// subcategory the classifier knows about.
func sampleLedger() []models.TrialBalanceEntry {
	return []models.TrialBalanceEntry{
		entry("1010", "Cash", 80000, 0),
		entry("1210", "Accounts Receivable", 30000, 0),
		entry("1410", "Property and Equipment", 120000, 0),
		entry("2010", "Accounts Payable", 0, 25000),
		entry("2410", "Long-term Loan", 0, 60000),
		entry("3010", "Share Capital", 0, 80000),
		entry("3110", "Statutory Reserve", 0, 10000),
		entry("3310", "Retained Earnings", 0, 25000),
		entry("4010", "Sales Revenue", 0, 200000),
		entry("5010", "Cost of Goods Sold", 120000, 0),
		entry("6010", "Salaries Expense", 50000, 0),
	}
}

var testGeneratedAt = time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)
