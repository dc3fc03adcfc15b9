package database

import (
	"fmt"
	"testing"

	"audit-statements/internal/config"
	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"financial_statements",
		"trial_balance_entries",
		"audit_projects",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestProject(t *testing.T, db *DB, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:          name,
		CompanyName:   "Test Company Ltd",
		FinancialYear: "2024",
		Currency:      models.DefaultCurrency,
		Status:        models.ProjectStatusActive,
	}

	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	return project
}

func CreateTestEntry(t *testing.T, db *DB, project *models.Project, code, name string, debit, credit float64) *models.TrialBalanceEntry {
	t.Helper()

	entry := &models.TrialBalanceEntry{
		ProjectID:    project.ID,
		AccountCode:  code,
		AccountName:  name,
		DebitAmount:  decimal.NewFromFloat(debit),
		CreditAmount: decimal.NewFromFloat(credit),
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test trial balance entry: %v", err)
	}

	return entry
}
