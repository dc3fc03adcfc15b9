package services

import (
	"testing"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIncomeStatement(t *testing.T) {
	body := BuildIncomeStatement(testProject(), sampleLedger(), testGeneratedAt)
	require.NotNil(t, body)

	assert.Equal(t, models.StatementTypeIncomeStatement, body.StatementType())

	assert.True(t, body.Revenues.Total.Equal(decimal.NewFromInt(200000)))
	assert.True(t, body.CostOfGoodsSold.Equal(decimal.NewFromInt(120000)))
	assert.True(t, body.GrossProfit.Equal(decimal.NewFromInt(80000)))
	assert.True(t, body.Expenses.Total.Equal(decimal.NewFromInt(50000)))
	assert.True(t, body.NetIncome.Equal(decimal.NewFromInt(30000)))

	// gross_profit = revenues - cogs, net_income = gross_profit - expenses
	assert.True(t, body.GrossProfit.Equal(body.Revenues.Total.Sub(body.CostOfGoodsSold)))
	assert.True(t, body.NetIncome.Equal(body.GrossProfit.Sub(body.Expenses.Total)))
}

func TestBuildIncomeStatement_Margins(t *testing.T) {
	body := BuildIncomeStatement(testProject(), sampleLedger(), testGeneratedAt)

	// 80000/200000 = 40%, 30000/200000 = 15%
	assert.True(t, body.GrossProfitMargin.Equal(decimal.NewFromInt(40)),
		"gross margin %s", body.GrossProfitMargin)
	assert.True(t, body.NetProfitMargin.Equal(decimal.NewFromInt(15)),
		"net margin %s", body.NetProfitMargin)
}

func TestBuildIncomeStatement_ZeroRevenueMarginsAreZero(t *testing.T) {
	ledger := []models.TrialBalanceEntry{
		entry("5010", "Cost of Goods Sold", 5000, 0),
		entry("6010", "Salaries Expense", 2000, 0),
	}

	body := BuildIncomeStatement(testProject(), ledger, testGeneratedAt)

	assert.True(t, body.Revenues.Total.IsZero())
	assert.True(t, body.NetIncome.Equal(decimal.NewFromInt(-7000)))
	assert.True(t, body.GrossProfitMargin.IsZero())
	assert.True(t, body.NetProfitMargin.IsZero())
}

func TestBuildIncomeStatement_DetailSections(t *testing.T) {
	body := BuildIncomeStatement(testProject(), sampleLedger(), testGeneratedAt)

	sales, ok := body.Revenues.Details["4010"]
	require.True(t, ok)
	assert.Equal(t, "Sales Revenue", sales.Name)
	assert.True(t, sales.Amount.Equal(decimal.NewFromInt(200000)))

	salaries, ok := body.Expenses.Details["6010"]
	require.True(t, ok)
	assert.True(t, salaries.Amount.Equal(decimal.NewFromInt(50000)))

	// Cost of sales rolls into its own total, not into the expense details.
	assert.NotContains(t, body.Expenses.Details, "5010")
	assert.NotContains(t, body.Revenues.Details, "5010")
}
