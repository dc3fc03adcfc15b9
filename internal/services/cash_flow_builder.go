package services

import (
	"time"

	"audit-statements/internal/models"

	"github.com/shopspring/decimal"
)

// BuildCashFlowStatement derives a simplified indirect-method cash flow
// statement. With no transaction-level cash classification upstream,
// operating cash equals net income and the investing and financing sections
// stay empty; the section shape is the contract and must not change.
func BuildCashFlowStatement(project *models.Project, entries []models.TrialBalanceEntry, generatedAt time.Time) *models.CashFlowBody {
	netIncome := round(netIncomeFrom(entries))
	cashFromOperations := netIncome
	cashFromInvesting := decimal.Zero
	cashFromFinancing := decimal.Zero

	return &models.CashFlowBody{
		StatementHeader: newStatementHeader(project, generatedAt),
		OperatingActivities: models.OperatingActivities{
			NetIncome:             netIncome,
			Adjustments:           []models.CashFlowLine{},
			NetCashFromOperations: cashFromOperations,
		},
		InvestingActivities: models.InvestingActivities{
			Activities:           []models.CashFlowLine{},
			NetCashFromInvesting: cashFromInvesting,
		},
		FinancingActivities: models.FinancingActivities{
			Activities:           []models.CashFlowLine{},
			NetCashFromFinancing: cashFromFinancing,
		},
		NetIncreaseInCash: cashFromOperations.Add(cashFromInvesting).Add(cashFromFinancing),
	}
}
