package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementBody is implemented by every typed statement body so builders can
// be handled uniformly while keeping each body's schema fixed and checkable.
type StatementBody interface {
	StatementType() string
}

// StatementHeader carries the project metadata stamped onto every statement.
type StatementHeader struct {
	CompanyName   string    `json:"company_name"`
	FinancialYear string    `json:"financial_year"`
	Currency      string    `json:"currency"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// AccountLine is a single classified account as presented inside a statement
// section, keyed by account code in the enclosing map.
type AccountLine struct {
	Name   string          `json:"name"`
	NameEn string          `json:"name_en,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceSheetAssets groups asset accounts by liquidity.
type BalanceSheetAssets struct {
	CurrentAssets         map[string]AccountLine `json:"current_assets"`
	NonCurrentAssets      map[string]AccountLine `json:"non_current_assets"`
	TotalCurrentAssets    decimal.Decimal        `json:"total_current_assets"`
	TotalNonCurrentAssets decimal.Decimal        `json:"total_non_current_assets"`
	TotalAssets           decimal.Decimal        `json:"total_assets"`
}

// BalanceSheetLiabilities groups liability accounts by maturity.
type BalanceSheetLiabilities struct {
	CurrentLiabilities         map[string]AccountLine `json:"current_liabilities"`
	NonCurrentLiabilities      map[string]AccountLine `json:"non_current_liabilities"`
	TotalCurrentLiabilities    decimal.Decimal        `json:"total_current_liabilities"`
	TotalNonCurrentLiabilities decimal.Decimal        `json:"total_non_current_liabilities"`
	TotalLiabilities           decimal.Decimal        `json:"total_liabilities"`
}

// BalanceSheetEquity splits equity into its statement components.
type BalanceSheetEquity struct {
	Capital          decimal.Decimal `json:"capital"`
	Reserves         decimal.Decimal `json:"reserves"`
	RetainedEarnings decimal.Decimal `json:"retained_earnings"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// BalanceSheetBody is the balance sheet statement. Note that total_assets and
// total_liabilities_equity are both reported but never cross-asserted here;
// the ledger-level balance flag and the structural difference are surfaced as
// separate diagnostics on the generation result.
type BalanceSheetBody struct {
	StatementHeader
	Assets                BalanceSheetAssets      `json:"assets"`
	Liabilities           BalanceSheetLiabilities `json:"liabilities"`
	Equity                BalanceSheetEquity      `json:"equity"`
	TotalLiabilitiesEquity decimal.Decimal        `json:"total_liabilities_equity"`
}

func (b *BalanceSheetBody) StatementType() string { return StatementTypeBalanceSheet }

// StatementSection is a total plus its contributing account lines.
type StatementSection struct {
	Total   decimal.Decimal        `json:"total"`
	Details map[string]AccountLine `json:"details"`
}

// IncomeStatementBody is the income statement.
type IncomeStatementBody struct {
	StatementHeader
	Revenues          StatementSection `json:"revenues"`
	CostOfGoodsSold   decimal.Decimal  `json:"cost_of_goods_sold"`
	GrossProfit       decimal.Decimal  `json:"gross_profit"`
	Expenses          StatementSection `json:"expenses"`
	NetIncome         decimal.Decimal  `json:"net_income"`
	GrossProfitMargin decimal.Decimal  `json:"gross_profit_margin"`
	NetProfitMargin   decimal.Decimal  `json:"net_profit_margin"`
}

func (b *IncomeStatementBody) StatementType() string { return StatementTypeIncomeStatement }

// OperatingActivities carries the indirect-method operating section.
type OperatingActivities struct {
	NetIncome             decimal.Decimal   `json:"net_income"`
	Adjustments           []CashFlowLine    `json:"adjustments"`
	NetCashFromOperations decimal.Decimal   `json:"net_cash_from_operations"`
}

// InvestingActivities carries the investing section.
type InvestingActivities struct {
	Activities           []CashFlowLine  `json:"activities"`
	NetCashFromInvesting decimal.Decimal `json:"net_cash_from_investing"`
}

// FinancingActivities carries the financing section.
type FinancingActivities struct {
	Activities           []CashFlowLine  `json:"activities"`
	NetCashFromFinancing decimal.Decimal `json:"net_cash_from_financing"`
}

// CashFlowLine is a labeled cash movement inside a cash flow section.
type CashFlowLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowBody is the cash flow statement. No transaction-level cash
// classification exists upstream, so investing and financing stay empty and
// operating cash equals net income. The shape is the contract; extensions
// must preserve it.
type CashFlowBody struct {
	StatementHeader
	OperatingActivities OperatingActivities `json:"operating_activities"`
	InvestingActivities InvestingActivities `json:"investing_activities"`
	FinancingActivities FinancingActivities `json:"financing_activities"`
	NetIncreaseInCash   decimal.Decimal     `json:"net_increase_in_cash"`
}

func (b *CashFlowBody) StatementType() string { return StatementTypeCashFlow }

// EquityBalance is an equity position at a point in time.
type EquityBalance struct {
	Capital          decimal.Decimal `json:"capital"`
	Reserves         decimal.Decimal `json:"reserves"`
	RetainedEarnings decimal.Decimal `json:"retained_earnings"`
	Total            decimal.Decimal `json:"total"`
}

// EquityMovements records equity movements during the period. Capital and
// reserve movements are not tracked upstream and stay zero.
type EquityMovements struct {
	CapitalIncrease  decimal.Decimal `json:"capital_increase"`
	ReservesIncrease decimal.Decimal `json:"reserves_increase"`
	NetIncome        decimal.Decimal `json:"net_income"`
	Dividends        decimal.Decimal `json:"dividends"`
}

// EquityChangesBody is the statement of changes in equity. Beginning retained
// earnings are reconstructed by backing net income out of the ending balance,
// so beginning + net income always round-trips to ending.
type EquityChangesBody struct {
	StatementHeader
	BeginningBalance EquityBalance   `json:"beginning_balance"`
	Changes          EquityMovements `json:"changes"`
	EndingBalance    EquityBalance   `json:"ending_balance"`
}

func (b *EquityChangesBody) StatementType() string { return StatementTypeEquityChanges }
