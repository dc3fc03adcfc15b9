package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeFixture struct {
	AccountCode string `json:"account_code" validate:"account_code"`
}

type typeFixture struct {
	Type string `json:"type" validate:"statement_type"`
}

type yearFixture struct {
	FinancialYear string `json:"financial_year" validate:"financial_year"`
}

type currencyFixture struct {
	Currency string `json:"currency" validate:"currency_code"`
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateAccountCode(t *testing.T) {
	v := GetValidator().GetValidate()

	valid := []string{"1", "1010", "12345678901234567890"}
	for _, code := range valid {
		assert.NoError(t, v.Struct(codeFixture{AccountCode: code}), code)
	}

	invalid := []string{"", "10a0", "10-10", "123456789012345678901", "١٠١٠"}
	for _, code := range invalid {
		assert.Error(t, v.Struct(codeFixture{AccountCode: code}), code)
	}
}

func TestValidateStatementType(t *testing.T) {
	v := GetValidator().GetValidate()

	valid := []string{"balance_sheet", "income_statement", "cash_flow", "equity_changes", "BALANCE_SHEET"}
	for _, statementType := range valid {
		assert.NoError(t, v.Struct(typeFixture{Type: statementType}), statementType)
	}

	invalid := []string{"", "trial_balance", "balance-sheet"}
	for _, statementType := range invalid {
		assert.Error(t, v.Struct(typeFixture{Type: statementType}), statementType)
	}
}

func TestValidateFinancialYear(t *testing.T) {
	v := GetValidator().GetValidate()

	valid := []string{"2024", "1999", "2024/2025"}
	for _, year := range valid {
		assert.NoError(t, v.Struct(yearFixture{FinancialYear: year}), year)
	}

	invalid := []string{"", "24", "2024-2025", "2024/25", "FY2024"}
	for _, year := range invalid {
		assert.Error(t, v.Struct(yearFixture{FinancialYear: year}), year)
	}
}

func TestValidateCurrencyCode(t *testing.T) {
	v := GetValidator().GetValidate()

	for _, currency := range []string{"SAR", "USD", "EUR"} {
		assert.NoError(t, v.Struct(currencyFixture{Currency: currency}), currency)
	}

	for _, currency := range []string{"", "sar", "SA", "SAUDI"} {
		assert.Error(t, v.Struct(currencyFixture{Currency: currency}), currency)
	}
}
