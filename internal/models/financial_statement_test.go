package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidStatementType(t *testing.T) {
	for _, statementType := range AllStatementTypes {
		assert.True(t, IsValidStatementType(statementType), statementType)
	}

	assert.False(t, IsValidStatementType(""))
	assert.False(t, IsValidStatementType("trial_balance"))
	assert.False(t, IsValidStatementType("BALANCE_SHEET"))
}

func TestFinancialStatement_BeforeCreate_RejectsUnknownType(t *testing.T) {
	statement := FinancialStatement{StatementType: "profit_and_loss"}
	err := statement.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrInvalidStatementType)
}

func TestNewStatementDocument(t *testing.T) {
	document, err := NewStatementDocument(map[string]string{"company_name": "Acme"})
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(document, &decoded))
	assert.Equal(t, "Acme", decoded["company_name"])
}

func TestStatementDocument_Scan(t *testing.T) {
	var document StatementDocument

	require.NoError(t, document.Scan([]byte(`{"a":1}`)))
	assert.JSONEq(t, `{"a":1}`, string(document))

	require.NoError(t, document.Scan(`{"b":2}`))
	assert.JSONEq(t, `{"b":2}`, string(document))

	require.NoError(t, document.Scan(nil))
	assert.Nil(t, document)

	assert.Error(t, document.Scan(42))
}
