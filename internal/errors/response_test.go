package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(ProjectNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("PROJECT_001", response.Error.Code)
	s.Equal("Audit project not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "account_code is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
}

// TestNewValidationError tests building a validation error from field errors
func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{
		"company_name": "is required",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.Equal("company_name: is required", response.Error.Details[0])
}

// TestWrapSystemError tests that internal detail never reaches the client payload
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused on 10.0.0.5")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "10.0.0.5")

	payload, marshalErr := json.Marshal(response)
	s.NoError(marshalErr)
	s.NotContains(string(payload), "connection refused")
}

// TestGetHTTPStatus tests error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ProjectNotFound, http.StatusNotFound},
		{StatementNotFound, http.StatusNotFound},
		{ProjectInvalidID, http.StatusBadRequest},
		{StatementInvalidType, http.StatusBadRequest},
		{ValidationGeneral, http.StatusBadRequest},
		{LedgerEmpty, http.StatusUnprocessableEntity},
		{LedgerInvalidEntry, http.StatusUnprocessableEntity},
		{ProjectInvalid, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{StatementGenerationFailed, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_123"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), string(tc.code))
	}
}

// TestIsClientError_IsServerError tests error classification helpers
func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	clientErr := NewErrorResponse(ProjectNotFound, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}

// TestString tests the human-readable representation
func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(LedgerEmpty, s.traceID)
	s.Contains(response.String(), "LEDGER_001")
	s.Contains(response.String(), s.traceID)
}
