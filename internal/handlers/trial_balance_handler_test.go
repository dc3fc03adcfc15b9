package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"audit-statements/internal/models"
	"audit-statements/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MockTrialBalanceService is an inline mock for TrialBalanceServiceInterface
type MockTrialBalanceService struct {
	ListEntriesFunc    func(projectID uuid.UUID) ([]models.TrialBalanceEntry, error)
	ReplaceEntriesFunc func(projectID uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error)
}

func (m *MockTrialBalanceService) ListEntries(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
	if m.ListEntriesFunc != nil {
		return m.ListEntriesFunc(projectID)
	}
	return nil, nil
}

func (m *MockTrialBalanceService) ReplaceEntries(projectID uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error) {
	if m.ReplaceEntriesFunc != nil {
		return m.ReplaceEntriesFunc(projectID, entries)
	}
	return entries, nil
}

// TrialBalanceHandlerTestSuite is the test suite for TrialBalanceHandler
type TrialBalanceHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	service *MockTrialBalanceService
	handler *TrialBalanceHandler
}

func (s *TrialBalanceHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.service = &MockTrialBalanceService{}
	s.handler = NewTrialBalanceHandler(s.service)
}

func TestTrialBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrialBalanceHandlerTestSuite))
}

func (s *TrialBalanceHandlerTestSuite) newContext(method, projectID, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/v1/projects/"+projectID+"/trial-balance", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/api/v1/projects/"+projectID+"/trial-balance", nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(projectID)
	return c, rec
}

func (s *TrialBalanceHandlerTestSuite) TestGetTrialBalance_Success() {
	projectID := uuid.New()
	s.service.ListEntriesFunc = func(id uuid.UUID) ([]models.TrialBalanceEntry, error) {
		return []models.TrialBalanceEntry{
			{ProjectID: id, AccountCode: "1010", AccountName: "Cash", DebitAmount: decimal.NewFromInt(500)},
			{ProjectID: id, AccountCode: "3010", AccountName: "Capital", CreditAmount: decimal.NewFromInt(500)},
		}, nil
	}

	c, rec := s.newContext(http.MethodGet, projectID.String(), "")
	s.NoError(s.handler.GetTrialBalance(c))

	s.Equal(http.StatusOK, rec.Code)
	// Validation totals ride along with the entries.
	s.Contains(rec.Body.String(), `"is_balanced":true`)
	s.Contains(rec.Body.String(), `"1010"`)
}

func (s *TrialBalanceHandlerTestSuite) TestGetTrialBalance_EmptyIsOK() {
	s.service.ListEntriesFunc = func(id uuid.UUID) ([]models.TrialBalanceEntry, error) {
		return []models.TrialBalanceEntry{}, nil
	}

	c, rec := s.newContext(http.MethodGet, uuid.New().String(), "")
	s.NoError(s.handler.GetTrialBalance(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"entry_count":0`)
}

func (s *TrialBalanceHandlerTestSuite) TestGetTrialBalance_InvalidProjectID() {
	c, rec := s.newContext(http.MethodGet, "bogus", "")
	s.NoError(s.handler.GetTrialBalance(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "PROJECT_002")
}

func (s *TrialBalanceHandlerTestSuite) TestGetTrialBalance_ProjectNotFound() {
	s.service.ListEntriesFunc = func(id uuid.UUID) ([]models.TrialBalanceEntry, error) {
		return nil, services.ErrProjectNotFound
	}

	c, rec := s.newContext(http.MethodGet, uuid.New().String(), "")
	s.NoError(s.handler.GetTrialBalance(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TrialBalanceHandlerTestSuite) TestReplaceTrialBalance_Success() {
	projectID := uuid.New()
	var received []models.TrialBalanceEntry
	s.service.ReplaceEntriesFunc = func(id uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error) {
		received = entries
		return entries, nil
	}

	body := `{"entries":[
		{"account_code":"1010","account_name":"Cash","debit_amount":"1000","credit_amount":"0"},
		{"account_code":"3010","account_name":"Capital","debit_amount":"0","credit_amount":"1000"}
	]}`

	c, rec := s.newContext(http.MethodPut, projectID.String(), body)
	s.NoError(s.handler.ReplaceTrialBalance(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(received, 2)
	s.Equal("1010", received[0].AccountCode)
	s.Contains(rec.Body.String(), "Trial balance replaced successfully")
}

func (s *TrialBalanceHandlerTestSuite) TestReplaceTrialBalance_EmptyEntriesRejected() {
	c, _ := s.newContext(http.MethodPut, uuid.New().String(), `{"entries":[]}`)

	// Validation failure propagates to the global error handler.
	err := s.handler.ReplaceTrialBalance(c)
	s.Error(err)
}

func (s *TrialBalanceHandlerTestSuite) TestReplaceTrialBalance_BadAccountCodeRejected() {
	body := `{"entries":[{"account_code":"ABC!","account_name":"Weird","debit_amount":"1","credit_amount":"0"}]}`
	c, _ := s.newContext(http.MethodPut, uuid.New().String(), body)

	err := s.handler.ReplaceTrialBalance(c)
	s.Error(err)
}

func (s *TrialBalanceHandlerTestSuite) TestReplaceTrialBalance_InvalidEntryFromService() {
	s.service.ReplaceEntriesFunc = func(id uuid.UUID, entries []models.TrialBalanceEntry) ([]models.TrialBalanceEntry, error) {
		return nil, services.ErrInvalidTrialBalanceEntry
	}

	body := `{"entries":[{"account_code":"1010","account_name":"Cash","debit_amount":"1","credit_amount":"0"}]}`
	c, rec := s.newContext(http.MethodPut, uuid.New().String(), body)
	s.NoError(s.handler.ReplaceTrialBalance(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "LEDGER_002")
}
