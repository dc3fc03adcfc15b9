package services

import (
	"testing"

	"audit-statements/internal/models"
	"audit-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ProjectSummaryServiceTestSuite defines the test suite for the summary rollup
type ProjectSummaryServiceTestSuite struct {
	suite.Suite
	projectRepo      *MockProjectRepository
	trialBalanceRepo *MockTrialBalanceRepository
	statementRepo    *MockStatementRepository
	service          ProjectSummaryServiceInterface

	projectID uuid.UUID
	project   *models.Project
}

// SetupTest runs before each test
func (s *ProjectSummaryServiceTestSuite) SetupTest() {
	s.projectID = uuid.New()
	s.project = testProject()
	s.project.ID = s.projectID

	s.projectRepo = &MockProjectRepository{
		GetByIDFunc: func(id uuid.UUID) (*models.Project, error) {
			if id == s.projectID {
				return s.project, nil
			}
			return nil, repositories.ErrProjectNotFound
		},
	}
	s.trialBalanceRepo = &MockTrialBalanceRepository{
		ListByProjectIDFunc: func(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
			return sampleLedger(), nil
		},
	}
	s.statementRepo = &MockStatementRepository{
		CountByProjectIDFunc: func(projectID uuid.UUID) (int64, error) {
			return 4, nil
		},
	}

	s.service = NewProjectSummaryService(s.projectRepo, s.trialBalanceRepo, s.statementRepo)
}

// TestProjectSummaryServiceSuite runs the test suite
func TestProjectSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(ProjectSummaryServiceTestSuite))
}

func (s *ProjectSummaryServiceTestSuite) TestSummarize() {
	summary, err := s.service.Summarize(s.projectID)

	s.NoError(err)
	s.Require().NotNil(summary)
	s.Equal(s.project, summary.Project)
	s.Equal(len(sampleLedger()), summary.TrialBalanceCount)
	s.Equal(4, summary.StatementsCount)

	s.True(summary.TotalAssets.Equal(decimal.NewFromInt(230000)))
	s.True(summary.TotalLiabilities.Equal(decimal.NewFromInt(85000)))
	s.True(summary.TotalEquity.Equal(decimal.NewFromInt(115000)))
	s.True(summary.TotalRevenue.Equal(decimal.NewFromInt(200000)))
	s.True(summary.NetIncome.Equal(decimal.NewFromInt(30000)))
	s.True(summary.IsBalanced)
}

func (s *ProjectSummaryServiceTestSuite) TestSummarize_EmptyTrialBalance() {
	s.trialBalanceRepo.ListByProjectIDFunc = func(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
		return nil, nil
	}
	s.statementRepo.CountByProjectIDFunc = func(projectID uuid.UUID) (int64, error) {
		return 0, nil
	}

	summary, err := s.service.Summarize(s.projectID)

	// No trial balance yields an all-zero summary, never an error.
	s.NoError(err)
	s.Require().NotNil(summary)
	s.Equal(0, summary.TrialBalanceCount)
	s.Equal(0, summary.StatementsCount)
	s.True(summary.TotalAssets.IsZero())
	s.True(summary.TotalLiabilities.IsZero())
	s.True(summary.TotalEquity.IsZero())
	s.True(summary.TotalRevenue.IsZero())
	s.True(summary.NetIncome.IsZero())
	s.False(summary.IsBalanced)
}

func (s *ProjectSummaryServiceTestSuite) TestSummarize_UnbalancedLedger() {
	s.trialBalanceRepo.ListByProjectIDFunc = func(projectID uuid.UUID) ([]models.TrialBalanceEntry, error) {
		return []models.TrialBalanceEntry{
			entry("1010", "Cash", 1000, 0),
			entry("2010", "Accounts Payable", 0, 300),
		}, nil
	}

	summary, err := s.service.Summarize(s.projectID)

	s.NoError(err)
	s.False(summary.IsBalanced)
	s.True(summary.TotalAssets.Equal(decimal.NewFromInt(1000)))
	s.True(summary.TotalLiabilities.Equal(decimal.NewFromInt(300)))
}

func (s *ProjectSummaryServiceTestSuite) TestSummarize_ProjectNotFound() {
	summary, err := s.service.Summarize(uuid.New())

	s.ErrorIs(err, ErrProjectNotFound)
	s.Nil(summary)
}
