package repositories

import (
	"testing"

	"audit-statements/internal/database"
	"audit-statements/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectRepositorySuite defines the test suite for ProjectRepository
type ProjectRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ProjectRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *ProjectRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProjectRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *ProjectRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestProjectRepositorySuite runs the test suite
func TestProjectRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositorySuite))
}

func (s *ProjectRepositorySuite) TestCreate() {
	project := &models.Project{
		Name:          "FY2024 Audit",
		CompanyName:   "Acme Trading Co",
		FinancialYear: "2024",
	}

	err := s.repo.Create(project)
	s.NoError(err)
	s.NotEqual(uuid.Nil, project.ID)
	s.NotZero(project.CreatedAt)
	// BeforeCreate fills defaults
	s.Equal(models.DefaultCurrency, project.Currency)
	s.Equal(models.ProjectStatusDraft, project.Status)
}

func (s *ProjectRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(nil))
}

func (s *ProjectRepositorySuite) TestGetByID() {
	created := database.CreateTestProject(s.T(), s.db, "FY2024 Audit")

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Test Company Ltd", found.CompanyName)
}

func (s *ProjectRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrProjectNotFound)
	s.Nil(found)
}

func (s *ProjectRepositorySuite) TestGetAll_Pagination() {
	for i := 0; i < 5; i++ {
		database.CreateTestProject(s.T(), s.db, "FY2024 Audit")
	}

	projects, total, err := s.repo.GetAll(0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(projects, 3)

	rest, total, err := s.repo.GetAll(3, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(rest, 2)
}

func (s *ProjectRepositorySuite) TestUpdate() {
	project := database.CreateTestProject(s.T(), s.db, "FY2024 Audit")

	project.Status = models.ProjectStatusCompleted
	project.Name = "FY2024 Audit (final)"
	s.NoError(s.repo.Update(project))

	found, err := s.repo.GetByID(project.ID)
	s.NoError(err)
	s.Equal(models.ProjectStatusCompleted, found.Status)
	s.Equal("FY2024 Audit (final)", found.Name)
}

func (s *ProjectRepositorySuite) TestUpdate_NotFound() {
	project := &models.Project{
		ID:            uuid.New(),
		Name:          "Ghost",
		CompanyName:   "Ghost Co",
		FinancialYear: "2024",
	}
	s.ErrorIs(s.repo.Update(project), ErrProjectNotFound)
}

func (s *ProjectRepositorySuite) TestDelete_CascadesToOwnedRows() {
	project := database.CreateTestProject(s.T(), s.db, "FY2024 Audit")
	database.CreateTestEntry(s.T(), s.db, project, "1010", "Cash", 1000, 0)
	database.CreateTestEntry(s.T(), s.db, project, "2010", "Accounts Payable", 0, 1000)

	statement := &models.FinancialStatement{
		ProjectID:     project.ID,
		StatementType: models.StatementTypeBalanceSheet,
		StatementData: models.StatementDocument(`{}`),
	}
	s.NoError(s.db.Create(statement).Error)

	s.NoError(s.repo.Delete(project.ID))

	_, err := s.repo.GetByID(project.ID)
	s.ErrorIs(err, ErrProjectNotFound)

	var entryCount int64
	s.db.Model(&models.TrialBalanceEntry{}).Where("project_id = ?", project.ID).Count(&entryCount)
	s.Zero(entryCount)

	var statementCount int64
	s.db.Model(&models.FinancialStatement{}).Where("project_id = ?", project.ID).Count(&statementCount)
	s.Zero(statementCount)
}

func (s *ProjectRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrProjectNotFound)
}
