package repositories

import (
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MonthlySummaryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo MonthlySummaryRepositoryInterface
	user *models.User
}

func TestMonthlySummaryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MonthlySummaryRepositorySuite))
}

func (s *MonthlySummaryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewMonthlySummaryRepository(s.db.DB)
	s.user = createUser(s.T(), s.db)
}

func (s *MonthlySummaryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *MonthlySummaryRepositorySuite) newSummary(month, year int) *models.MonthlySummary {
	return &models.MonthlySummary{
		UserID:           s.user.ID,
		ReferenceMonth:   month,
		ReferenceYear:    year,
		TotalIncome:      100000,
		TotalExpenses:    40000,
		TotalBalance:     60000,
		TotalBillsToPay:  20000,
		BillsCount:       2,
		Status:           models.StatusExcellent,
		LastCalculatedAt: time.Now().UTC(),
	}
}

func (s *MonthlySummaryRepositorySuite) TestCreateAndGetByPeriod() {
	s.Require().NoError(s.repo.Create(s.newSummary(3, 2024)))

	found, err := s.repo.GetByPeriod(s.user.ID, 3, 2024)
	s.Require().NoError(err)
	s.Equal(models.Money(60000), found.TotalBalance)
	s.Equal(models.StatusExcellent, found.Status)
	s.Equal(2, found.BillsCount)

	_, err = s.repo.GetByPeriod(s.user.ID, 4, 2024)
	s.ErrorIs(err, ErrSummaryNotFound)

	_, err = s.repo.GetByPeriod(uuid.New(), 3, 2024)
	s.ErrorIs(err, ErrSummaryNotFound)
}

func (s *MonthlySummaryRepositorySuite) TestCreate_DuplicatePeriod() {
	s.Require().NoError(s.repo.Create(s.newSummary(3, 2024)))

	err := s.repo.Create(s.newSummary(3, 2024))
	s.ErrorIs(err, ErrSummaryExists)
}

func (s *MonthlySummaryRepositorySuite) TestUpdate_OverwritesInPlace() {
	summary := s.newSummary(5, 2024)
	s.Require().NoError(s.repo.Create(summary))
	originalID := summary.ID

	summary.TotalIncome = 0
	summary.TotalExpenses = 1000
	summary.TotalBalance = -1000
	summary.Status = models.StatusCritical
	s.Require().NoError(s.repo.Update(summary))

	found, err := s.repo.GetByPeriod(s.user.ID, 5, 2024)
	s.Require().NoError(err)
	s.Equal(originalID, found.ID)
	s.Equal(models.Money(-1000), found.TotalBalance)
	s.Equal(models.StatusCritical, found.Status)

	summary.TotalBalance = 5
	s.Error(s.repo.Update(summary))
}

func (s *MonthlySummaryRepositorySuite) TestGetByUserID_NewestFirst() {
	s.Require().NoError(s.repo.Create(s.newSummary(11, 2023)))
	s.Require().NoError(s.repo.Create(s.newSummary(2, 2024)))
	s.Require().NoError(s.repo.Create(s.newSummary(12, 2023)))

	summaries, err := s.repo.GetByUserID(s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	s.Equal(models.Period{Month: 2, Year: 2024}, summaries[0].Period())
	s.Equal(models.Period{Month: 12, Year: 2023}, summaries[1].Period())
	s.Equal(models.Period{Month: 11, Year: 2023}, summaries[2].Period())

	other, err := s.repo.GetByUserID(createUser(s.T(), s.db).ID)
	s.Require().NoError(err)
	s.Empty(other)
}
