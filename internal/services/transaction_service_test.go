package services

import (
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	service         *transactionService
	userID          uuid.UUID
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.service = NewTransactionService(s.transactionRepo, s.accountRepo, slog.Default()).(*transactionService)
	s.service.now = func() time.Time { return time.Date(2024, 9, 1, 22, 15, 0, 0, time.UTC) }
	s.userID = uuid.New()
}

func (s *TransactionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceSuite) TestCreateTransaction_DefaultsDateToToday() {
	s.transactionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tx *models.Transaction) error {
		s.Equal(date(2024, 9, 1), tx.Date)
		s.Equal("salary", tx.Category)
		tx.ID = uuid.New()
		return nil
	})

	tx, err := s.service.CreateTransaction(s.userID, TransactionInput{
		Direction: models.DirectionIncome,
		Amount:    450000,
		Category:  " salary ",
	})
	s.Require().NoError(err)
	s.Equal(s.userID, tx.UserID)
	s.Equal(models.Money(450000), tx.Amount)
}

func (s *TransactionServiceSuite) TestCreateTransaction_Validation() {
	cases := []struct {
		name  string
		input TransactionInput
		field string
	}{
		{"unknown direction", TransactionInput{Direction: "transfer", Amount: 10}, "direction"},
		{"zero amount", TransactionInput{Direction: models.DirectionExpense, Amount: 0}, "amount"},
		{"negative amount", TransactionInput{Direction: models.DirectionExpense, Amount: -5}, "amount"},
		{"reserved category", TransactionInput{Direction: models.DirectionExpense, Amount: 5, Category: models.CategorySettlement}, "category"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateTransaction(s.userID, tc.input)
			var validationErr *ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Equal(tc.field, validationErr.Field)
		})
	}
}

func (s *TransactionServiceSuite) TestCreateTransaction_ForeignAccount() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().GetByIDForUser(accountID, s.userID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.CreateTransaction(s.userID, TransactionInput{
		AccountID: &accountID,
		Direction: models.DirectionExpense,
		Amount:    100,
	})
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *TransactionServiceSuite) TestUpdateTransaction_SettlementLinkImmutable() {
	accountID := uuid.New()
	installmentID := uuid.New()
	existing := &models.Transaction{
		ID:            uuid.New(),
		UserID:        s.userID,
		AccountID:     &accountID,
		InstallmentID: &installmentID,
		Direction:     models.DirectionExpense,
		Amount:        2500,
		Category:      models.CategoryInstallment,
		Date:          date(2024, 8, 10),
	}
	s.transactionRepo.EXPECT().GetByIDForUser(existing.ID, s.userID).Return(existing, nil).Times(2)

	otherAccount := uuid.New()
	_, err := s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		AccountID: &otherAccount,
		Direction: models.DirectionExpense,
		Amount:    2500,
	})
	s.ErrorIs(err, ErrSettlementLinkImmutable)
	s.ErrorIs(err, ErrConflict)

	_, err = s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		AccountID: &accountID,
		Direction: models.DirectionIncome,
		Amount:    2500,
	})
	s.ErrorIs(err, ErrSettlementLinkImmutable)
}

func (s *TransactionServiceSuite) TestUpdateTransaction_SettlementDescriptionEditable() {
	accountID := uuid.New()
	installmentID := uuid.New()
	existing := &models.Transaction{
		ID:            uuid.New(),
		UserID:        s.userID,
		AccountID:     &accountID,
		InstallmentID: &installmentID,
		Direction:     models.DirectionExpense,
		Amount:        2500,
		Category:      models.CategoryInstallment,
		Date:          date(2024, 8, 10),
	}
	s.transactionRepo.EXPECT().GetByIDForUser(existing.ID, s.userID).Return(existing, nil)
	s.transactionRepo.EXPECT().Update(existing).Return(nil)

	tx, err := s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		AccountID:   &accountID,
		Direction:   models.DirectionExpense,
		Amount:      2500,
		Description: "paid at the branch",
		Date:        date(2024, 8, 11),
	})
	s.Require().NoError(err)
	s.Equal("paid at the branch", tx.Description)
	s.Equal(models.CategoryInstallment, tx.Category)
	s.Equal(installmentID, *tx.InstallmentID)
}

func (s *TransactionServiceSuite) TestUpdateTransaction_DetachedInstallmentKeepsCategory() {
	existing := &models.Transaction{
		ID:        uuid.New(),
		UserID:    s.userID,
		Direction: models.DirectionExpense,
		Amount:    3000,
		Category:  models.CategoryInstallment,
		Date:      date(2024, 1, 10),
	}
	s.transactionRepo.EXPECT().GetByIDForUser(existing.ID, s.userID).Return(existing, nil)
	s.transactionRepo.EXPECT().Update(existing).Return(nil)

	tx, err := s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		Direction:   models.DirectionExpense,
		Amount:      3000,
		Category:    models.CategoryInstallment,
		Description: "car loan 1/3",
		Date:        date(2024, 1, 10),
	})
	s.Require().NoError(err)
	s.Equal("car loan 1/3", tx.Description)

	s.transactionRepo.EXPECT().GetByIDForUser(existing.ID, s.userID).Return(existing, nil)
	_, err = s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		Direction: models.DirectionExpense,
		Amount:    3000,
		Category:  "groceries",
		Date:      date(2024, 1, 10),
	})
	s.ErrorIs(err, ErrSettlementLinkImmutable)
}

func (s *TransactionServiceSuite) TestUpdateTransaction_AdHoc() {
	existing := &models.Transaction{
		ID:        uuid.New(),
		UserID:    s.userID,
		Direction: models.DirectionExpense,
		Amount:    900,
		Category:  "food",
		Date:      date(2024, 8, 3),
	}
	s.transactionRepo.EXPECT().GetByIDForUser(existing.ID, s.userID).Return(existing, nil)
	s.transactionRepo.EXPECT().Update(gomock.Any()).Return(nil)

	tx, err := s.service.UpdateTransaction(existing.ID, s.userID, TransactionInput{
		Direction: models.DirectionIncome,
		Amount:    1200,
		Category:  "refund",
		Date:      date(2024, 8, 4),
	})
	s.Require().NoError(err)
	s.Equal(models.DirectionIncome, tx.Direction)
	s.Equal(models.Money(1200), tx.Amount)
	s.Equal("refund", tx.Category)
}

func (s *TransactionServiceSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.transactionRepo.EXPECT().GetByIDForUser(id, s.userID).Return(&models.Transaction{ID: id}, nil)
	s.transactionRepo.EXPECT().Delete(id).Return(nil)
	s.NoError(s.service.DeleteTransaction(id, s.userID))

	s.transactionRepo.EXPECT().GetByIDForUser(id, s.userID).Return(nil, repositories.ErrTransactionNotFound)
	s.ErrorIs(s.service.DeleteTransaction(id, s.userID), ErrTransactionNotFound)
}

func (s *TransactionServiceSuite) TestListTransactions_Validation() {
	start, end := date(2024, 5, 10), date(2024, 5, 1)
	_, _, err := s.service.ListTransactions(s.userID, models.TransactionFilters{StartDate: &start, EndDate: &end})
	s.ErrorIs(err, ErrValidation)

	_, _, err = s.service.ListTransactions(s.userID, models.TransactionFilters{Direction: "sideways"})
	s.ErrorIs(err, ErrValidation)

	s.transactionRepo.EXPECT().GetWithFilters(s.userID, models.TransactionFilters{Limit: 10}).
		Return([]models.Transaction{{}, {}}, int64(7), nil)
	txs, total, err := s.service.ListTransactions(s.userID, models.TransactionFilters{Limit: 10})
	s.Require().NoError(err)
	s.Len(txs, 2)
	s.Equal(int64(7), total)
}
