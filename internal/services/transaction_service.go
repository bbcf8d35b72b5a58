package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewTransactionService creates the service for ad-hoc income and expenses
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateTransaction records an income or expense of the user
func (s *transactionService) CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}
	if isReservedCategory(input.Category) {
		return nil, invalid("category", "is reserved for settlements")
	}
	if err := s.checkAccount(input.AccountID, userID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   input.AccountID,
		Direction:   input.Direction,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"direction", transaction.Direction,
		"amount", transaction.Amount.String(),
	)

	return transaction, nil
}

// GetTransaction retrieves one of the user's transactions
func (s *transactionService) GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return transaction, nil
}

// ListTransactions retrieves a page of the user's transactions and the total match count
func (s *transactionService) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.Direction != "" && !models.IsValidDirection(filters.Direction) {
		return nil, 0, invalid("direction", "must be income or expense")
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, 0, invalid("end_date", "must not be before start_date")
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// UpdateTransaction replaces the editable fields of a transaction. Transactions
// recorded by a settlement keep their account, category and direction.
func (s *transactionService) UpdateTransaction(transactionID, userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if transaction.IsSettlement() {
		if !sameAccount(transaction.AccountID, input.AccountID) ||
			(input.Category != "" && input.Category != transaction.Category) ||
			input.Direction != transaction.Direction {
			return nil, ErrSettlementLinkImmutable
		}
	} else {
		if isReservedCategory(input.Category) {
			return nil, invalid("category", "is reserved for settlements")
		}
		if err := s.checkAccount(input.AccountID, userID); err != nil {
			return nil, err
		}
		transaction.AccountID = input.AccountID
		transaction.Category = input.Category
		transaction.Direction = input.Direction
	}

	transaction.Amount = input.Amount
	transaction.Description = input.Description
	transaction.Date = input.Date

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction. Deleting the settlement transaction
// of an unpaid installment makes it payable again.
func (s *transactionService) DeleteTransaction(transactionID, userID uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return translateRepositoryError(err)
	}

	if err := s.transactionRepo.Delete(transaction.ID); err != nil {
		return translateRepositoryError(err)
	}

	s.logger.Info("transaction deleted",
		"transaction_id", transactionID,
		"settlement", transaction.IsSettlement(),
	)
	return nil
}

func (s *transactionService) validateInput(input *TransactionInput) error {
	if !models.IsValidDirection(input.Direction) {
		return invalid("direction", "must be income or expense")
	}
	if !input.Amount.IsPositive() {
		return invalid("amount", "must be positive")
	}

	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)

	if input.Date.IsZero() {
		input.Date = s.now()
	}
	input.Date = models.DateOf(input.Date)

	return nil
}

func (s *transactionService) checkAccount(accountID *uuid.UUID, userID uuid.UUID) error {
	if accountID == nil {
		return nil
	}
	if _, err := s.accountRepo.GetByIDForUser(*accountID, userID); err != nil {
		return translateRepositoryError(err)
	}
	return nil
}

func isReservedCategory(category string) bool {
	return category == models.CategoryInstallment || category == models.CategorySettlement
}

func sameAccount(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
