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

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	installmentRepo repositories.InstallmentRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	scheduler       InstallmentSchedulerInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewAccountService creates an account service that schedules installments for new plans
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	installmentRepo repositories.InstallmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	scheduler InstallmentSchedulerInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		installmentRepo: installmentRepo,
		userRepo:        userRepo,
		scheduler:       scheduler,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateAccount creates a new account for a user. When both principal and
// installment count are given the schedule is generated right away; if that
// fails the account is removed again.
func (s *accountService) CreateAccount(userID uuid.UUID, input CreateAccountInput) (*models.Account, error) {
	if err := s.validateCreateInput(&input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, translateRepositoryError(err)
	}

	account := &models.Account{
		UserID:           userID,
		Name:             input.Name,
		Kind:             input.Kind,
		Principal:        input.Principal,
		InstallmentCount: input.InstallmentCount,
		StartDate:        input.StartDate,
		DueDay:           input.DueDay,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if account.HasInstallmentPlan() {
		_, err := s.scheduler.ScheduleInstallments(account.ID, userID,
			*account.Principal, *account.InstallmentCount, account.StartDate, account.DueDay)
		if err != nil {
			if delErr := s.accountRepo.Delete(account.ID); delErr != nil {
				s.logger.Error("failed to remove account after scheduling error",
					"account_id", account.ID, "error", delErr)
			}
			return nil, err
		}
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", userID,
		"kind", account.Kind,
	)

	return account, nil
}

func (s *accountService) validateCreateInput(input *CreateAccountInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return invalid("name", "is required")
	}

	if input.Kind == "" {
		input.Kind = models.AccountKindOther
	}
	if !models.IsValidAccountKind(input.Kind) {
		return invalid("kind", "must be one of recurring_fixed, loan, credit_card, subscription, other")
	}

	if input.DueDay < models.MinDueDay || input.DueDay > models.MaxDueDay {
		return invalid("due_day", "must be between 1 and 31")
	}

	if input.Principal != nil && !input.Principal.IsPositive() {
		return invalid("principal", "must be positive")
	}

	if input.InstallmentCount != nil && *input.InstallmentCount < 1 {
		return invalid("installment_count", "must be at least 1")
	}

	if input.StartDate.IsZero() {
		input.StartDate = s.now()
	}
	input.StartDate = models.DateOf(input.StartDate)

	return nil
}

// GetAccount retrieves one of the user's accounts
func (s *accountService) GetAccount(accountID, userID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return account, nil
}

// ListAccounts retrieves all accounts of the user
func (s *accountService) ListAccounts(userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListInstallments retrieves the schedule of one of the user's accounts
func (s *accountService) ListInstallments(accountID, userID uuid.UUID) ([]models.Installment, error) {
	if _, err := s.accountRepo.GetByIDForUser(accountID, userID); err != nil {
		return nil, translateRepositoryError(err)
	}

	installments, err := s.installmentRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	return installments, nil
}

// DeleteAccount removes the account and its installments. Its transactions are
// kept and lose their account and installment references.
func (s *accountService) DeleteAccount(accountID, userID uuid.UUID) error {
	if _, err := s.accountRepo.GetByIDForUser(accountID, userID); err != nil {
		return translateRepositoryError(err)
	}

	if err := s.accountRepo.Delete(accountID); err != nil {
		return translateRepositoryError(err)
	}

	s.logger.Info("account deleted", "account_id", accountID, "user_id", userID)
	return nil
}

// AssignInstallmentPeriod moves an installment to another budget period without
// touching its due date
func (s *accountService) AssignInstallmentPeriod(installmentID, userID uuid.UUID, month, year int) (*models.Installment, error) {
	if _, err := models.NewPeriod(month, year); err != nil {
		return nil, periodError(err)
	}

	installment, err := s.installmentRepo.UpdateReferencePeriod(installmentID, userID, month, year)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	return installment, nil
}
