package services

import (
	"errors"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type paymentLedger struct {
	accountRepo     repositories.AccountRepositoryInterface
	installmentRepo repositories.InstallmentRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewPaymentLedger creates the service that settles installments and accounts
func NewPaymentLedger(
	accountRepo repositories.AccountRepositoryInterface,
	installmentRepo repositories.InstallmentRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PaymentLedgerInterface {
	return &paymentLedger{
		accountRepo:     accountRepo,
		installmentRepo: installmentRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// MarkInstallmentPaid marks the installment paid now and records exactly one
// expense transaction for it
func (l *paymentLedger) MarkInstallmentPaid(installmentID, userID uuid.UUID) (*models.InstallmentSettlement, error) {
	settlement, err := l.installmentRepo.ExecuteAtomicPayment(installmentID, userID, l.now().UTC())
	if err != nil {
		err = translateRepositoryError(err)
		l.metrics.IncrementCounter("installment_payment", map[string]string{"status": paymentStatus(err)})
		return nil, err
	}

	l.metrics.IncrementCounter("installment_payment", map[string]string{"status": "success"})
	l.logger.Info("installment paid",
		"installment_id", installmentID,
		"transaction_id", settlement.Transaction.ID,
		"amount", settlement.Installment.Amount.String(),
	)

	return settlement, nil
}

// MarkInstallmentUnpaid reverts the paid flag. The settlement transaction is kept,
// so the installment cannot be paid again until that transaction is deleted.
// Installments of a settled account cannot be unpaid.
func (l *paymentLedger) MarkInstallmentUnpaid(installmentID, userID uuid.UUID) (*models.Installment, error) {
	installment, err := l.installmentRepo.MarkUnpaid(installmentID, userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	l.logger.Info("installment marked unpaid", "installment_id", installmentID)
	return installment, nil
}

// SettleAccount pays off every outstanding installment of the account with a
// single payment, or the principal for accounts without a schedule
func (l *paymentLedger) SettleAccount(accountID, userID uuid.UUID, paymentAmount models.Money) (*models.Account, error) {
	if !paymentAmount.IsPositive() {
		return nil, invalid("payment_amount", "must be positive")
	}

	account, tx, err := l.accountRepo.ExecuteAtomicSettlement(accountID, userID, paymentAmount, l.now().UTC())
	if err != nil {
		err = translateRepositoryError(err)
		l.metrics.IncrementCounter("account_settlement", map[string]string{"status": paymentStatus(err)})
		return nil, err
	}

	l.metrics.IncrementCounter("account_settlement", map[string]string{"status": "success"})
	l.logger.Info("account settled",
		"account_id", accountID,
		"transaction_id", tx.ID,
		"amount", paymentAmount.String(),
	)

	return account, nil
}

func paymentStatus(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
