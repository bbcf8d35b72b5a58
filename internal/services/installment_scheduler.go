package services

import (
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type installmentScheduler struct {
	installmentRepo repositories.InstallmentRepositoryInterface
	logger          *slog.Logger
}

// NewInstallmentScheduler creates the service that persists installment schedules
func NewInstallmentScheduler(installmentRepo repositories.InstallmentRepositoryInterface, logger *slog.Logger) InstallmentSchedulerInterface {
	return &installmentScheduler{
		installmentRepo: installmentRepo,
		logger:          logger,
	}
}

// BuildInstallmentSchedule splits principal into count monthly installments.
// Installment i falls in the i-th month counted from startDate's month, on dueDay
// or on the last day of that month when it is shorter. Every installment gets
// floor(principal/count) and the last one absorbs the remainder.
func BuildInstallmentSchedule(principal models.Money, count int, startDate time.Time, dueDay int) ([]models.Installment, error) {
	if count < 1 {
		return nil, invalid("installment_count", "must be at least 1")
	}
	if principal <= 0 {
		return nil, invalid("principal", "must be positive")
	}
	if dueDay < models.MinDueDay || dueDay > models.MaxDueDay {
		return nil, invalid("due_day", "must be between 1 and 31")
	}
	if startDate.IsZero() {
		return nil, invalid("start_date", "is required")
	}

	amounts, err := principal.Split(count)
	if err != nil {
		return nil, invalid("principal", "must cover at least one minor unit per installment")
	}

	first := models.PeriodOf(startDate)
	installments := make([]models.Installment, count)
	for i := range installments {
		period := first.AddMonths(i)
		installments[i] = models.Installment{
			SequenceNumber: i + 1,
			DueDate:        dueDateIn(period, dueDay),
			Amount:         amounts[i],
			ReferenceMonth: period.Month,
			ReferenceYear:  period.Year,
		}
	}

	return installments, nil
}

func dueDateIn(period models.Period, dueDay int) time.Time {
	day := min(dueDay, period.DaysIn())
	return time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, time.UTC)
}

// ScheduleInstallments builds the schedule and writes it together with the plan
// onto the account. An account is scheduled at most once.
func (s *installmentScheduler) ScheduleInstallments(accountID, userID uuid.UUID, principal models.Money, count int, startDate time.Time, dueDay int) ([]models.Installment, error) {
	installments, err := BuildInstallmentSchedule(principal, count, startDate, dueDay)
	if err != nil {
		return nil, err
	}

	plan := models.InstallmentPlan{
		Principal: principal,
		Count:     count,
		StartDate: startDate,
		DueDay:    dueDay,
	}
	if err := s.installmentRepo.ExecuteAtomicSchedule(accountID, userID, plan, installments); err != nil {
		return nil, translateRepositoryError(err)
	}

	s.logger.Info("installments scheduled",
		"account_id", accountID,
		"count", count,
		"principal", principal.String(),
	)

	return installments, nil
}
