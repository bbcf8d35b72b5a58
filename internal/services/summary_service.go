package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type summaryService struct {
	summaryRepo repositories.MonthlySummaryRepositoryInterface
	aggregator  MonthlyAggregatorInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	group       singleflight.Group
	now         func() time.Time
}

// NewSummaryService creates the service that caches monthly summaries
func NewSummaryService(
	summaryRepo repositories.MonthlySummaryRepositoryInterface,
	aggregator MonthlyAggregatorInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &summaryService{
		summaryRepo: summaryRepo,
		aggregator:  aggregator,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// GetMonthlySummary returns the stored summary for the period, computing and
// storing it first when absent or when forceRecalculate is set. Concurrent
// cache misses for the same period share one computation.
func (s *summaryService) GetMonthlySummary(userID uuid.UUID, month, year int, forceRecalculate bool) (*models.MonthlySummary, error) {
	period, err := models.NewPeriod(month, year)
	if err != nil {
		return nil, periodError(err)
	}

	if !forceRecalculate {
		existing, err := s.summaryRepo.GetByPeriod(userID, month, year)
		if err == nil {
			s.metrics.IncrementCounter("summary_cache_hit", nil)
			return existing, nil
		}
		if !errors.Is(err, repositories.ErrSummaryNotFound) {
			return nil, fmt.Errorf("failed to load monthly summary: %w", err)
		}
		s.metrics.IncrementCounter("summary_cache_miss", nil)
	}

	// Forced calls never join a computation that started before them.
	key := userID.String() + ":" + period.String()
	if forceRecalculate {
		s.group.Forget(key)
		return s.recalculate(userID, period)
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.recalculate(userID, period)
	})
	if err != nil {
		return nil, err
	}

	summary := *v.(*models.MonthlySummary)
	return &summary, nil
}

func (s *summaryService) recalculate(userID uuid.UUID, period models.Period) (*models.MonthlySummary, error) {
	start := s.now()

	result, err := s.aggregator.Aggregate(userID, period.Month, period.Year)
	if err != nil {
		return nil, err
	}

	status := ClassifyFinancialStatus(result.TotalIncome, result.TotalExpenses, result.TotalBillsToPay)
	summary, err := s.upsert(userID, period, result, status, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProcessingTime("summary_recalculation", time.Since(start))
	s.logger.Info("monthly summary computed",
		"user_id", userID,
		"period", period.String(),
		"status", summary.Status,
		"balance", summary.TotalBalance.String(),
	)

	return summary, nil
}

// upsert overwrites the stored row in place, inserting it when absent. Losing
// the insert race to a concurrent writer falls back to an update.
func (s *summaryService) upsert(userID uuid.UUID, period models.Period, result *models.AggregationResult, status models.FinancialStatus, calculatedAt time.Time) (*models.MonthlySummary, error) {
	existing, err := s.summaryRepo.GetByPeriod(userID, period.Month, period.Year)
	switch {
	case err == nil:
		return s.overwrite(existing, result, status, calculatedAt)
	case !errors.Is(err, repositories.ErrSummaryNotFound):
		return nil, fmt.Errorf("failed to load monthly summary: %w", err)
	}

	summary := &models.MonthlySummary{
		UserID:         userID,
		ReferenceMonth: period.Month,
		ReferenceYear:  period.Year,
	}
	summary.Apply(result, status, calculatedAt)

	err = s.summaryRepo.Create(summary)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, repositories.ErrSummaryExists) {
		return nil, fmt.Errorf("failed to store monthly summary: %w", err)
	}

	existing, err = s.summaryRepo.GetByPeriod(userID, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly summary: %w", err)
	}
	return s.overwrite(existing, result, status, calculatedAt)
}

func (s *summaryService) overwrite(summary *models.MonthlySummary, result *models.AggregationResult, status models.FinancialStatus, calculatedAt time.Time) (*models.MonthlySummary, error) {
	summary.Apply(result, status, calculatedAt)
	if err := s.summaryRepo.Update(summary); err != nil {
		return nil, fmt.Errorf("failed to store monthly summary: %w", err)
	}
	return summary, nil
}

// RecalculateAllSummaries forces a recomputation of every stored summary of
// the user, one period at a time. Periods that fail are counted and skipped.
func (s *summaryService) RecalculateAllSummaries(userID uuid.UUID) (*models.RecalculationResult, error) {
	summaries, err := s.summaryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly summaries: %w", err)
	}

	result := &models.RecalculationResult{Total: len(summaries)}
	for _, summary := range summaries {
		if _, err := s.GetMonthlySummary(userID, summary.ReferenceMonth, summary.ReferenceYear, true); err != nil {
			result.Failed++
			s.logger.Warn("failed to recalculate monthly summary",
				"user_id", userID,
				"period", summary.Period().String(),
				"error", err,
			)
			continue
		}
		result.Recalculated++
	}

	s.metrics.RecordGauge("summary_recalculation_failed", float64(result.Failed), nil)
	s.logger.Info("monthly summaries recalculated",
		"user_id", userID,
		"total", result.Total,
		"recalculated", result.Recalculated,
		"failed", result.Failed,
	)

	return result, nil
}

// ListMonthlySummaries returns the user's stored summaries, newest period first
func (s *summaryService) ListMonthlySummaries(userID uuid.UUID) ([]models.MonthlySummary, error) {
	summaries, err := s.summaryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly summaries: %w", err)
	}
	return summaries, nil
}
