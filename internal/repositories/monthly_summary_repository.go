package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSummaryNotFound = errors.New("monthly summary not found")
	ErrSummaryExists   = errors.New("monthly summary already exists for this period")
)

type monthlySummaryRepository struct {
	db *gorm.DB
}

// NewMonthlySummaryRepository creates a new monthly summary repository
func NewMonthlySummaryRepository(db *gorm.DB) MonthlySummaryRepositoryInterface {
	return &monthlySummaryRepository{
		db: db,
	}
}

// GetByPeriod retrieves the stored summary of a user's month
func (r *monthlySummaryRepository) GetByPeriod(userID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	var summary models.MonthlySummary
	if err := r.db.Where("user_id = ? AND reference_month = ? AND reference_year = ?", userID, month, year).
		First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return &summary, nil
}

// GetByUserID retrieves all stored summaries of a user, newest period first
func (r *monthlySummaryRepository) GetByUserID(userID uuid.UUID) ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary
	if err := r.db.Where("user_id = ?", userID).
		Order("reference_year DESC, reference_month DESC").
		Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly summaries: %w", err)
	}
	return summaries, nil
}

// Create inserts a summary. A concurrent insert for the same period yields ErrSummaryExists.
func (r *monthlySummaryRepository) Create(summary *models.MonthlySummary) error {
	if err := r.db.Create(summary).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrSummaryExists
		}
		return fmt.Errorf("failed to create monthly summary: %w", err)
	}
	return nil
}

// Update overwrites a stored summary in place
func (r *monthlySummaryRepository) Update(summary *models.MonthlySummary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	result := r.db.Save(summary)
	if result.Error != nil {
		return fmt.Errorf("failed to update monthly summary: %w", result.Error)
	}
	return nil
}
