package repositories

import (
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createUser(t *testing.T, db *database.DB) *models.User {
	t.Helper()
	return database.CreateTestUser(t, db, gofakeit.Email())
}

func createAccount(t *testing.T, db *database.DB, userID uuid.UUID, kind string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:    userID,
		Name:      gofakeit.Company(),
		Kind:      kind,
		StartDate: date(2024, 1, 10),
		DueDay:    10,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// scheduleFixture writes count installments of amount each, due monthly from January 2024
func scheduleFixture(t *testing.T, db *database.DB, account *models.Account, amount models.Money, count int) []models.Installment {
	t.Helper()

	installments := make([]models.Installment, count)
	for i := range installments {
		installments[i] = models.Installment{
			AccountID:      account.ID,
			SequenceNumber: i + 1,
			DueDate:        date(2024, time.Month(i+1), 10),
			Amount:         amount,
		}
	}

	plan := models.InstallmentPlan{
		Principal: amount * models.Money(count),
		Count:     count,
		StartDate: account.StartDate,
		DueDay:    account.DueDay,
	}
	require.NoError(t, NewInstallmentRepository(db.DB).ExecuteAtomicSchedule(account.ID, account.UserID, plan, installments))
	return installments
}

func createTransaction(t *testing.T, db *database.DB, userID uuid.UUID, direction string, amount models.Money, on time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		Direction:   direction,
		Amount:      amount,
		Description: gofakeit.Sentence(4),
		Date:        on,
	}
	require.NoError(t, db.Create(transaction).Error)
	return transaction
}
