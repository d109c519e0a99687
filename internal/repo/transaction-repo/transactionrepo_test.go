package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Create(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	repo := New(mockDB)

	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, amount, payment_method, transaction_type, note, status, transaction_date) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`)
	args := []any{
		domain.SystemSenderID, 1, 20.0, domain.PaymentMethodSystem,
		domain.TransactionTypeMiningEarning, "Daily mining profit", domain.TransactionStatusCompleted, now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction saved",
			mockSetup: func() {
				mockDB.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mockDB.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx := &domain.Transaction{
				SenderID:        domain.SystemSenderID,
				ReceiverID:      1,
				Amount:          20.0,
				PaymentMethod:   domain.PaymentMethodSystem,
				TransactionType: domain.TransactionTypeMiningEarning,
				Note:            "Daily mining profit",
				Status:          domain.TransactionStatusCompleted,
				TransactionDate: now,
			}
			result, err := repo.Create(context.Background(), tx)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 42, result.ID)
		})
	}
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
