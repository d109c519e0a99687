package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var txOpts = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func NewMock(t *testing.T) (*TxManager, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return &TxManager{db: mockDB}, mockDB
}

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOpts)
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET crypto_wallet = 1`)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context) error {
				tx, ok := txFromContext(ctx)
				if !ok {
					return errors.New("no tx in context")
				}
				_, err := tx.Exec(ctx, `UPDATE users SET crypto_wallet = 1`)
				return err
			},
			expectErr: false,
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOpts)
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context) error {
				return errors.New("boom")
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOpts).WillReturnError(errors.New("connection refused"))
			},
			fn: func(ctx context.Context) error {
				t.Error("fn must not run when begin fails")
				return nil
			},
			expectErr: true,
		},
		{
			name: "Commit error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(txOpts)
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(ctx context.Context) error {
				return nil
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, mock := NewMock(t)
			tt.mockSetup(mock)

			err := manager.Begin(context.Background(), tt.fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_NestedBeginJoinsOuter(t *testing.T) {
	manager, mock := NewMock(t)
	mock.ExpectBeginTx(txOpts)
	mock.ExpectCommit()

	calls := 0
	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_BeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	beginner := NewMocktxBeginner(ctrl)
	beginner.EXPECT().BeginTx(gomock.Any(), txOpts).Return(nil, errors.New("pool closed"))

	manager := &TxManager{db: beginner}
	err := manager.Begin(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorContains(t, err, "pool closed")
}
