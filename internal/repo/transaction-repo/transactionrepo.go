package transactionrepo

import (
	"context"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (sender_id, receiver_id, amount, payment_method, transaction_type, note, status, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		t.SenderID, t.ReceiverID, t.Amount, t.PaymentMethod, t.TransactionType, t.Note, t.Status, t.TransactionDate,
	).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int("receiver_id", t.ReceiverID), zap.Error(err))
		return nil, err
	}
	return t, nil
}
