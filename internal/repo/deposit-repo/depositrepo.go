package depositrepo

import (
	"context"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetApprovedByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT id, user_id, status, amount, created_at
        FROM deposits
        WHERE user_id = $1 AND status = 'approved'
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch approved deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanDeposits(rows)
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	query := `
        SELECT id, user_id, status, amount, created_at
        FROM deposits
        WHERE status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to fetch pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanDeposits(rows)
}

// UpdateStatus only moves deposits out of pending, so a deposit is credited
// at most once. It reports whether a row changed.
func (r *Repository) UpdateStatus(ctx context.Context, depositID int, status string) (bool, error) {
	query := `
        UPDATE deposits
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, depositID)
	if err != nil {
		zap.L().Error("failed to update deposit status", zap.Int("deposit_id", depositID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanDeposits(rows pgx.Rows) ([]domain.Deposit, error) {
	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.UserID, &d.Status, &d.Amount, &d.CreatedAt); err != nil {
			zap.L().Error("failed to scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate deposit rows", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
