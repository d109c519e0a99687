package sessionrepo

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

func (repo *Repository) GetByUserID(ctx context.Context, userID int) (*domain.MiningSession, error) {
	query := `
		SELECT user_id, last_mine_time, next_mine_time, profit_amount
		FROM mining_sessions
		WHERE user_id = $1
	`
	var s domain.MiningSession
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&s.UserID, &s.LastMineTime, &s.NextMineTime, &s.ProfitAmount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't read mining session", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// Upsert keeps a single session row per user.
func (repo *Repository) Upsert(ctx context.Context, session *domain.MiningSession) error {
	query := `
		INSERT INTO mining_sessions (user_id, last_mine_time, next_mine_time, profit_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET last_mine_time = EXCLUDED.last_mine_time,
			next_mine_time = EXCLUDED.next_mine_time,
			profit_amount = EXCLUDED.profit_amount
	`
	_, err := repo.db.Exec(ctx, query, session.UserID, session.LastMineTime, session.NextMineTime, session.ProfitAmount)
	if err != nil {
		zap.L().Error("can't save mining session", zap.Int("user_id", session.UserID), zap.Error(err))
		return err
	}
	return nil
}
