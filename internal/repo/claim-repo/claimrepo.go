package claimrepo

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

func (repo *Repository) Create(ctx context.Context, claim *domain.ProfitClaim) (*domain.ProfitClaim, error) {
	query := `
		INSERT INTO profit_claims (user_id, deposit_id, profit_amount, claimed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, claim.UserID, claim.DepositID, claim.ProfitAmount, claim.ClaimedAt).Scan(&claim.ID)
	if err != nil {
		zap.L().Error("can't save profit claim", zap.Int("user_id", claim.UserID), zap.Error(err))
		return nil, err
	}
	return claim, nil
}

func (repo *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.ProfitClaim, error) {
	query := `
		SELECT id, user_id, deposit_id, profit_amount, claimed_at
		FROM profit_claims
		WHERE user_id = $1
		ORDER BY id ASC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't read profit claims", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.ProfitClaim
	for rows.Next() {
		var c domain.ProfitClaim
		if err := rows.Scan(&c.ID, &c.UserID, &c.DepositID, &c.ProfitAmount, &c.ClaimedAt); err != nil {
			zap.L().Error("can't scan profit claim", zap.Error(err))
			return nil, err
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate profit claims", zap.Error(err))
		return nil, err
	}
	return claims, nil
}
