package settingsrepo

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

func (repo *Repository) Get(ctx context.Context, keyname string) (*domain.CommissionSetting, error) {
	query := `
		SELECT keyname, starting_level, ending_level, updated_at
		FROM commission_settings
		WHERE keyname = $1
	`
	var s domain.CommissionSetting
	err := repo.db.QueryRow(ctx, query, keyname).
		Scan(&s.Keyname, &s.StartingLevel, &s.EndingLevel, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't read commission settings", zap.String("keyname", keyname), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// CreateDefault inserts a zeroed row, or returns the existing one when a
// concurrent caller got there first.
func (repo *Repository) CreateDefault(ctx context.Context, keyname string) (*domain.CommissionSetting, error) {
	query := `
		INSERT INTO commission_settings (keyname, starting_level, ending_level)
		VALUES ($1, 0, 0)
		ON CONFLICT (keyname) DO UPDATE SET keyname = EXCLUDED.keyname
		RETURNING keyname, starting_level, ending_level, updated_at
	`
	var s domain.CommissionSetting
	err := repo.db.QueryRow(ctx, query, keyname).
		Scan(&s.Keyname, &s.StartingLevel, &s.EndingLevel, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create commission settings", zap.String("keyname", keyname), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (repo *Repository) Upsert(ctx context.Context, setting *domain.CommissionSetting) (*domain.CommissionSetting, error) {
	query := `
		INSERT INTO commission_settings (keyname, starting_level, ending_level, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (keyname) DO UPDATE
		SET starting_level = EXCLUDED.starting_level,
			ending_level = EXCLUDED.ending_level,
			updated_at = EXCLUDED.updated_at
		RETURNING keyname, starting_level, ending_level, updated_at
	`
	var s domain.CommissionSetting
	err := repo.db.QueryRow(ctx, query, setting.Keyname, setting.StartingLevel, setting.EndingLevel).
		Scan(&s.Keyname, &s.StartingLevel, &s.EndingLevel, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save commission settings", zap.String("keyname", setting.Keyname), zap.Error(err))
		return nil, err
	}
	return &s, nil
}
