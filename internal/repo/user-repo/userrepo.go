package userrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, role FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetForUpdate locks the user row until the surrounding transaction ends.
func (repo *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, login, role, wallet_balance, crypto_wallet
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Login, &user.Role, &user.WalletBalance, &user.CryptoWallet)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) AddToCryptoWallet(ctx context.Context, userID int, amount float64) (*domain.User, error) {
	query := `
		UPDATE users
		SET crypto_wallet = crypto_wallet + $1
		WHERE id = $2
		RETURNING id, login, role, wallet_balance, crypto_wallet
	`
	return repo.updateWallet(ctx, query, userID, amount)
}

func (repo *Repository) AddToWalletBalance(ctx context.Context, userID int, amount float64) (*domain.User, error) {
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance + $1
		WHERE id = $2
		RETURNING id, login, role, wallet_balance, crypto_wallet
	`
	return repo.updateWallet(ctx, query, userID, amount)
}

func (repo *Repository) updateWallet(ctx context.Context, query string, userID int, amount float64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, amount, userID).
		Scan(&user.ID, &user.Login, &user.Role, &user.WalletBalance, &user.CryptoWallet)
	if err != nil {
		zap.L().Error("can't update user wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}
