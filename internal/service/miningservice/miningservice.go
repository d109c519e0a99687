package miningservice

//go:generate mockgen -source=miningservice.go -destination=mock_miningservice.go -package=miningservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/metrics"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	CooldownPeriod = 24 * time.Hour
	profitNote     = "Daily mining profit"
	profitScale    = 8
)

var hundred = decimal.NewFromInt(100)

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	AddToCryptoWallet(ctx context.Context, userID int, amount float64) (*domain.User, error)
}

type DepositRepo interface {
	GetApprovedByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, keyname string) (*domain.CommissionSetting, error)
}

type SessionRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.MiningSession, error)
	Upsert(ctx context.Context, session *domain.MiningSession) error
}

type ClaimRepo interface {
	Create(ctx context.Context, claim *domain.ProfitClaim) (*domain.ProfitClaim, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.ProfitClaim, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}

// Rand yields values in [0, 1).
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

type Repos struct {
	Users        UserRepo
	Deposits     DepositRepo
	Settings     SettingsRepo
	Sessions     SessionRepo
	Claims       ClaimRepo
	Transactions TransactionRepo
}

type Service struct {
	repos     Repos
	txManager pg.TXManager
	locker    Locker
	lockTTL   time.Duration
	rand      Rand
	now       func() time.Time
}

func New(repos Repos, txManager pg.TXManager, locker Locker, lockTTL time.Duration) *Service {
	return &Service{
		repos:     repos,
		txManager: txManager,
		locker:    locker,
		lockTTL:   lockTTL,
		rand:      globalRand{},
		now:       time.Now,
	}
}

func (s *Service) ClaimDailyProfit(ctx context.Context, userID int) (result *domain.ClaimResult, err error) {
	defer func() {
		metrics.Claims.WithLabelValues(outcome(err)).Inc()
		if err == nil {
			metrics.ProfitAmount.Observe(result.Profit)
		}
	}()

	key := fmt.Sprintf("claim:%d", userID)
	token, acquired, lockErr := s.locker.Acquire(ctx, key, s.lockTTL)
	switch {
	case lockErr != nil:
		zap.L().Warn("claim lock unavailable, continuing without it", zap.Int("user_id", userID), zap.Error(lockErr))
	case !acquired:
		zap.L().Info("claim already in progress", zap.Int("user_id", userID))
		return nil, ErrClaimInProgress
	default:
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
				zap.L().Warn("can't release claim lock", zap.Int("user_id", userID), zap.Error(err))
			}
		}()
	}

	var (
		deposits []domain.Deposit
		setting  *domain.CommissionSetting
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deposits, err = s.repos.Deposits.GetApprovedByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		setting, err = s.repos.Settings.Get(gctx, domain.DailyCommissionKey)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load claim inputs", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if len(deposits) == 0 {
		return nil, ErrNoDeposits
	}
	totalDeposits := decimal.Zero
	for _, d := range deposits {
		totalDeposits = totalDeposits.Add(decimal.NewFromFloat(d.Amount))
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()

		user, err := s.repos.Users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		session, err := s.repos.Sessions.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if session != nil && session.NextMineTime.After(now) {
			return newCooldownError(session.NextMineTime, now)
		}

		start, end, err := commissionRange(setting)
		if err != nil {
			return err
		}
		profit := s.drawProfit(user.WalletBalance, start, end)

		updated, err := s.repos.Users.AddToCryptoWallet(ctx, userID, profit)
		if err != nil {
			return err
		}
		if _, err := s.repos.Claims.Create(ctx, &domain.ProfitClaim{
			UserID:       userID,
			DepositID:    deposits[0].ID,
			ProfitAmount: profit,
			ClaimedAt:    now,
		}); err != nil {
			return err
		}
		if _, err := s.repos.Transactions.Create(ctx, &domain.Transaction{
			SenderID:        domain.SystemSenderID,
			ReceiverID:      userID,
			Amount:          profit,
			PaymentMethod:   domain.PaymentMethodSystem,
			TransactionType: domain.TransactionTypeMiningEarning,
			Note:            profitNote,
			Status:          domain.TransactionStatusCompleted,
			TransactionDate: now,
		}); err != nil {
			return err
		}
		next := now.Add(CooldownPeriod)
		if err := s.repos.Sessions.Upsert(ctx, &domain.MiningSession{
			UserID:       userID,
			LastMineTime: now,
			NextMineTime: next,
			ProfitAmount: profit,
		}); err != nil {
			return err
		}

		result = &domain.ClaimResult{
			Profit:        profit,
			WalletBalance: user.WalletBalance,
			CryptoWallet:  updated.CryptoWallet,
			TotalDeposits: totalDeposits.InexactFloat64(),
			NextMineTime:  next,
		}
		return nil
	})
	if err != nil {
		var cooldown *CooldownError
		if errors.As(err, &cooldown) {
			zap.L().Info("claim rejected by cooldown", zap.Int("user_id", userID), zap.Int("hours", cooldown.HoursRemaining))
		} else {
			zap.L().Error("daily claim failed", zap.Int("user_id", userID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("daily profit claimed", zap.Int("user_id", userID), zap.Float64("profit", result.Profit))
	return result, nil
}

// commissionRange converts percentage bounds into fractions.
func commissionRange(setting *domain.CommissionSetting) (decimal.Decimal, decimal.Decimal, error) {
	if setting == nil {
		return decimal.Zero, decimal.Zero, ErrSettingsMissing
	}
	for _, v := range []float64{setting.StartingLevel, setting.EndingLevel} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, decimal.Zero, ErrInvalidRange
		}
	}
	start := decimal.NewFromFloat(setting.StartingLevel).Div(hundred)
	end := decimal.NewFromFloat(setting.EndingLevel).Div(hundred)
	if !start.IsPositive() || !end.IsPositive() || end.LessThan(start) {
		return decimal.Zero, decimal.Zero, ErrInvalidRange
	}
	return start, end, nil
}

// drawProfit truncates so the top of the range stays exclusive.
func (s *Service) drawProfit(walletBalance float64, start, end decimal.Decimal) float64 {
	r := decimal.NewFromFloat(s.rand.Float64())
	rate := start.Add(r.Mul(end.Sub(start)))
	return decimal.NewFromFloat(walletBalance).Mul(rate).Truncate(profitScale).InexactFloat64()
}

func (s *Service) GetMiningStatus(ctx context.Context, userID int) (*domain.MiningStatus, error) {
	session, err := s.repos.Sessions.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't read mining session", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if session == nil {
		return &domain.MiningStatus{}, nil
	}

	remaining := session.NextMineTime.Sub(s.now())
	if remaining < 0 {
		remaining = 0
	}
	last := session.LastMineTime
	return &domain.MiningStatus{
		Active:        remaining > 0,
		RemainingTime: remaining,
		LastMineTime:  &last,
	}, nil
}

func (s *Service) GetProfitHistory(ctx context.Context, userID int) ([]domain.ProfitClaim, error) {
	claims, err := s.repos.Claims.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't read profit history", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if claims == nil {
		claims = []domain.ProfitClaim{}
	}
	return claims, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrNoDeposits):
		return metrics.OutcomeNoDeposits
	case errors.Is(err, ErrCooldownActive):
		return metrics.OutcomeCooldown
	case errors.Is(err, ErrClaimInProgress):
		return metrics.OutcomeLocked
	case errors.Is(err, ErrSettingsMissing), errors.Is(err, ErrInvalidRange):
		return metrics.OutcomeSettings
	default:
		return metrics.OutcomeError
	}
}
