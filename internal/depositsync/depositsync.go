package depositsync

//go:generate mockgen -source=depositsync.go -destination=mock_depositsync.go -package=depositsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/dailymine/internal/config"
	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/metrics"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"github.com/GlebRadaev/dailymine/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries  = 3
	defaultSize = 10
	batchLimit  = 1000

	defaultInterval = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Repo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	UpdateStatus(ctx context.Context, depositID int, status string) (bool, error)
}

type WalletRepo interface {
	AddToWalletBalance(ctx context.Context, userID int, amount float64) (*domain.User, error)
}

// Response is the gateway's view of a deposit.
type Response struct {
	Deposit int    `json:"deposit"`
	Status  string `json:"status"`
}

type Service struct {
	url            string
	deposits       Repo
	wallets        WalletRepo
	txManager      pg.TXManager
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
}

func New(cfg *config.Config, deposits Repo, wallets WalletRepo, txManager pg.TXManager, client clients.HTTPClientI) *Service {
	interval := cfg.DepositSyncInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		url:            cfg.DepositGatewayAddress,
		deposits:       deposits,
		wallets:        wallets,
		txManager:      txManager,
		client:         client,
		limit:          batchLimit,
		workerPool:     NewWorkerPool(defaultSize),
		updateInterval: interval,
		retryInterval:  time.Second,
	}
}

// Start polls the gateway and blocks until ctx is done. It returns at once
// when no gateway is configured.
func (s *Service) Start(ctx context.Context) {
	if s.url == "" {
		zap.L().Info("deposit gateway is not configured, deposit sync is disabled")
		return
	}
	zap.L().Info("deposit sync started", zap.String("gateway", s.url), zap.Duration("interval", s.updateInterval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping deposit sync")
			return
		case <-ticker.C:
			s.processDeposits(ctx)
		}
	}
}

func (s *Service) processDeposits(ctx context.Context) {
	deposits, err := s.deposits.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending deposits", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deposit := range deposits {
		if _, loaded := s.inFlight.LoadOrStore(deposit.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(deposit.ID)
				return s.handleDeposit(ctx, deposit)
			})
			if err != nil {
				s.inFlight.Delete(deposit.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to dispatch deposits", zap.Error(err))
	}
}

func (s *Service) handleDeposit(ctx context.Context, deposit domain.Deposit) error {
	url := s.url + "/api/deposits/" + strconv.Itoa(deposit.ID)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to check deposit %d after %d retries: %w", deposit.ID, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return s.applyStatus(ctx, deposit, respBody)
		case http.StatusTooManyRequests:
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryAfter(respHeaders, attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("deposit %d is still rate limited after %d retries", deposit.ID, maxRetries)
		case http.StatusNoContent:
			zap.L().Warn("deposit not known to gateway, retrying", zap.Int("deposit_id", deposit.ID), zap.Int("attempt", attempt))
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("deposit %d not found after %d retries", deposit.ID, maxRetries)
		default:
			zap.L().Error("unexpected gateway status", zap.Int("status", statusCode), zap.Int("deposit_id", deposit.ID))
			return ErrUnexpectedStatus
		}
	}
	return nil
}

func (s *Service) applyStatus(ctx context.Context, deposit domain.Deposit, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Deposit != deposit.ID {
		return fmt.Errorf("deposit id mismatch: expected %d, got %d", deposit.ID, response.Deposit)
	}

	switch response.Status {
	case domain.DepositStatusApproved:
		var changed bool
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			changed, err = s.deposits.UpdateStatus(ctx, deposit.ID, domain.DepositStatusApproved)
			if err != nil || !changed {
				return err
			}
			if _, err := s.wallets.AddToWalletBalance(ctx, deposit.UserID, deposit.Amount); err != nil {
				return fmt.Errorf("failed to credit user %d: %w", deposit.UserID, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !changed {
			zap.L().Debug("deposit already resolved", zap.Int("deposit_id", deposit.ID))
			return nil
		}
		zap.L().Info("deposit approved", zap.Int("deposit_id", deposit.ID), zap.Int("user_id", deposit.UserID),
			zap.Float64("amount", deposit.Amount))
	case domain.DepositStatusRejected:
		changed, err := s.deposits.UpdateStatus(ctx, deposit.ID, domain.DepositStatusRejected)
		if err != nil {
			return err
		}
		if !changed {
			zap.L().Debug("deposit already resolved", zap.Int("deposit_id", deposit.ID))
			return nil
		}
		zap.L().Info("deposit rejected", zap.Int("deposit_id", deposit.ID))
	case domain.DepositStatusPending:
		zap.L().Debug("deposit still pending", zap.Int("deposit_id", deposit.ID))
		return nil
	default:
		zap.L().Warn("unrecognized deposit status", zap.Int("deposit_id", deposit.ID), zap.String("status", response.Status))
		return nil
	}

	metrics.DepositSync.WithLabelValues(response.Status).Inc()
	return nil
}

func (s *Service) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("gateway rate limit, backing off", zap.Int("attempt", attempt), zap.Duration("retry_after", retryAfter))
	return retryAfter
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
