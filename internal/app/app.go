package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dailymine/internal/config"
	"github.com/GlebRadaev/dailymine/internal/depositsync"
	"github.com/GlebRadaev/dailymine/internal/handlers"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"github.com/GlebRadaev/dailymine/internal/repo"
	"github.com/GlebRadaev/dailymine/internal/service"
	"github.com/GlebRadaev/dailymine/pkg/auth"
	"github.com/GlebRadaev/dailymine/pkg/clients"
	"github.com/GlebRadaev/dailymine/pkg/lock"
	"github.com/GlebRadaev/dailymine/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	sync *depositsync.Service

	pool      *pgxpool.Pool
	closeLock func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	locker, closeLock := lock.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.pool = pool
	a.closeLock = closeLock
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(cfg, a.repo, txManager, locker, jwtService)
	a.api = handlers.New(a.srv, jwtService)
	a.sync = depositsync.New(cfg, a.repo.DepositRepo, a.repo.WalletRepo, txManager,
		clients.NewHTTPClient(clients.DefaultTimeout))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startDepositSync(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDepositSync(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sync.Start(ctx)
	}()
}

// close releases the pool and the redis client. Call it only after the http
// server and deposit sync have drained.
func (a *Application) close() {
	if a.closeLock != nil {
		if err := a.closeLock(); err != nil {
			zap.L().Error("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	a.close()
	close(a.errCh)
	wg.Wait()

	return appErr
}
