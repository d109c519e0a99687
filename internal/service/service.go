package service

import (
	"github.com/GlebRadaev/dailymine/internal/config"
	"github.com/GlebRadaev/dailymine/internal/handlers/auth"
	"github.com/GlebRadaev/dailymine/internal/handlers/mining"
	"github.com/GlebRadaev/dailymine/internal/handlers/settings"
	"github.com/GlebRadaev/dailymine/internal/pg"

	pkgauth "github.com/GlebRadaev/dailymine/pkg/auth"

	"github.com/GlebRadaev/dailymine/internal/repo"
	authservice "github.com/GlebRadaev/dailymine/internal/service/authservice"
	miningservice "github.com/GlebRadaev/dailymine/internal/service/miningservice"
	settingsservice "github.com/GlebRadaev/dailymine/internal/service/settingsservice"
)

type Services struct {
	AuthService     auth.Service
	SettingsService settings.Service
	MiningService   mining.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, locker miningservice.Locker, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(0), jwtService, cfg.JWTTTL)
	settingsService := settingsservice.New(repo.SettingsRepo)
	miningService := miningservice.New(repo.Mining, txManager, locker, cfg.ClaimLockTTL)

	return &Services{
		AuthService:     authService,
		SettingsService: settingsService,
		MiningService:   miningService,
	}
}
