package repo

import (
	"github.com/GlebRadaev/dailymine/internal/depositsync"
	"github.com/GlebRadaev/dailymine/internal/pg"
	claimrepo "github.com/GlebRadaev/dailymine/internal/repo/claim-repo"
	depositrepo "github.com/GlebRadaev/dailymine/internal/repo/deposit-repo"
	sessionrepo "github.com/GlebRadaev/dailymine/internal/repo/session-repo"
	settingsrepo "github.com/GlebRadaev/dailymine/internal/repo/settings-repo"
	transactionrepo "github.com/GlebRadaev/dailymine/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/dailymine/internal/repo/user-repo"
	"github.com/GlebRadaev/dailymine/internal/service/authservice"
	"github.com/GlebRadaev/dailymine/internal/service/miningservice"
	"github.com/GlebRadaev/dailymine/internal/service/settingsservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	SettingsRepo settingsservice.Repo
	Mining       miningservice.Repos
	DepositRepo  depositsync.Repo
	WalletRepo   depositsync.WalletRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	depositRepo := depositrepo.New(conn)
	settingsRepo := settingsrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		SettingsRepo: settingsRepo,
		Mining: miningservice.Repos{
			Users:        userRepo,
			Deposits:     depositRepo,
			Settings:     settingsRepo,
			Sessions:     sessionrepo.New(conn),
			Claims:       claimrepo.New(conn),
			Transactions: transactionrepo.New(conn),
		},
		DepositRepo: depositRepo,
		WalletRepo:  userRepo,
	}
}
