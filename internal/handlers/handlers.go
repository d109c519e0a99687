package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/dailymine/docs"
	authhandlers "github.com/GlebRadaev/dailymine/internal/handlers/auth"
	mininghandlers "github.com/GlebRadaev/dailymine/internal/handlers/mining"
	settingshandlers "github.com/GlebRadaev/dailymine/internal/handlers/settings"
	"github.com/GlebRadaev/dailymine/internal/service"
	"github.com/GlebRadaev/dailymine/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type MiningHandler interface {
	ClaimDailyProfit(w http.ResponseWriter, r *http.Request)
	GetMiningStatus(w http.ResponseWriter, r *http.Request)
	GetProfitHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	SettingsHandler SettingsHandler
	MiningHandler   MiningHandler
	tokens          auth.JWTServiceInterface
}

func New(s *service.Services, tokens auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		SettingsHandler: settingshandlers.New(s.SettingsService),
		MiningHandler:   mininghandlers.New(s.MiningService),
		tokens:          tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.tokens))

		r.Route("/api/admin/settings", func(r chi.Router) {
			r.Use(auth.AdminOnly)
			r.Get("/commission", h.SettingsHandler.GetSettings)
			r.Put("/commission", h.SettingsHandler.UpdateSettings)
			r.Patch("/commission", h.SettingsHandler.UpdateSettings)
		})
		r.Route("/api/mining", func(r chi.Router) {
			r.Post("/claim", h.MiningHandler.ClaimDailyProfit)
			r.Get("/status", h.MiningHandler.GetMiningStatus)
			r.Get("/history", h.MiningHandler.GetProfitHistory)
		})
	})

	return r
}
