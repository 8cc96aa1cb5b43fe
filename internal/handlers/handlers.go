package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/bonusledger/docs"
	"github.com/GlebRadaev/bonusledger/internal/config"
	adminhandlers "github.com/GlebRadaev/bonusledger/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/bonusledger/internal/handlers/auth"
	loyaltyhandlers "github.com/GlebRadaev/bonusledger/internal/handlers/loyalty"
	webhookhandlers "github.com/GlebRadaev/bonusledger/internal/handlers/webhook"
	"github.com/GlebRadaev/bonusledger/internal/service"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	TelegramLogin(w http.ResponseWriter, r *http.Request)
}

type LoyaltyHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	OrderStatus(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AdjustPoints(w http.ResponseWriter, r *http.Request)
	GrantWelcome(w http.ResponseWriter, r *http.Request)
	GrantBirthday(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	cfg            *config.Config
	AuthHandler    AuthHandler
	LoyaltyHandler LoyaltyHandler
	WebhookHandler WebhookHandler
	AdminHandler   AdminHandler
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		cfg:            cfg,
		AuthHandler:    authhandlers.New(cfg, &auth.JWTService{}),
		LoyaltyHandler: loyaltyhandlers.New(s.LedgerService),
		WebhookHandler: webhookhandlers.New(s.LedgerService, s.BonusService),
		AdminHandler:   adminhandlers.New(s.BonusService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/api/auth/telegram", h.AuthHandler.TelegramLogin)
	r.Post("/api/webhooks/order", h.WebhookHandler.OrderStatus)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/balance", h.LoyaltyHandler.GetBalance)
		r.Route("/points", func(r chi.Router) {
			r.Get("/history", h.LoyaltyHandler.GetHistory)
			r.Post("/spend", h.LoyaltyHandler.Spend)
			r.Post("/confirm", h.LoyaltyHandler.Confirm)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AdminMiddleware(&auth.HashService{}, h.cfg.AdminTokenHash))
		r.Post("/points/adjust", h.AdminHandler.AdjustPoints)
		r.Post("/points/welcome", h.AdminHandler.GrantWelcome)
		r.Post("/points/birthday", h.AdminHandler.GrantBirthday)
	})

	return r
}
