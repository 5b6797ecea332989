package http

import (
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/authflow"
	"github.com/careerlift/careerlift-api/internal/application/content"
	"github.com/careerlift/careerlift-api/internal/application/dashboard"
	"github.com/careerlift/careerlift-api/internal/application/forms"
	"github.com/careerlift/careerlift-api/internal/config"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/transport/http/handler"
	appmiddleware "github.com/careerlift/careerlift-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	flowStore := authflow.NewStore(cfg.FlowTTL, cfg.ResendCooldown)
	authSvc := authflow.NewService(authflow.ServiceDeps{
		Flows:    flowStore,
		Identity: deps.Identity,
		Signer:   deps.JWTProvider,
		Notifier: deps.Notify,
	})
	contentSvc := content.NewService(deps.S3Store)
	formSvc := forms.NewService(forms.ServiceDeps{
		Subscribers:   deps.SubscriberRepo,
		Messages:      deps.MessageRepo,
		Registrations: deps.RegistrationRepo,
		Events:        contentSvc,
		Mailer:        deps.Mailer,
		SMS:           deps.SMSSender,
		Notifier:      deps.Notify,
		StaffInbox:    cfg.StaffInboxTo,
	})
	dashboardSvc := dashboard.NewService(deps.Notify)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	pageH := handler.NewPageHandler(contentSvc)
	formH := handler.NewFormHandler(formSvc)
	dashH := handler.NewDashboardHandler(dashboardSvc)
	notifH := handler.NewNotificationHandler(deps.Notify)
	sessionH := handler.NewSessionHandler(deps.Notify)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)

		r.Get("/pages/home", pageH.Home)
		r.Get("/pages/about", pageH.About)
		r.Get("/pages/team", pageH.Team)
		r.Get("/programs", pageH.Programs)
		r.Get("/donation-tiers", pageH.DonationTiers)
		r.Get("/resources", pageH.Resources)
		r.Get("/resources/{id}/download", pageH.DownloadResource)
		r.Get("/resources/{id}/link", pageH.ResourceLink)
		r.Get("/events", pageH.Events)
		r.Get("/events/{id}", pageH.Event)

		r.With(sensitiveRL.Limit).Post("/newsletter/subscribe", formH.Subscribe)
		r.With(sensitiveRL.Limit).Post("/newsletter/unsubscribe", formH.Unsubscribe)
		r.With(sensitiveRL.Limit).Post("/contact", formH.Contact)
		r.With(sensitiveRL.Limit).Post("/events/{id}/register", formH.RegisterForEvent)

		r.With(sensitiveRL.Limit).Post("/auth/sign-up", authH.SignUp)
		r.With(sensitiveRL.Limit).Post("/auth/sign-in", authH.SignIn)
		r.With(sensitiveRL.Limit).Post("/auth/verify-otp", authH.VerifyOTP)
		r.With(sensitiveRL.Limit).Post("/auth/verify-email", authH.VerifyOTP)
		r.With(sensitiveRL.Limit).Post("/auth/resend", authH.Resend)
		r.Get("/auth/callback", authH.Callback)
		r.Get("/auth/flows/{id}", authH.Guard)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			r.Get("/dashboard/users", dashH.Users)
			r.Get("/dashboard/events", dashH.Events)
			r.Get("/dashboard/messages", dashH.Messages)
			r.Get("/dashboard/locations", dashH.Locations)
			r.Get("/dashboard/stats", dashH.Stats)
			r.Post("/dashboard/events", dashH.CreateEvent)

			r.Get("/notifications", notifH.ListActive)
			r.Get("/notifications/stream", notifH.Stream)
			r.Delete("/notifications/{id}", notifH.Dismiss)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.UserTypeAdmin))

				r.Post("/dashboard/users", dashH.CreateUser)
				r.Get("/events/{id}/registrations", formH.Registrations)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	})

	return r
}
