package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/auth"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/budget"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/issue"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/location"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/media"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/representative"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/session"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/speech"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/user"
	"github.com/sanjay-dhavanam/CivicConnect/internal/config"
	"github.com/sanjay-dhavanam/CivicConnect/internal/transport/http/handler"
	appmiddleware "github.com/sanjay-dhavanam/CivicConnect/internal/transport/http/middleware"
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
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		OTPRepo:   deps.OTPRepo,
		SMSSender: deps.SMSSender,
		OTPTTL:    cfg.OTPTTL,
	})
	sessionSvc := session.NewService(session.ServiceDeps{
		UserRepo:    deps.UserRepo,
		SessionRepo: deps.SessionRepo,
		SessionTTL:  cfg.SessionTTL,
	})
	userSvc := user.NewService(user.ServiceDeps{UserRepo: deps.UserRepo})
	issueSvc := issue.NewService(issue.ServiceDeps{
		IssueRepo:   deps.IssueRepo,
		CommentRepo: deps.CommentRepo,
		VoteRepo:    deps.VoteRepo,
	})
	budgetSvc := budget.NewService(budget.ServiceDeps{BudgetRepo: deps.BudgetRepo})
	repSvc := representative.NewService(deps.RepresentativeRepo)
	locationSvc := location.NewService(deps.LocationRepo)
	speechSvc := speech.NewService(deps.SpeechRepo, deps.Translator)
	var mediaSvc *media.Service
	if deps.S3Store != nil {
		mediaSvc = media.NewService(deps.S3Store)
	}

	secureCookies := cfg.AppEnv == "production"

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	sessionH := handler.NewSessionHandler(sessionSvc, secureCookies)
	userH := handler.NewUserHandler(userSvc)
	issueH := handler.NewIssueHandler(issueSvc)
	budgetH := handler.NewBudgetHandler(budgetSvc)
	repH := handler.NewRepresentativeHandler(repSvc)
	locationH := handler.NewLocationHandler(locationSvc)
	speechH := handler.NewSpeechHandler(speechSvc)
	mediaH := handler.NewMediaHandler(mediaSvc)

	r.Route("/api", func(r chi.Router) {
		r.Use(appmiddleware.Resolve(sessionSvc))

		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/send-otp", authH.SendOTP)
		r.With(sensitiveRL.Limit).Post("/auth/verify-otp", authH.VerifyOTP)
		r.With(sensitiveRL.Limit).Post("/auth/login", sessionH.Login)
		r.With(sensitiveRL.Limit).Post("/auth/govt-login", sessionH.GovtLogin)
		r.With(sensitiveRL.Limit).Post("/auth/register", userH.Register)
		r.Post("/auth/logout", sessionH.Logout)

		r.Post("/issues", issueH.Create) // anonymous reports allowed
		r.Get("/issues", issueH.List)
		r.Get("/issues/{id}", issueH.Get)
		r.Get("/issues/{id}/comments", issueH.ListComments)
		r.Get("/budgets", budgetH.List)
		r.Get("/representatives", repH.List)
		r.Get("/locations", locationH.List)
		r.Get("/locations/{id}", locationH.Get)
		r.Get("/speeches", speechH.List)
		r.Get("/speeches/{id}", speechH.Get)
		r.Get("/speeches/{id}/translate", speechH.Translate)
		r.Get("/uploads/{key}", mediaH.Download)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireAuth)

			r.Get("/auth/me", sessionH.Me)
			r.Get("/users/me", userH.Me)
			r.Put("/users/me", userH.UpdateMe)
			r.Post("/set-location", sessionH.SetLocation)
			r.Post("/issues/{id}/comments", issueH.AddComment)
			r.Post("/issues/{id}/vote", issueH.Vote)
			r.Post("/uploads", mediaH.Upload)

			// Government-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireGovernment)

				r.Patch("/issues/{id}/status", issueH.UpdateStatus)
				r.Post("/budgets", budgetH.Create)
				r.Post("/representatives", repH.Create)
				r.Post("/locations", locationH.Create)
			})
		})
	})

	return r
}
