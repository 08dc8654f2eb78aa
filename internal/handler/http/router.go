package http

import (
	"log/slog"
	"os"

	"github.com/devstudio/checkin-backend-go/internal/handler/http/middleware"
	"github.com/devstudio/checkin-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, authHandler AuthHandler, checkInHandler CheckInHandler, settingsHandler SettingsHandler, placeHandler PlaceHandler, adminHandler AdminHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "checkin-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", authHandler.GetMe)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)
				r.Put("/", settingsHandler.Update)
			})

			r.Post("/checkins", checkInHandler.CheckIn)
			r.Post("/checkouts", checkInHandler.CheckOut)
			r.Get("/checkins", checkInHandler.List)

			r.Get("/places", placeHandler.Search)

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/users", adminHandler.ListUsers)
				r.Put("/users/role", adminHandler.UpdateUserRole)
				r.Put("/users/extra-days", adminHandler.SetUserExtraDays)

				r.Get("/checkins", adminHandler.ListCheckIns)
				r.Post("/checkins", adminHandler.CheckIn)
				r.Post("/checkouts", adminHandler.CheckOut)
				r.Delete("/checkins/{id}", adminHandler.DeleteCheckIn)

				r.Get("/stats", adminHandler.MonthlyStats)
			})
		})
	})
	return r
}
