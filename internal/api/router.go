package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kerem/fitness-tracker-api/internal/api/handlers"
	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/config"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, limiter *middleware.RateLimiter, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(limiter.Limit("general", cfg.GeneralRateLimit, cfg.GeneralRateWindow))

	// Liveness
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Fitness Tracker API is running"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, log)
	userHandler := handlers.NewUserHandler(services.User, services.Activity, log)
	attendanceHandler := handlers.NewAttendanceHandler(services.Attendance, log)
	adminHandler := handlers.NewAdminHandler(services.User, log)
	workoutHandler := handlers.NewWorkoutHandler(services.Workout, log)
	activityHandler := handlers.NewActivityHandler(services.Activity, log)
	planHandler := handlers.NewPlanHandler(services.Plan, log)

	authGate := middleware.Auth(services.Auth, log)

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.With(limiter.Limit("login", cfg.LoginRateLimit, cfg.LoginRateWindow)).
			Post("/login", authHandler.Login)
		r.Post("/refresh-token", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Get("/me", userHandler.Me)
			r.Get("/stats", userHandler.Stats)
			r.Patch("/email", userHandler.UpdateEmail)
			r.Patch("/password", userHandler.UpdatePassword)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Append)
				r.Get("/", attendanceHandler.List)
				r.Put("/", attendanceHandler.Update)
				r.Delete("/", attendanceHandler.Delete)
			})

			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authGate)
		r.Get("/", adminHandler.ListUsers)
	})

	r.Route("/workout", func(r chi.Router) {
		r.Use(authGate)
		r.Get("/", workoutHandler.List)
		r.Get("/{id}", workoutHandler.Get)
		r.Post("/", workoutHandler.Create)
		r.Put("/{id}", workoutHandler.Update)
		r.Delete("/{id}", workoutHandler.Delete)
	})

	r.Route("/activity", func(r chi.Router) {
		r.Use(authGate)
		r.Get("/", activityHandler.List)
		r.Get("/{id}", activityHandler.Get)
		r.Post("/", activityHandler.LogBatch)
		r.Put("/{id}", activityHandler.Update)
		r.Delete("/{id}", activityHandler.Delete)
	})

	r.Route("/workout-plan", func(r chi.Router) {
		r.Use(authGate)
		r.Post("/add", planHandler.Add)
		r.Get("/", planHandler.List)
		r.Get("/{planname}", planHandler.Get)
		r.Put("/{planname}", planHandler.Update)
		r.Delete("/{planname}", planHandler.Delete)
	})

	return r
}
