package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yeonsu-dev/mentor-match/internal/api/handler"
	customMiddleware "github.com/yeonsu-dev/mentor-match/internal/api/middleware"
	"github.com/yeonsu-dev/mentor-match/internal/config"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/repository/postgres"
	"github.com/yeonsu-dev/mentor-match/internal/repository/redis"
	"github.com/yeonsu-dev/mentor-match/internal/security"
	"github.com/yeonsu-dev/mentor-match/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	mentorRepo := postgres.NewMentorRepository(db)
	matchRepo := postgres.NewMatchRequestRepository(db)

	// Initialize rate limiter and mentor cache
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	mentorCache := redis.NewMentorCache(redisClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenManager)
	profileService := service.NewProfileService(userRepo, profileRepo, mentorCache)
	mentorService := service.NewMentorService(mentorRepo, mentorCache)
	matchService := service.NewMatchService(userRepo, matchRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, profileService)
	profileHandler := handler.NewProfileHandler(authService, profileService)
	mentorHandler := handler.NewMentorHandler(mentorService)
	matchHandler := handler.NewMatchHandler(matchService)

	// Auth middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(tokenManager, userRepo)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Public routes
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Get("/me", authHandler.Me)
			r.Put("/profile", profileHandler.Update)
			r.Get("/images/{role}/{userID}", profileHandler.Image)

			// Mentee-only routes
			r.Group(func(r chi.Router) {
				r.Use(customMiddleware.RequireRole(domain.RoleMentee))

				r.Get("/mentors", mentorHandler.List)
				r.Post("/match-requests", matchHandler.Create)
				r.Get("/match-requests/outgoing", matchHandler.Outgoing)
				r.Delete("/match-requests/{requestID}", matchHandler.Cancel)
			})

			// Mentor-only routes
			r.Group(func(r chi.Router) {
				r.Use(customMiddleware.RequireRole(domain.RoleMentor))

				r.Get("/match-requests/incoming", matchHandler.Incoming)
				r.Put("/match-requests/{requestID}/accept", matchHandler.Accept)
				r.Put("/match-requests/{requestID}/reject", matchHandler.Reject)
			})
		})
	})

	return r
}
