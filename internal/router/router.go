package router

import (
	"log/slog"

	"github.com/anonto42/secret-friends/backend/internal/handlers"
	"github.com/anonto42/secret-friends/backend/internal/identity"
	"github.com/anonto42/secret-friends/backend/internal/middleware"
	"github.com/anonto42/secret-friends/backend/internal/services"
	"github.com/anonto42/secret-friends/backend/pkg/ratelimit"
	"github.com/labstack/echo/v4"
)

// Dependencies are the wired services the routes need. Limiter is nil when
// rate limiting is disabled.
type Dependencies struct {
	ServiceName   string
	Identity      *identity.Service
	Secrets       *services.SecretService
	Friends       *services.FriendService
	Notifications *services.NotificationService
	Accounts      *services.AccountService
	Limiter       ratelimit.Limiter
	Logger        *slog.Logger
}

// SetupRoutes configures all application routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	e.GET("/health", handlers.HealthCheck(deps.ServiceName))

	var limited []echo.MiddlewareFunc
	if deps.Limiter != nil {
		limited = append(limited, middleware.RateLimit(deps.Limiter, deps.Logger))
	}

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	handlers.NewAuthHandler(deps.Identity).RegisterAuthRoutes(authGroup)

	// The account handler authenticates on its own to control its 401 body.
	public := e.Group("/api/v1")
	handlers.NewAccountHandler(deps.Accounts).RegisterAccountRoutes(public, limited...)

	// --- Protected routes (require a session token) ---
	api := e.Group("/api/v1", middleware.Auth(deps.Identity))
	handlers.NewUserHandler(deps.Identity).RegisterProfileRoutes(api)
	handlers.NewSecretHandler(deps.Secrets).RegisterSecretRoutes(api)
	handlers.NewFriendshipHandler(deps.Friends).RegisterFriendshipRoutes(api, limited...)
	handlers.NewNotificationHandler(deps.Notifications).RegisterNotificationRoutes(api)

	deps.Logger.Info("routes configured", "rate_limited", deps.Limiter != nil)
}
