package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anonto42/secret-friends/backend/pkg/ratelimit"
	"github.com/labstack/echo/v4"
)

// RateLimit throttles each subject per route. The subject is the
// authenticated user when Auth ran first, the client IP otherwise. A limiter
// failure lets the request through.
func RateLimit(limiter ratelimit.Limiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := UserID(c)
			if !ok {
				subject = "ip:" + c.RealIP()
			}
			key := ratelimit.Key(subject, fmt.Sprintf("%s %s", c.Request().Method, c.Path()))

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.WarnContext(c.Request().Context(), "rate limit check failed", "key", key, "error", err)
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}
			return next(c)
		}
	}
}
