package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/secret-friends/backend/internal/middleware"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// AccountDeleter is implemented by *services.AccountService.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID, authToken string) (string, error)
}

// AccountHandler serves the account deletion endpoint. It reads the bearer
// token itself so a missing or bad token yields the endpoint's own 401 body.
type AccountHandler struct {
	accounts AccountDeleter
}

func NewAccountHandler(accounts AccountDeleter) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) RegisterAccountRoutes(g *echo.Group, mw ...echo.MiddlewareFunc) {
	g.DELETE("/account", h.DeleteAccount, mw...)
}

func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	// The account is always the token's subject; no client-supplied id is read.
	message, err := h.accounts.DeleteAccount(c.Request().Context(), "", token)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeUnauthorized) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete user account"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}
