package handlers

import (
	"net/http"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/services"
	"github.com/labstack/echo/v4"
)

type SecretHandler struct {
	secrets *services.SecretService
}

func NewSecretHandler(secrets *services.SecretService) *SecretHandler {
	return &SecretHandler{secrets: secrets}
}

func (h *SecretHandler) RegisterSecretRoutes(g *echo.Group) {
	g.GET("/secret", h.GetSecret)
	g.PUT("/secret", h.SaveSecret)
	g.GET("/friends/:id/secret", h.GetFriendSecret)
	g.GET("/friends/secret", h.GetFriendSecretByEmail)
}

// GetSecret returns the caller's secret; "secret" is null when none is set.
func (h *SecretHandler) GetSecret(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	secret, err := h.secrets.GetSecret(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"secret": secret}})
}

func (h *SecretHandler) SaveSecret(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.SaveSecretRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	secret, err := h.secrets.SaveSecret(c.Request().Context(), userID, req.Message)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"secret": secret}})
}

func (h *SecretHandler) GetFriendSecret(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	secret, err := h.secrets.GetFriendSecret(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"secret": secret}})
}

func (h *SecretHandler) GetFriendSecretByEmail(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	secret, err := h.secrets.GetFriendSecretByEmail(c.Request().Context(), userID, email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"secret": secret}})
}
