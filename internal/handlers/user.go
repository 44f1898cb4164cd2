package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// ProfileReader loads a profile by id.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	profiles ProfileReader
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profiles ProfileReader) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile) // Get own profile
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}
