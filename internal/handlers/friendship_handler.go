package handlers

import (
	"net/http"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friends *services.FriendService
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friends *services.FriendService) *FriendshipHandler {
	return &FriendshipHandler{friends: friends}
}

// RegisterFriendshipRoutes registers friendship-related routes. Extra
// middleware, such as a rate limiter, wraps only request creation.
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group, sendMiddleware ...echo.MiddlewareFunc) {
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/requests/pending", h.GetPendingFriendRequests)
	g.POST("/friends/requests", h.SendFriendRequest, sendMiddleware...)
	g.POST("/friends/requests/:id/accept", h.AcceptFriendRequest)
	g.POST("/friends/requests/:id/reject", h.RejectFriendRequest)
	g.GET("/friends/:id/status", h.GetFriendshipStatus)
}

// SendFriendRequest sends a request to the user owning the given email
func (h *FriendshipHandler) SendFriendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateFriendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.friends.SendRequest(c.Request().Context(), userID, req.Email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": created})
}

// GetPendingFriendRequests lists requests waiting for the caller's answer
func (h *FriendshipHandler) GetPendingFriendRequests(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	pending, err := h.friends.ListIncomingRequests(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": pending})
}

func (h *FriendshipHandler) AcceptFriendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	req, err := h.friends.AcceptRequest(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": req})
}

func (h *FriendshipHandler) RejectFriendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	req, err := h.friends.RejectRequest(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": req})
}

// GetFriends returns the emails of the caller's friends
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	emails, err := h.friends.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": emails})
}

func (h *FriendshipHandler) GetFriendshipStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	status, err := h.friends.GetFriendshipStatus(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": status})
}
