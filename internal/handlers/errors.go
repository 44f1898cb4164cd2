package handlers

import (
	"net/http"

	"github.com/anonto42/secret-friends/backend/internal/middleware"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps a service error onto an echo.HTTPError. Causes stay in
// the server log; clients only see the AppError message.
func toHTTPError(err error) error {
	code := apperrors.CodeOf(err)
	return echo.NewHTTPError(apperrors.HTTPStatus(code), apperrors.MessageOf(err)).SetInternal(err)
}

// currentUserID returns the id the auth middleware stored.
func currentUserID(c echo.Context) (string, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return id, nil
}

// bindAndValidate binds the request body into req and runs e.Validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
