package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/identity"
	"github.com/anonto42/secret-friends/backend/internal/repositories/memory"
	"github.com/anonto42/secret-friends/backend/internal/services"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"github.com/anonto42/secret-friends/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t *testing.T
	e *echo.Echo
}

func newServer(t *testing.T) *client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	ident := identity.NewService(store.Profiles(), nil, identity.NewTokenIssuer("router-test", time.Hour), logger)
	notifications := services.NewNotificationService(store.Notifications(), store.Profiles(), logger)
	friends := services.NewFriendService(store.FriendRequests(), store.Profiles(), notifications, events.NopPublisher{}, logger)
	secrets := services.NewSecretService(store.Secrets(), store.Profiles(), friends, logger)
	accounts := services.NewAccountService(ident, secrets, friends, notifications, events.NopPublisher{}, logger)

	e := echo.New()
	e.Validator = validators.NewValidator()
	SetupRoutes(e, Dependencies{
		ServiceName:   "secret-friends-test",
		Identity:      ident,
		Secrets:       secrets,
		Friends:       friends,
		Notifications: notifications,
		Accounts:      accounts,
		Logger:        logger,
	})
	return &client{t: t, e: e}
}

func (c *client) do(method, path, token, body string) (int, map[string]any) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

// signup returns the session token and user id.
func (c *client) signup(email string) (string, string) {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/api/v1/auth/signup", "", `{"email":"`+email+`","password":"correct horse"}`)
	require.Equal(c.t, http.StatusCreated, status, body)
	data := body["data"].(map[string]any)
	return data["token"].(string), data["profile"].(map[string]any)["id"].(string)
}

func TestRoutes_FriendshipGatesSecrets(t *testing.T) {
	c := newServer(t)
	aliceToken, aliceID := c.signup("alice@example.com")
	bobToken, _ := c.signup("bob@example.com")

	status, _ := c.do(http.MethodPut, "/api/v1/secret", aliceToken, `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, status)

	status, body := c.do(http.MethodGet, "/api/v1/friends/"+aliceID+"/secret", bobToken, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "403: Forbidden - Not friends", body["message"])

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests", aliceToken, `{"email":"bob@example.com"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = c.do(http.MethodGet, "/api/v1/friends/requests/pending", bobToken, "")
	require.Equal(t, http.StatusOK, status)
	pending := body["data"].([]any)
	require.Len(t, pending, 1)
	requestID := pending[0].(map[string]any)["id"].(string)
	assert.Equal(t, "alice@example.com", pending[0].(map[string]any)["from_user_email"])

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests/"+requestID+"/accept", aliceToken, "")
	assert.Equal(t, http.StatusForbidden, status, "the sender cannot accept")

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests/"+requestID+"/accept", bobToken, "")
	require.Equal(t, http.StatusOK, status)

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests/"+requestID+"/reject", bobToken, "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = c.do(http.MethodGet, "/api/v1/friends/"+aliceID+"/secret", bobToken, "")
	require.Equal(t, http.StatusOK, status)
	secret := body["data"].(map[string]any)["secret"].(map[string]any)
	assert.Equal(t, "hello", secret["message"])

	status, body = c.do(http.MethodGet, "/api/v1/friends/secret?email=alice@example.com", bobToken, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body["data"].(map[string]any)["secret"].(map[string]any)["message"])

	status, body = c.do(http.MethodGet, "/api/v1/friends", bobToken, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"alice@example.com"}, body["data"])

	status, body = c.do(http.MethodGet, "/api/v1/notifications/unread-count", aliceToken, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["data"].(map[string]any)["unreadCount"])
}

func TestRoutes_SecretAbsentIsNull(t *testing.T) {
	c := newServer(t)
	token, _ := c.signup("alice@example.com")

	status, body := c.do(http.MethodGet, "/api/v1/secret", token, "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Contains(t, data, "secret")
	assert.Nil(t, data["secret"])
}

func TestRoutes_SelfRequestAndUnknownEmail(t *testing.T) {
	c := newServer(t)
	token, _ := c.signup("alice@example.com")

	status, _ := c.do(http.MethodPost, "/api/v1/friends/requests", token, `{"email":"alice@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests", token, `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests", token, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_Profile(t *testing.T) {
	c := newServer(t)
	token, id := c.signup("alice@example.com")

	status, body := c.do(http.MethodGet, "/api/v1/profile", token, "")
	require.Equal(t, http.StatusOK, status)
	profile := body["data"].(map[string]any)
	assert.Equal(t, id, profile["id"])
	assert.Equal(t, "alice@example.com", profile["email"])
	assert.NotContains(t, profile, "PasswordHash")
}

func TestRoutes_MalformedIDs(t *testing.T) {
	c := newServer(t)
	token, _ := c.signup("alice@example.com")

	status, _ := c.do(http.MethodPost, "/api/v1/friends/requests/abc/accept", token, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = c.do(http.MethodGet, "/api/v1/friends/abc/secret", token, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = c.do(http.MethodPut, "/api/v1/notifications/abc/read", token, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRoutes_RequireToken(t *testing.T) {
	c := newServer(t)

	status, _ := c.do(http.MethodGet, "/api/v1/secret", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = c.do(http.MethodGet, "/api/v1/friends", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := c.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "secret-friends-test", body["service"])
}

func TestRoutes_DeleteAccount(t *testing.T) {
	c := newServer(t)
	aliceToken, _ := c.signup("alice@example.com")
	bobToken, _ := c.signup("bob@example.com")

	status, _ := c.do(http.MethodPut, "/api/v1/secret", aliceToken, `{"message":"bye"}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = c.do(http.MethodPost, "/api/v1/friends/requests", aliceToken, `{"email":"bob@example.com"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := c.do(http.MethodDelete, "/api/v1/account", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["error"])

	status, body = c.do(http.MethodDelete, "/api/v1/account", aliceToken, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Account deleted successfully", body["message"])

	// the token dies with the profile
	status, _ = c.do(http.MethodGet, "/api/v1/secret", aliceToken, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = c.do(http.MethodDelete, "/api/v1/account", aliceToken, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = c.do(http.MethodGet, "/api/v1/friends/requests/pending", bobToken, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	// the email is free again
	c.signup("alice@example.com")
}
