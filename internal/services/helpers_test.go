package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/internal/repositories/memory"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store         *memory.Store
	notifications *NotificationService
	friends       *FriendService
	secrets       *SecretService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type envOption func(*envConfig)

type envConfig struct {
	publisher events.Publisher
	secrets   repositories.SecretRepository
	requests  repositories.FriendRequestRepository
}

func withPublisher(p events.Publisher) envOption {
	return func(c *envConfig) { c.publisher = p }
}

func withSecretRepo(r repositories.SecretRepository) envOption {
	return func(c *envConfig) { c.secrets = r }
}

func withRequestRepo(r repositories.FriendRequestRepository) envOption {
	return func(c *envConfig) { c.requests = r }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	store := memory.NewStore()
	cfg := &envConfig{
		publisher: events.NopPublisher{},
		secrets:   store.Secrets(),
		requests:  store.FriendRequests(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := discardLogger()
	notifications := NewNotificationService(store.Notifications(), store.Profiles(), logger)
	friends := NewFriendService(cfg.requests, store.Profiles(), notifications, cfg.publisher, logger)
	secrets := NewSecretService(cfg.secrets, store.Profiles(), friends, logger)

	return &testEnv{store: store, notifications: notifications, friends: friends, secrets: secrets}
}

func (e *testEnv) user(t *testing.T, email string) *models.Profile {
	t.Helper()
	p := &models.Profile{Email: email}
	require.NoError(t, e.store.Profiles().Create(context.Background(), p))
	return p
}

// befriend sends a request from a to b and has b accept it.
func (e *testEnv) befriend(t *testing.T, a, b *models.Profile) {
	t.Helper()
	ctx := context.Background()
	req, err := e.friends.SendRequest(ctx, a.ID, b.Email)
	require.NoError(t, err)
	_, err = e.friends.AcceptRequest(ctx, b.ID, req.ID)
	require.NoError(t, err)
}
