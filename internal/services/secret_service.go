package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
)

type SecretService struct {
	secrets  repositories.SecretRepository
	profiles repositories.ProfileRepository
	friends  *FriendService
	logger   *slog.Logger
}

func NewSecretService(secrets repositories.SecretRepository, profiles repositories.ProfileRepository, friends *FriendService, logger *slog.Logger) *SecretService {
	return &SecretService{secrets: secrets, profiles: profiles, friends: friends, logger: logger}
}

// GetSecret returns the user's secret, or nil when none is set.
func (s *SecretService) GetSecret(ctx context.Context, userID string) (*models.SecretMessage, error) {
	ctx, span := tracer.Start(ctx, "SecretService.GetSecret")
	defer span.End()

	secret, err := s.secrets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, apperrors.Store("failed to load secret", err)
	}
	return secret, nil
}

// SaveSecret creates or replaces the user's secret. The empty message is legal.
func (s *SecretService) SaveSecret(ctx context.Context, userID, message string) (*models.SecretMessage, error) {
	ctx, span := tracer.Start(ctx, "SecretService.SaveSecret")
	defer span.End()

	secret, err := s.secrets.Upsert(ctx, userID, message)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Store("failed to save secret", err)
	}
	s.logger.DebugContext(ctx, "secret saved", "user_id", userID)
	return secret, nil
}

// GetFriendSecret returns targetID's secret if requesterID and targetID are
// friends. Asking for your own secret this way is forbidden.
func (s *SecretService) GetFriendSecret(ctx context.Context, requesterID, targetID string) (*models.SecretMessage, error) {
	ctx, span := tracer.Start(ctx, "SecretService.GetFriendSecret")
	defer span.End()

	ok, err := s.friends.AreFriends(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFriends
	}
	return s.GetSecret(ctx, targetID)
}

// GetFriendSecretByEmail resolves email to a profile and defers to GetFriendSecret.
func (s *SecretService) GetFriendSecretByEmail(ctx context.Context, requesterID, email string) (*models.SecretMessage, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("failed to look up email", err)
	}
	return s.GetFriendSecret(ctx, requesterID, profile.ID)
}

func (s *SecretService) DeleteSecrets(ctx context.Context, userID string) error {
	n, err := s.secrets.DeleteByUserID(ctx, userID)
	if err != nil {
		return apperrors.Store("failed to delete secrets", err)
	}
	s.logger.DebugContext(ctx, "secrets deleted", "user_id", userID, "count", n)
	return nil
}
