package services

import (
	"context"
	"log/slog"

	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"go.opentelemetry.io/otel/attribute"
)

const AccountDeletedMessage = "Account deleted successfully"

// AccountService deletes an account and everything it owns.
type AccountService struct {
	identity      IdentityProvider
	secrets       *SecretService
	friends       *FriendService
	notifications *NotificationService
	publisher     events.Publisher
	logger        *slog.Logger
}

func NewAccountService(
	identity IdentityProvider,
	secrets *SecretService,
	friends *FriendService,
	notifications *NotificationService,
	publisher events.Publisher,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		identity:      identity,
		secrets:       secrets,
		friends:       friends,
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
	}
}

// DeleteAccount verifies authToken and removes, in order, the caller's
// secrets, friend requests, notifications and identity. The account deleted is
// always the token's subject; a non-empty userID that names someone else is
// rejected before anything is touched.
//
// Deletion is not transactional and stops at the first failure. A failed
// secrets step leaves friend requests and notifications untouched; if the
// identity step fails the records already removed stay removed. Every step
// treats missing records as success, so the call can be retried.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, authToken string) (string, error) {
	ctx, span := tracer.Start(ctx, "AccountService.DeleteAccount")
	defer span.End()

	actorID, err := s.identity.VerifyToken(ctx, authToken)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeUnauthorized) {
			return "", err
		}
		return "", apperrors.Wrap(apperrors.CodeUnauthorized, "Unauthorized", err)
	}
	if userID != "" && userID != actorID {
		s.logger.WarnContext(ctx, "account deletion for another user refused", "actor_id", actorID)
		return "", apperrors.Unauthorized("Unauthorized")
	}
	span.SetAttributes(attribute.String("user.id", actorID))

	steps := []struct {
		name string
		run  func(context.Context, string) error
	}{
		{"secrets", s.secrets.DeleteSecrets},
		{"friend_requests", s.friends.DeleteEdges},
		{"notifications", s.notifications.DeleteForUser},
	}
	for _, step := range steps {
		if err := step.run(ctx, actorID); err != nil {
			span.RecordError(err)
			s.logger.ErrorContext(ctx, "account deletion failed", "user_id", actorID, "step", step.name, "error", err)
			return "", err
		}
	}

	if err := s.identity.DeleteIdentity(ctx, actorID); err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "account deletion failed", "user_id", actorID, "step", "identity", "error", err)
		if apperrors.CodeOf(err) == apperrors.CodeProvider {
			return "", err
		}
		return "", apperrors.Provider("failed to delete identity", err)
	}

	if err := s.publisher.Publish(ctx, events.New(events.AccountDeleted, actorID, actorID)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event", "type", events.AccountDeleted, "error", err)
	}
	s.logger.InfoContext(ctx, "account deleted", "user_id", actorID)
	return AccountDeletedMessage, nil
}
