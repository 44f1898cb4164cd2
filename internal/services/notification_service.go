package services

import (
	"context"
	"log/slog"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 50
)

type NotificationService struct {
	notifications repositories.NotificationRepository
	profiles      repositories.ProfileRepository
	logger        *slog.Logger
}

func NewNotificationService(notifications repositories.NotificationRepository, profiles repositories.ProfileRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, profiles: profiles, logger: logger}
}

// Notify stores n. Failures are logged and swallowed; a lost notification
// never fails the action that caused it.
func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.WarnContext(ctx, "failed to create notification",
			"type", n.Type, "recipient_id", n.RecipientID, "error", err)
	}
}

// EnrichedNotification includes the actor's email
type EnrichedNotification struct {
	models.Notification
	ActorEmail string `json:"actor_email,omitempty"`
}

// NotificationPage is one page of a recipient's notifications.
type NotificationPage struct {
	Notifications []EnrichedNotification `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

func (s *NotificationService) List(ctx context.Context, recipientID string, page, limit int) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	items, total, err := s.notifications.ListByRecipient(ctx, recipientID, page, limit)
	if err != nil {
		return nil, apperrors.Store("failed to list notifications", err)
	}

	return &NotificationPage{Notifications: s.enrich(ctx, items), Total: total, Page: page, Limit: limit}, nil
}

// enrich fills in actor emails. A failed lookup leaves them blank.
func (s *NotificationService) enrich(ctx context.Context, items []models.Notification) []EnrichedNotification {
	out := make([]EnrichedNotification, len(items))
	ids := make([]string, 0, len(items))
	for i, n := range items {
		out[i] = EnrichedNotification{Notification: n}
		ids = append(ids, n.ActorID)
	}

	actors, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load notification actors", "error", err)
		return out
	}
	for i := range out {
		if p, ok := actors[out[i].ActorID]; ok {
			out[i].ActorEmail = p.Email
		}
	}
	return out
}

func (s *NotificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	n, err := s.notifications.UnreadCount(ctx, recipientID)
	if err != nil {
		return 0, apperrors.Store("failed to count notifications", err)
	}
	return n, nil
}

// MarkAsRead only touches notifications addressed to recipientID.
func (s *NotificationService) MarkAsRead(ctx context.Context, recipientID, notificationID string) error {
	ok, err := s.notifications.MarkAsRead(ctx, recipientID, notificationID)
	if err != nil {
		return apperrors.Store("failed to mark notification as read", err)
	}
	if !ok {
		return apperrors.NotFound("notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipientID string) error {
	if err := s.notifications.MarkAllAsRead(ctx, recipientID); err != nil {
		return apperrors.Store("failed to mark notifications as read", err)
	}
	return nil
}

// DeleteForUser removes notifications the user received or caused.
func (s *NotificationService) DeleteForUser(ctx context.Context, userID string) error {
	n, err := s.notifications.DeleteByUser(ctx, userID)
	if err != nil {
		return apperrors.Store("failed to delete notifications", err)
	}
	s.logger.DebugContext(ctx, "notifications deleted", "user_id", userID, "count", n)
	return nil
}
