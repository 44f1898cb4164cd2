package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type FriendService struct {
	requests      repositories.FriendRequestRepository
	profiles      repositories.ProfileRepository
	notifications *NotificationService
	publisher     events.Publisher
	logger        *slog.Logger
	now           func() time.Time
}

func NewFriendService(
	requests repositories.FriendRequestRepository,
	profiles repositories.ProfileRepository,
	notifications *NotificationService,
	publisher events.Publisher,
	logger *slog.Logger,
) *FriendService {
	return &FriendService{
		requests:      requests,
		profiles:      profiles,
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SendRequest creates a pending request from fromID to the profile owning
// toEmail. At most one pending or accepted edge may join a pair; a rejected
// edge does not block a new request.
func (s *FriendService) SendRequest(ctx context.Context, fromID, toEmail string) (*models.FriendRequest, error) {
	ctx, span := tracer.Start(ctx, "FriendService.SendRequest")
	defer span.End()

	target, err := s.profiles.GetByEmail(ctx, toEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("failed to look up email", err)
	}
	// email equality is a weak proxy, compare ids
	if target.ID == fromID {
		return nil, apperrors.ErrSelfFriendRequest
	}

	existing, err := s.requests.FindOpenBetween(ctx, fromID, target.ID)
	switch {
	case err == nil && existing.Status == models.FriendRequestStatusAccepted:
		return nil, apperrors.ErrAlreadyFriends
	case err == nil:
		return nil, apperrors.ErrRequestAlreadyPending
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, apperrors.Store("failed to check existing requests", err)
	}

	now := s.now()
	req := &models.FriendRequest{
		FromUserID: fromID,
		ToUserID:   target.ID,
		Status:     models.FriendRequestStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		// Lost a race with a concurrent request for the same pair.
		if errors.Is(err, repositories.ErrConflict) {
			return nil, apperrors.ErrRequestAlreadyPending
		}
		span.RecordError(err)
		return nil, apperrors.Store("failed to create friend request", err)
	}
	span.SetAttributes(attribute.String("friend_request.id", req.ID))

	s.notifications.Notify(ctx, &models.Notification{
		Type:        models.NotificationTypeFriendRequest,
		ActorID:     fromID,
		RecipientID: target.ID,
		TargetID:    req.ID,
		Message:     "sent you a friend request",
	})
	s.publish(ctx, events.New(events.FriendRequestSent, fromID, req.ID))

	return req, nil
}

// ListIncomingRequests returns pending requests addressed to userID, oldest
// first, with both endpoints' emails filled in.
func (s *FriendService) ListIncomingRequests(ctx context.Context, userID string) ([]models.FriendRequestWithEmail, error) {
	ctx, span := tracer.Start(ctx, "FriendService.ListIncomingRequests")
	defer span.End()

	pending, err := s.requests.ListIncomingPending(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("failed to list friend requests", err)
	}

	ids := make([]string, 0, len(pending)+1)
	ids = append(ids, userID)
	for _, r := range pending {
		ids = append(ids, r.FromUserID)
	}
	profiles, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Store("failed to load profiles", err)
	}

	out := make([]models.FriendRequestWithEmail, 0, len(pending))
	for _, r := range pending {
		item := models.FriendRequestWithEmail{FriendRequest: r}
		if p, ok := profiles[r.FromUserID]; ok {
			item.FromUserEmail = p.Email
		}
		if p, ok := profiles[r.ToUserID]; ok {
			item.ToUserEmail = p.Email
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *FriendService) AcceptRequest(ctx context.Context, actorID, requestID string) (*models.FriendRequest, error) {
	ctx, span := tracer.Start(ctx, "FriendService.AcceptRequest")
	defer span.End()

	req, err := s.respond(ctx, span, actorID, requestID, models.FriendRequestStatusAccepted)
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, &models.Notification{
		Type:        models.NotificationTypeFriendAccepted,
		ActorID:     actorID,
		RecipientID: req.FromUserID,
		TargetID:    req.ID,
		Message:     "accepted your friend request",
	})
	s.publish(ctx, events.New(events.FriendRequestAccepted, actorID, req.ID))
	return req, nil
}

func (s *FriendService) RejectRequest(ctx context.Context, actorID, requestID string) (*models.FriendRequest, error) {
	ctx, span := tracer.Start(ctx, "FriendService.RejectRequest")
	defer span.End()

	req, err := s.respond(ctx, span, actorID, requestID, models.FriendRequestStatusRejected)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.FriendRequestRejected, actorID, req.ID))
	return req, nil
}

// respond moves a pending request addressed to actorID into next. The store
// update is conditional on the status still being pending, so of two racing
// answers only one wins and the other gets a conflict.
func (s *FriendService) respond(ctx context.Context, span trace.Span, actorID, requestID string, next models.FriendRequestStatus) (*models.FriendRequest, error) {
	span.SetAttributes(attribute.String("friend_request.id", requestID), attribute.String("friend_request.next", string(next)))

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFriendRequestNotFound
		}
		return nil, apperrors.Store("failed to load friend request", err)
	}
	if req.ToUserID != actorID {
		return nil, apperrors.ErrNotRequestRecipient
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrRequestNotPending
	}

	now := s.now()
	changed, err := s.requests.TransitionStatus(ctx, req.ID, models.FriendRequestStatusPending, next, now)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.Store("failed to update friend request", err)
	}
	if !changed {
		return nil, apperrors.ErrRequestNotPending
	}

	req.Status = next
	req.UpdatedAt = now
	return req, nil
}

// ListFriends returns the emails of everyone userID shares an accepted edge
// with, deduplicated and sorted.
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "FriendService.ListFriends")
	defer span.End()

	accepted, err := s.requests.ListAccepted(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("failed to list friends", err)
	}

	ids := make([]string, 0, len(accepted))
	for i := range accepted {
		ids = append(ids, accepted[i].Other(userID))
	}
	profiles, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Store("failed to load profiles", err)
	}

	seen := make(map[string]struct{}, len(profiles))
	emails := make([]string, 0, len(profiles))
	for _, id := range ids {
		p, ok := profiles[id]
		if !ok {
			continue
		}
		if _, dup := seen[p.Email]; dup {
			continue
		}
		seen[p.Email] = struct{}{}
		emails = append(emails, p.Email)
	}
	sort.Strings(emails)
	return emails, nil
}

// AreFriends is symmetric. Nobody is their own friend.
func (s *FriendService) AreFriends(ctx context.Context, a, b string) (bool, error) {
	if a == "" || b == "" || a == b {
		return false, nil
	}
	ok, err := s.requests.ExistsAccepted(ctx, a, b)
	if err != nil {
		return false, apperrors.Store("failed to check friendship", err)
	}
	return ok, nil
}

// FriendshipStatus describes how userID relates to otherID.
type FriendshipStatus struct {
	Status    string `json:"status"` // self, none, pending_sent, pending_received, friends
	RequestID string `json:"request_id,omitempty"`
}

func (s *FriendService) GetFriendshipStatus(ctx context.Context, userID, otherID string) (*FriendshipStatus, error) {
	if userID == otherID {
		return &FriendshipStatus{Status: "self"}, nil
	}
	req, err := s.requests.FindOpenBetween(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &FriendshipStatus{Status: "none"}, nil
		}
		return nil, apperrors.Store("failed to load friendship status", err)
	}

	status := &FriendshipStatus{RequestID: req.ID}
	switch {
	case req.Status == models.FriendRequestStatusAccepted:
		status.Status = "friends"
	case req.FromUserID == userID:
		status.Status = "pending_sent"
	default:
		status.Status = "pending_received"
	}
	return status, nil
}

// DeleteEdges removes every request userID sent or received.
func (s *FriendService) DeleteEdges(ctx context.Context, userID string) error {
	n, err := s.requests.DeleteByUser(ctx, userID)
	if err != nil {
		return apperrors.Store("failed to delete friend requests", err)
	}
	s.logger.DebugContext(ctx, "friend requests deleted", "user_id", userID, "count", n)
	return nil
}

func (s *FriendService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event", "type", event.Type, "error", err)
	}
}
