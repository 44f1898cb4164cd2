// Package events publishes domain events about friendships and accounts.
package events

import (
	"context"
	"time"
)

const (
	FriendRequestSent     = "friend.request.sent"
	FriendRequestAccepted = "friend.request.accepted"
	FriendRequestRejected = "friend.request.rejected"
	AccountDeleted        = "account.deleted"
)

// Event is the JSON payload written to the bus.
type Event struct {
	Type       string            `json:"type"`
	ActorID    string            `json:"actor_id"`
	SubjectID  string            `json:"subject_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func New(eventType, actorID, subjectID string) Event {
	return Event{
		Type:       eventType,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
	}
}

//go:generate mockgen -destination=../../internal/mocks/mock_publisher.go -package=mocks github.com/anonto42/secret-friends/backend/pkg/events Publisher

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when NATS_URL is not set.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
