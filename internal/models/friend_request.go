package models

import "time"

// FriendRequestStatus is the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// CanTransitionTo reports whether s may move to next. Only pending requests
// move, and only to accepted or rejected; both are terminal.
func (s FriendRequestStatus) CanTransitionTo(next FriendRequestStatus) bool {
	if s != FriendRequestStatusPending {
		return false
	}
	return next == FriendRequestStatusAccepted || next == FriendRequestStatusRejected
}

func (s FriendRequestStatus) IsTerminal() bool {
	return s == FriendRequestStatusAccepted || s == FriendRequestStatusRejected
}

// FriendRequest is a directed edge from → to. A friendship between A and B
// exists iff some edge between them, in either direction, is accepted.
type FriendRequest struct {
	ID         string              `json:"id" gorm:"type:uuid;primaryKey"`
	FromUserID string              `json:"from_user_id" gorm:"type:uuid;index;not null"`
	ToUserID   string              `json:"to_user_id" gorm:"type:uuid;index;not null"`
	Status     FriendRequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time           `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func (FriendRequest) TableName() string { return "friend_requests" }

// Involves reports whether userID is either endpoint.
func (r *FriendRequest) Involves(userID string) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Other returns the endpoint that is not userID.
func (r *FriendRequest) Other(userID string) string {
	if r.FromUserID == userID {
		return r.ToUserID
	}
	return r.FromUserID
}

// FriendRequestWithEmail is a request enriched with both endpoints' emails.
type FriendRequestWithEmail struct {
	FriendRequest
	FromUserEmail string `json:"from_user_email,omitempty"`
	ToUserEmail   string `json:"to_user_email,omitempty"`
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	Email string `json:"email" validate:"required,email"`
}
