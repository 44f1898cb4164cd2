package models

import "time"

const (
	NotificationTypeFriendRequest  = "friend_request"
	NotificationTypeFriendAccepted = "friend_accepted"
)

// Notification represents an in-app notification about friend activity
type Notification struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"` // friend_request, friend_accepted
	ActorID     string    `json:"actor_id" gorm:"type:uuid;index"`
	RecipientID string    `json:"recipient_id" gorm:"type:uuid;index"`
	TargetID    string    `json:"target_id"` // friend request ID
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }
