package models

import "time"

// SecretMessage is the single free-text message a user may keep. At most one
// exists per user; a missing record means "no secret set".
type SecretMessage struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey" bson:"_id"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null" bson:"user_id"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (SecretMessage) TableName() string { return "secrets" }

// SaveSecretRequest carries no length rule: an empty message is a legal value.
type SaveSecretRequest struct {
	Message string `json:"message"`
}
