package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (s *SecretMessage) BeforeCreate(_ *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (r *FriendRequest) BeforeCreate(_ *gorm.DB) error {
	ensureID(&r.ID)
	if r.Status == "" {
		r.Status = FriendRequestStatusPending
	}
	return nil
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
