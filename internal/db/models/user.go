// Package models holds the persistent entities of the service.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a local user account provisioned on first sign-in
// with an external identity provider. Records are created exactly once
// per provider subject and are never mutated on later logins.
type User struct {
	// ID is the opaque unique identifier, generated at creation.
	ID string `gorm:"primaryKey;size:36"`
	// Email is the user's email address.
	Email string `gorm:"size:255;not null;uniqueIndex"`
	// Name is the display name, nil when the provider omitted it.
	Name *string `gorm:"size:255"`
	// ProviderID is the external identity's stable subject identifier.
	ProviderID string `gorm:"size:255;not null;uniqueIndex"`
	// AvatarURL is the profile picture URL, nil when omitted.
	AvatarURL *string
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}

// BeforeCreate assigns a fresh UUID when none was set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	return nil
}
