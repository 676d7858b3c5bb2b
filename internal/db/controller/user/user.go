// Package user is the user directory: it finds or creates the local
// user record keyed by the external provider identity.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/coachly/coach-backend/internal/apperr"
	"github.com/coachly/coach-backend/internal/db/models"
	"github.com/coachly/coach-backend/internal/identity"
)

const providerQueryPattern = "provider_id = ?"

// FindOrCreate looks a user up by the identity's provider subject and
// creates the record on first sign-in. When the provider id already
// exists the stored record wins, even if the transmitted email, name or
// avatar differ: there is no update-on-login.
//
// The operation is idempotent under concurrency. The storage uniqueness
// constraint on provider_id is the sole correctness mechanism for
// concurrent first logins; an insert conflict means someone else just
// created the row, and it is re-read instead of failing.
func FindOrCreate(db *gorm.DB, ident *identity.Verified) (*models.User, error) {
	if db == nil {
		return nil, apperr.Internal("database connection is nil", false)
	}

	var existing models.User

	err := db.Where(providerQueryPattern, ident.ProviderID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("Failed to query user", false).WithCause(err)
	}

	return create(db, ident)
}

// create inserts the user record, recovering from a concurrent insert
// of the same provider id by re-reading the winning row.
func create(db *gorm.DB, ident *identity.Verified) (*models.User, error) {
	u := models.User{
		Email:      ident.Email,
		Name:       ident.Name,
		ProviderID: ident.ProviderID,
		AvatarURL:  ident.AvatarURL,
	}

	err := db.Create(&u).Error
	if err == nil {
		return &u, nil
	}

	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.Internal("Failed to create user", false).WithCause(err)
	}

	var winner models.User

	readErr := db.Where(providerQueryPattern, ident.ProviderID).First(&winner).Error

	switch {
	case readErr == nil:
		return &winner, nil
	case errors.Is(readErr, gorm.ErrRecordNotFound):
		// the duplicate was on email, not provider id
		return nil, apperr.Conflict("A user with this email already exists").WithCause(err)
	default:
		return nil, apperr.Internal("Failed to re-read user after insert conflict", false).WithCause(readErr)
	}
}
