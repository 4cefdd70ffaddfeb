// internal/auth/store.go
package auth

import (
	"context"
	"errors"

	"business-registry/internal/models"
)

// ErrNotFound keeps storage-level misses consistent across user and session
// implementations. The service maps it to the proper credential error.
var ErrNotFound = errors.New("record not found")

// UserStore is the durable user table, keyed by email.
type UserStore interface {
	Save(ctx context.Context, rec models.UserRecord) error
	FindByEmail(ctx context.Context, email string) (models.UserRecord, error)
}

// SessionStore issues and resolves session tokens. A stored session is
// trusted as-is on load; expiry is enforced by the store's TTL.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Find(ctx context.Context, token string) (models.Session, error)
	Delete(ctx context.Context, token string) error
}
