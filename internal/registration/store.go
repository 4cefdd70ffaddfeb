// internal/registration/store.go
package registration

import (
	"context"

	"business-registry/internal/models"
)

// DraftStore is the single source of truth for in-progress registration
// drafts. One draft exists per user; switching the active user switches the
// key, never merges.
type DraftStore interface {
	// Read returns the current draft, or the empty aggregate when none is
	// persisted.
	Read(ctx context.Context, userID string) (models.RegistrationData, error)
	// Update shallow-merges a partial aggregate into the draft, persists the
	// result and returns it.
	Update(ctx context.Context, userID string, patch models.RegistrationData) (models.RegistrationData, error)
	// Reset restores the empty aggregate and removes the persisted entry.
	Reset(ctx context.Context, userID string) error
}
