// internal/application/store.go
package application

import (
	"context"

	"business-registry/internal/models"
)

// Store holds one user's submitted applications, newest first. Replace keeps
// the record's position so an optimistic entry is swapped in place when the
// gateway confirms it.
type Store interface {
	// List returns the user's applications newest first; status "" or "All"
	// disables the filter.
	List(ctx context.Context, userID, status string) ([]models.Application, error)
	// Insert adds a record at the head of the collection.
	Insert(ctx context.Context, app models.Application) error
	// Replace swaps the record with oldID for app in the same position.
	Replace(ctx context.Context, userID, oldID string, app models.Application) error
	// Remove deletes the record entirely.
	Remove(ctx context.Context, userID, id string) error
}
