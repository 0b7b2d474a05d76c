package session

import (
	"context"

	"salvatore/models"
)

// Store holds per-conversation state keyed by an opaque session identifier.
//
// Concurrent requests for the same identifier race on read-modify-write;
// last write wins. Backends only guard their own internal structures.
type Store interface {
	// GetOrCreate returns the session for id, creating a fresh one at the
	// greeting step if none exists.
	GetOrCreate(ctx context.Context, id string) (*models.Session, error)
	// Save persists the session.
	Save(ctx context.Context, sess *models.Session) error
	// Reset reinitializes the session to the greeting step, discarding the
	// accumulated booking fields and history but keeping the identifier.
	Reset(ctx context.Context, id string) (*models.Session, error)
}
