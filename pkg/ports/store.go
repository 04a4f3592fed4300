package ports

import (
	"context"

	"github.com/machina-fsm/machina/pkg/session"
)

// SessionStore defines the interface for persisting session
// documents. This allows "export now, resume later" workflows without
// binding the core to a storage backend.
type SessionStore interface {
	// Save persists the document under the given id.
	Save(ctx context.Context, id string, doc *session.Document) error

	// Load retrieves the document for the given id.
	// Returns domain.ErrSessionNotFound if it does not exist.
	Load(ctx context.Context, id string) (*session.Document, error)

	// Delete removes the document for the given id.
	Delete(ctx context.Context, id string) error

	// List returns all stored session ids.
	List(ctx context.Context) ([]string, error)
}
