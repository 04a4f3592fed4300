// Package file provides a filesystem-backed session store.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/session"
)

// Store implements ports.SessionStore on the local filesystem,
// keeping each session as one JSON document in a configured
// directory.
type Store struct {
	BasePath string
}

// NewStore creates a Store rooted at basePath.
// If basePath is empty, it defaults to ".machina/sessions".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".machina", "sessions")
	}
	return &Store{BasePath: basePath}
}

// Save persists the session document as a JSON file.
func (s *Store) Save(ctx context.Context, id string, doc *session.Document) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	data, err := doc.EncodeJSON()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load retrieves and parses the session document for the given id.
func (s *Store) Load(ctx context.Context, id string) (*session.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("session id cannot be empty")
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	return session.Import(data)
}

// Delete removes the session file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// List returns all stored session ids.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			ids = append(ids, name[:len(name)-len(".json")])
		}
	}
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+".json")
}
