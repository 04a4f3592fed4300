// Package memory provides an in-memory session store, mainly for
// tests and short-lived tooling.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/session"
)

// Store implements ports.SessionStore in process memory. Documents
// are stored by their serialized form, so callers never share mutable
// structures with the store.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Save persists the document under the given id.
func (s *Store) Save(ctx context.Context, id string, doc *session.Document) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	data, err := doc.EncodeJSON()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = data
	return nil
}

// Load retrieves the document for the given id.
func (s *Store) Load(ctx context.Context, id string) (*session.Document, error) {
	s.mu.RLock()
	data, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session.Import(data)
}

// Delete removes the document for the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// List returns all stored session ids in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
