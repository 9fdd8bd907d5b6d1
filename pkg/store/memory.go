package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory document store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

// Get retrieves a document by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so callers cannot mutate stored state.
	out := doc
	if doc.Map != nil {
		out.Map = doc.Map.Clone()
	}
	return &out, nil
}

// Put stores a document, creating or replacing it.
func (s *MemoryStore) Put(ctx context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *doc
	if doc.Map != nil {
		stored.Map = doc.Map.Clone()
	}
	if prev, ok := s.docs[doc.ID]; ok {
		stored.CreatedAt = prev.CreatedAt
		stored.Version = prev.Version + 1
	} else {
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		if stored.Version == 0 {
			stored.Version = 1
		}
	}
	stored.UpdatedAt = now

	s.docs[doc.ID] = stored
	doc.Version = stored.Version
	doc.CreatedAt = stored.CreatedAt
	doc.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// List returns all document IDs and names, sorted by ID.
func (s *MemoryStore) List(ctx context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, Document{
			ID:        doc.ID,
			Name:      doc.Name,
			Version:   doc.Version,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
