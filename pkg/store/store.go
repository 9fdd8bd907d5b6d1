// Package store provides persistence for mind map documents.
//
// This package defines the storage interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// Documents wrap a mind map with identity and timestamps. The layout engine
// never touches the store; the pipeline loads a document, lays out its map,
// and writes the positioned map back.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrConflict is returned when a Put races with a concurrent update.
	ErrConflict = errors.New("document version conflict")
)

// Document is a stored mind map with identity and timestamps.
type Document struct {
	ID        string           `json:"id" bson:"_id"`
	Name      string           `json:"name,omitempty" bson:"name,omitempty"`
	Map       *mindmap.Mindmap `json:"map" bson:"map"`
	Version   int64            `json:"version" bson:"version"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for document storage backends.
type Store interface {
	// Get retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, creating or replacing it. Timestamps and the
	// version counter are maintained by the implementation.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all document IDs and names, without map payloads.
	List(ctx context.Context) ([]Document, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID generates a fresh document identifier.
func NewID() string {
	return uuid.NewString()
}

// New creates a document around a mind map with a generated ID.
func New(name string, m *mindmap.Mindmap) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        NewID(),
		Name:      name,
		Map:       m,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
