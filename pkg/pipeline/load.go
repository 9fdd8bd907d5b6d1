package pipeline

import (
	"context"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/store"
)

// =============================================================================
// Loading
// =============================================================================

// LoadFile reads and validates a mind map from a JSON file.
func LoadFile(path string) (*mindmap.Mindmap, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	m, err := mindmap.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMindmap, err, "load %s", path)
	}
	return m, nil
}

// LoadBytes parses and validates a mind map from JSON bytes, typically an
// API request body.
func LoadBytes(data []byte) (*mindmap.Mindmap, error) {
	m, err := mindmap.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMindmap, err, "parse mind map")
	}
	return m, nil
}

// LoadDocument fetches a stored document's mind map.
func LoadDocument(ctx context.Context, s store.Store, id string) (*store.Document, error) {
	if err := errors.ValidateDocumentID(id); err != nil {
		return nil, err
	}
	doc, err := s.Get(ctx, id)
	if err == store.ErrNotFound {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load document %s", id)
	}
	if doc.Map == nil {
		return nil, errors.New(errors.ErrCodeInvalidMindmap, "document %s has no map", id)
	}
	return doc, nil
}
