package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindweave/mindweave/pkg/cache"
	apperrors "github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/pipeline"
	"github.com/mindweave/mindweave/pkg/store"
)

// =============================================================================
// Layout and Render
// =============================================================================

type layoutRequest struct {
	Map      json.RawMessage `json:"map"`
	Strategy string          `json:"strategy,omitempty"`
	Width    float64         `json:"width,omitempty"`
	Height   float64         `json:"height,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`
}

type layoutResponse struct {
	RootID  string         `json:"root_id"`
	Nodes   []mindmap.Node `json:"nodes"`
	Bounds  layout.Bounds  `json:"bounds"`
	MapHash string         `json:"map_hash"`
	Cached  bool           `json:"cached"`
}

type renderRequest struct {
	layoutRequest
	Format    string  `json:"format,omitempty"`
	Theme     string  `json:"theme,omitempty"`
	HideEdges bool    `json:"hide_edges,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
}

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	m, err := pipeline.LoadBytes(req.Map)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	opts := pipeline.Options{
		Strategy: req.Strategy,
		Width:    req.Width,
		Height:   req.Height,
		Refresh:  req.Refresh,
	}
	res, cached, err := s.runner.ComputeLayoutWithCacheInfo(ctx, m, "", opts)
	if err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "layout failed"))
		return
	}

	var mapHash string
	if data, merr := mindmap.Marshal(m); merr == nil {
		mapHash = cache.Hash(data)
	}

	respondJSON(w, http.StatusOK, layoutResponse{
		RootID:  res.RootID,
		Nodes:   res.Nodes,
		Bounds:  res.Bounds,
		MapHash: mapHash,
		Cached:  cached,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Format == "" {
		req.Format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(req.Format); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid format"))
		return
	}

	m, err := pipeline.LoadBytes(req.Map)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	opts := pipeline.Options{
		Strategy:  req.Strategy,
		Width:     req.Width,
		Height:    req.Height,
		Formats:   []string{req.Format},
		Theme:     req.Theme,
		HideEdges: req.HideEdges,
		Detailed:  req.Detailed,
		Scale:     req.Scale,
		Refresh:   req.Refresh,
	}
	result, err := s.runner.Execute(ctx, m, opts)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[req.Format])
}

// =============================================================================
// Documents
// =============================================================================

type documentRequest struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name,omitempty"`
	Map  json.RawMessage `json:"map"`
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(r.Context(), w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "list documents"))
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	respondJSON(w, http.StatusOK, docs)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	m, err := pipeline.LoadBytes(req.Map)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	doc := store.New(req.Name, m)
	if req.ID != "" {
		if err := apperrors.ValidateDocumentID(req.ID); err != nil {
			s.respondError(ctx, w, r, err)
			return
		}
		doc.ID = req.ID
	}

	if err := s.store.Put(ctx, doc); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "store document"))
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	doc, err := s.getDocument(ctx, id)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := apperrors.ValidateDocumentID(id); err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	m, err := pipeline.LoadBytes(req.Map)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	doc, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		doc = store.New(req.Name, m)
		doc.ID = id
	} else if err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "fetch document"))
		return
	} else {
		doc.Map = m
		if req.Name != "" {
			doc.Name = req.Name
		}
	}

	if err := s.store.Put(ctx, doc); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "store document"))
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := apperrors.ValidateDocumentID(id); err != nil {
		s.respondError(ctx, w, r, err)
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "delete document"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLayoutDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	doc, err := s.getDocument(ctx, id)
	if err != nil {
		s.respondError(ctx, w, r, err)
		return
	}

	// An empty body means default options.
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	res, cached, err := s.runner.ComputeLayoutWithCacheInfo(ctx, doc.Map, "", opts)
	if err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "layout failed"))
		return
	}

	// Persist the positioned map so clients see stable geometry.
	if err := s.store.Put(ctx, doc); err != nil {
		s.respondError(ctx, w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "store document"))
		return
	}

	respondJSON(w, http.StatusOK, layoutResponse{
		RootID: res.RootID,
		Nodes:  res.Nodes,
		Bounds: res.Bounds,
		Cached: cached,
	})
}

func (s *Server) getDocument(ctx context.Context, id string) (*store.Document, error) {
	return pipeline.LoadDocument(ctx, s.store, id)
}
