// Package server exposes the layout pipeline and document store over HTTP.
//
// Routes:
//
//	GET    /health                     liveness probe
//	POST   /v1/layout                  lay out a mind map from the request body
//	POST   /v1/render                  render a mind map to svg/dot/json
//	GET    /v1/documents               list stored documents
//	POST   /v1/documents               create a document
//	GET    /v1/documents/{id}          fetch a document
//	PUT    /v1/documents/{id}          replace a document's map
//	DELETE /v1/documents/{id}          delete a document
//	POST   /v1/documents/{id}/layout   lay out a stored document and persist positions
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mindweave/mindweave/pkg/pipeline"
	"github.com/mindweave/mindweave/pkg/store"
)

// Server wires the pipeline runner and document store into an HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store disables the document routes; a nil
// logger falls back to the default logger.
func New(runner *pipeline.Runner, s store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: s, logger: logger}
}

// Routes builds the HTTP handler with all middleware and routes attached.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logging)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)

		if s.store != nil {
			r.Route("/documents", func(r chi.Router) {
				r.Get("/", s.handleListDocuments)
				r.Post("/", s.handleCreateDocument)
				r.Get("/{id}", s.handleGetDocument)
				r.Put("/{id}", s.handlePutDocument)
				r.Delete("/{id}", s.handleDeleteDocument)
				r.Post("/{id}/layout", s.handleLayoutDocument)
			})
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
