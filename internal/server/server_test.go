package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mindweave/mindweave/pkg/cache"
	"github.com/mindweave/mindweave/pkg/pipeline"
	"github.com/mindweave/mindweave/pkg/store"
)

const testMapJSON = `{
	"nodes": [
		{"id": "root", "label": "Project"},
		{"id": "ideas", "label": "Ideas", "parent_id": "root"},
		{"id": "tasks", "label": "Tasks", "parent_id": "root"}
	],
	"edges": [
		{"source": "root", "target": "ideas"},
		{"source": "root", "target": "tasks"}
	]
}`

func newTestServer(t *testing.T) (http.Handler, store.Store) {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	st := store.NewMemoryStore()
	return New(runner, st, logger).Routes(), st
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}

func TestLayoutEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"map": ` + testMapJSON + `, "strategy": "tree"}`
	rec := doJSON(t, h, http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RootID != "root" {
		t.Errorf("root_id = %q, want root", resp.RootID)
	}
	if len(resp.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(resp.Nodes))
	}
	if resp.MapHash == "" {
		t.Error("expected non-empty map hash")
	}
	if resp.Bounds.Width() <= 0 {
		t.Errorf("bounds width = %v, want > 0", resp.Bounds.Width())
	}
}

func TestLayoutEndpointRejectsBadStrategy(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"map": ` + testMapJSON + `, "strategy": "spiral"}`
	rec := doJSON(t, h, http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLayoutEndpointRejectsInvalidMap(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"map": {"nodes": [{"id": "a"}, {"id": "a"}]}}`
	rec := doJSON(t, h, http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != "INVALID_MINDMAP" {
		t.Errorf("code = %q, want INVALID_MINDMAP", resp.Code)
	}
}

func TestRenderEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"svg", "image/svg+xml", "<svg"},
		{"dot", "text/vnd.graphviz", "graph G {"},
		{"json", "application/json", `"nodes"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			body := `{"map": ` + testMapJSON + `, "format": "` + tt.format + `"}`
			rec := doJSON(t, h, http.MethodPost, "/v1/render", body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("content type = %q, want %q", ct, tt.contentType)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.contains)) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestRenderEndpointRejectsBadFormat(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"map": ` + testMapJSON + `, "format": "gif"}`
	rec := doJSON(t, h, http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDocumentCRUD(t *testing.T) {
	h, _ := newTestServer(t)

	// Create
	rec := doJSON(t, h, http.MethodPost, "/v1/documents", `{"name": "plan", "map": `+testMapJSON+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var doc store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected generated document ID")
	}
	if doc.Version != 1 {
		t.Errorf("version = %d, want 1", doc.Version)
	}

	// Get
	rec = doJSON(t, h, http.MethodGet, "/v1/documents/"+doc.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// List
	rec = doJSON(t, h, http.MethodGet, "/v1/documents", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var docs []store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}

	// Update
	rec = doJSON(t, h, http.MethodPut, "/v1/documents/"+doc.ID, `{"name": "plan v2", "map": `+testMapJSON+`}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var updated store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated document: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("version after update = %d, want 2", updated.Version)
	}
	if updated.Name != "plan v2" {
		t.Errorf("name = %q, want plan v2", updated.Name)
	}

	// Delete
	rec = doJSON(t, h, http.MethodDelete, "/v1/documents/"+doc.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/v1/documents/"+doc.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestGetDocumentUnknownID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/documents/no-such-doc", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != "DOCUMENT_NOT_FOUND" {
		t.Errorf("code = %q, want DOCUMENT_NOT_FOUND", resp.Code)
	}
}

func TestLayoutDocumentPersistsPositions(t *testing.T) {
	h, st := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/documents", `{"id": "plan-1", "name": "plan", "map": `+testMapJSON+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/documents/plan-1/layout", `{"strategy": "radial"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("layout status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(resp.Nodes))
	}

	doc, err := st.Get(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("get stored document: %v", err)
	}
	positioned := false
	for _, n := range doc.Map.Nodes {
		if n.X != 0 || n.Y != 0 {
			positioned = true
		}
	}
	if !positioned {
		t.Error("expected stored map to carry layout positions")
	}
}

func TestDocumentRoutesRejectBadID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/documents/-bad", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
