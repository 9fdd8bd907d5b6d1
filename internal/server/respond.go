package server

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/observability"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps an application error to an HTTP status and body.
func (s *Server) respondError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(ctx, r.Method, r.URL.Path, err)

	code := apperrors.GetCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respondJSON(w, status, errorResponse{Error: apperrors.UserMessage(err), Code: string(code)})
}

func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidLayout,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidCanvas,
		apperrors.ErrCodeInvalidNode,
		apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeInvalidMindmap:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeDocumentNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
