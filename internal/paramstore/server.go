package paramstore

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/keystash/keystash/internal/metrics"
	"github.com/keystash/keystash/pkg/proto"
)

// DefaultPageSize is the number of entries per list page when the server is
// constructed with pageSize <= 0.
const DefaultPageSize = 10

// Server exposes a MemoryStore over the parameter store JSON API. Listing is
// paginated with opaque continuation tokens (the last name of the previous
// page). Metrics may be nil.
type Server struct {
	store     *MemoryStore
	authToken string
	pageSize  int
	metrics   *metrics.ServerMetrics
}

// NewServer creates a server around store. An empty authToken disables
// authentication.
func NewServer(store *MemoryStore, authToken string, pageSize int, m *metrics.ServerMetrics) *Server {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Server{
		store:     store,
		authToken: authToken,
		pageSize:  pageSize,
		metrics:   m,
	}
}

// Handler returns the HTTP handler for the API, including /metrics and
// /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/params", s.handleParams)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		s.writeError(w, r, http.StatusUnauthorized, "Unauthorized", "missing or invalid bearer token")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listParams(w, r)
	case http.MethodPut:
		s.writeParam(w, r)
	case http.MethodDelete:
		s.deleteParam(w, r)
	default:
		s.writeError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed", "unsupported method")
	}
}

// listParams handles GET /api/v1/params?prefix=...&continuation-token=...
func (s *Server) listParams(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		s.writeError(w, r, http.StatusBadRequest, "InvalidRequest", "prefix is required")
		return
	}
	marker := r.URL.Query().Get("continuation-token")

	entries, nextMarker, err := s.store.ListPage(prefix, marker, s.pageSize)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "InternalError", err.Error())
		return
	}

	resp := proto.ListPageResponse{
		Entries:               entries,
		NextContinuationToken: nextMarker,
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

// writeParam handles PUT /api/v1/params.
func (s *Server) writeParam(w http.ResponseWriter, r *http.Request) {
	var req proto.WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "InvalidRequest", "malformed JSON body")
		return
	}

	if err := s.store.Put(&req); err != nil {
		switch {
		case errors.Is(err, ErrValueTooLarge):
			s.writeError(w, r, http.StatusBadRequest, "ParameterTooLarge", err.Error())
		case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidTier), errors.Is(err, ErrInvalidType):
			s.writeError(w, r, http.StatusBadRequest, "InvalidRequest", err.Error())
		default:
			s.writeError(w, r, http.StatusInternalServerError, "InternalError", err.Error())
		}
		return
	}

	log.Debug().Str("name", req.Name).Str("tier", req.Tier).Msg("parameter written")
	s.finish(w, r, http.StatusNoContent)
}

// deleteParam handles DELETE /api/v1/params?name=...
func (s *Server) deleteParam(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, r, http.StatusBadRequest, "InvalidRequest", "name is required")
		return
	}

	if err := s.store.Delete(name); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, "NotFound", err.Error())
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, "InternalError", err.Error())
		return
	}

	log.Debug().Str("name", name).Msg("parameter deleted")
	s.finish(w, r, http.StatusNoContent)
}

func (s *Server) authorized(r *http.Request) bool {
	if s.authToken == "" {
		return true
	}
	header := r.Header.Get("Authorization")
	return strings.TrimPrefix(header, "Bearer ") == s.authToken
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
	s.observe(r, status)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeJSON(w, r, status, proto.ErrorResponse{Error: code, Message: message})
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request, status int) {
	w.WriteHeader(status)
	s.observe(r, status)
}

func (s *Server) observe(r *http.Request, status int) {
	if s.metrics == nil {
		return
	}
	s.metrics.Requests.WithLabelValues(r.Method, http.StatusText(status)).Inc()
	s.metrics.Entries.Set(float64(s.store.Len()))
}
