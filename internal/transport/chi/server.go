// Package chi exposes the HTTP API: property lookup, search, health and
// metrics endpoints.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/geo"
	"github.com/propdex/propdex/internal/domain/search"
	healthuc "github.com/propdex/propdex/internal/usecase/health"
	propertyuc "github.com/propdex/propdex/internal/usecase/property"
)

// Error response codes.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeNotReady      = "not_ready"
	codeInternalError = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server wires the use case services into HTTP handlers.
type Server struct {
	properties *propertyuc.Service
	health     *healthuc.Service
	logger     *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(properties *propertyuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{properties: properties, health: health, logger: logger}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/properties/{id}", s.getProperty)
	r.Post("/properties/search", s.searchProperties)
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// getProperty handles GET /properties/{id}.
func (s *Server) getProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "property id must be an integer")
		return
	}

	p, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// searchProperties handles POST /properties/search.
func (s *Server) searchProperties(w http.ResponseWriter, r *http.Request) {
	var params search.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	if params.HasGeo() && !geo.ValidateCoordinates(*params.Latitude, *params.Longitude) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "coordinates out of range")
		return
	}

	result, err := s.properties.Search(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// healthz handles GET /healthz.
func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// handleDomainError maps domain sentinels to HTTP responses. Anything
// unrecognized (including ErrCorrupted) is a 500.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "property not found")
	case errors.Is(err, domain.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, codeNotReady, "index is not ready")
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
