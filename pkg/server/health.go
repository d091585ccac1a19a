package server

import (
	"net/http"
	"time"

	"github.com/recipemd/recipemd/pkg/serializer"
)

// HealthResponse is the body returned by the health and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// handleHealth reports liveness. It returns 200 as long as the process
// is able to serve requests at all.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	})
}

// handleReady reports readiness. It returns 503 until Start has been
// called and again after shutdown begins.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Service:   s.config.Name,
			Version:   s.config.Version,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	})
}
