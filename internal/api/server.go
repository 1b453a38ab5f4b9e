// Package api provides the local HTTP server for daykeep. The endpoints
// mirror the operations the browser frontend's event handlers call, with
// the success/message envelope that frontend expects.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daykeep/daykeep/internal/app/budget"
	"github.com/daykeep/daykeep/internal/app/engagement"
	"github.com/daykeep/daykeep/internal/app/water"
	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
)

// Server is the daykeep HTTP API server.
type Server struct {
	session        *identity.Session
	engagement     *engagement.Service
	budget         *budget.Service
	water          *water.Service
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(session *identity.Session, eng *engagement.Service, bud *budget.Service, wat *water.Service) *Server {
	return &Server{session: session, engagement: eng, budget: bud, water: wat}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Session
	r.Route("/api/session", func(r chi.Router) {
		r.Get("/", s.handleWhoami)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
	})

	// Engagement
	r.Route("/api/engagement", func(r chi.Router) {
		r.Post("/tap", s.handleTap)
		r.Get("/summary", s.handleEngagementSummary)
		r.Get("/achievements", s.handleAchievements)
	})

	// Budget
	r.Route("/api/budget", func(r chi.Router) {
		r.Get("/entries", s.handleBudgetEntries)
		r.Post("/entries", s.handleBudgetAdd)
		r.Delete("/entries/{id}", s.handleBudgetDelete)
		r.Get("/summary", s.handleBudgetSummary)
		r.Get("/breakdown", s.handleBudgetBreakdown)
	})

	// Water
	r.Route("/api/water", func(r chi.Router) {
		r.Post("/entries", s.handleWaterAdd)
		r.Delete("/entries/{id}", s.handleWaterDelete)
		r.Get("/today", s.handleWaterToday)
		r.Get("/week", s.handleWaterWeek)
		r.Get("/settings", s.handleWaterSettings)
		r.Put("/settings", s.handleWaterSaveSettings)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult writes a success envelope with the given payload fields.
func writeResult(w http.ResponseWriter, payload map[string]interface{}) {
	out := map[string]interface{}{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	writeJSON(w, http.StatusOK, out)
}

// writeError maps a service error onto the failure envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingType),
		errors.Is(err, domain.ErrMissingCategory),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrMissingUsername):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

// corsMiddleware adds CORS headers for the local frontend.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
