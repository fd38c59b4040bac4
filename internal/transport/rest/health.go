package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger is the minimal interface for database health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always reports ok: the process is up if it can answer at all.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready reports whether the service can reach its database.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full check: per-component status with latency, plus the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	db := componentStatus{Status: "ok"}
	status, code := "ok", http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		db.Status = "down"
		status, code = "down", http.StatusServiceUnavailable
	} else {
		db.Latency = time.Since(start).String()
	}

	writeJSON(w, code, healthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]componentStatus{"database": db},
		Timestamp:  time.Now(),
	})
}
