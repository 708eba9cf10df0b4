package handlers

import (
	"net/http"
	"time"
)

const Version = "1.0.0"

// Dependency is an upstream provider the health check reports on.
type Dependency interface {
	Name() string
	Configured() bool
}

type HealthHandler struct {
	Dependencies []Dependency
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(deps ...Dependency) *HealthHandler {
	return &HealthHandler{
		Dependencies: deps,
		StartTime:    time.Now(),
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "MarketMind backend running"})
}

// Handle always reports healthy: providers degrade to fallback text, never to an outage.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string, len(h.Dependencies))
	for _, d := range h.Dependencies {
		if d.Configured() {
			deps[d.Name()] = "configured"
		} else {
			deps[d.Name()] = "not configured"
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
