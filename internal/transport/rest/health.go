package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const pingTimeout = 3 * time.Second

// pinger is implemented by the Postgres pool and the Redis cache.
type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a named dependency checked by /ready and /health.
type Component struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	clock      clockwork.Clock
	version    string
	components []Component
}

// NewHealthHandler creates a HealthHandler. With no components every probe reports ok.
func NewHealthHandler(clock clockwork.Clock, version string, components ...Component) *HealthHandler {
	return &HealthHandler{clock: clock, version: version, components: components}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now().UTC()})
}

// Ready answers 503 when any component fails its ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	h.respond(w, HealthResponse{}, ok)
}

// Health is Ready plus per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	h.respond(w, HealthResponse{Version: h.version, Components: components}, ok)
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse, ok bool) {
	resp.Timestamp = h.clock.Now().UTC()
	if !ok {
		resp.Status = "down"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Status = "ok"
	writeJSON(w, http.StatusOK, resp)
}

// check pings every component concurrently under a shared timeout.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.components))
	var g errgroup.Group
	for i, c := range h.components {
		g.Go(func() error {
			start := h.clock.Now()
			if err := c.Pinger.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down"}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: h.clock.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	statuses := make(map[string]CompStatus, len(h.components))
	ok := true
	for i, c := range h.components {
		statuses[c.Name] = results[i]
		if results[i].Status != "ok" {
			ok = false
		}
	}
	return statuses, ok
}
