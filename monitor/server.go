// Package monitor serves local observability for a running simulation
// It never touches the World: the frame driver publishes immutable snapshots
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/shoot/engine"
)

// Server holds the latest published snapshot and the HTTP listener
type Server struct {
	snapshot atomic.Pointer[engine.Snapshot]
	metrics  http.Handler
	http     *http.Server
	started  time.Time
}

// New creates a server; metrics may be nil to omit /metrics
func New(metrics http.Handler) *Server {
	return &Server{
		metrics: metrics,
		started: time.Now(),
	}
}

// Publish replaces the snapshot served at /snapshot
// Safe to call from the frame loop while handlers read
func (s *Server) Publish(snap *engine.Snapshot) {
	s.snapshot.Store(snap)
}

// Router builds the route table without opening a listener
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/snapshot", s.handleSnapshot)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// Start listens on addr and serves in the background
// Returns the bound address, useful when addr has port 0
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.http = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("[monitor] listening on %s", ln.Addr())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[monitor] serve error: %v", err)
		}
	}()
	return ln.Addr().String(), nil
}

// Shutdown stops the listener if Start was called
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Frame  int64  `json:"frame"`
	Phase  string `json:"phase,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
	}
	if snap := s.snapshot.Load(); snap != nil {
		resp.Frame = snap.Frame
		resp.Phase = snap.Phase.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot.Load()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot published"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[monitor] encode error: %v", err)
	}
}
