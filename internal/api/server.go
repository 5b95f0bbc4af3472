// Package api serves the live dashboard: REST endpoints over the latest
// published snapshot plus a WebSocket feed pushing every update. The
// server is itself a snapshot sink, fed through the async publish path.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/retrosnap/firered/internal/model"
	"github.com/retrosnap/firered/internal/names"
)

// Server is the dashboard HTTP server.
type Server struct {
	logger *slog.Logger
	listen string
	hub    *Hub

	mu     sync.RWMutex
	latest *model.SnapshotRecord

	httpSrv *http.Server
}

// NewServer creates a dashboard server listening on addr.
func NewServer(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger: logger,
		listen: addr,
		hub:    NewHub(logger),
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthcheck", s.handleHealthcheck).Methods("GET")
	r.HandleFunc("/ws", s.hub.HandleWebSocket)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/snapshot", s.handleSnapshot).Methods("GET")
	api.HandleFunc("/roster", s.handleRoster).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	return r
}

// Init starts serving in the background.
func (s *Server) Init() error {
	s.httpSrv = &http.Server{
		Addr:         s.listen,
		Handler:      s.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info("Dashboard server listening", "addr", s.listen)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Dashboard server failed", "error", err)
		}
	}()
	return nil
}

// WriteSnapshot stores the record as the latest state and pushes its
// canonical document to the WebSocket clients.
func (s *Server) WriteSnapshot(rec *model.SnapshotRecord) error {
	s.mu.Lock()
	s.latest = rec
	s.mu.Unlock()

	s.hub.Broadcast(rec.Canonical)
	return nil
}

// Close stops the listener and disconnects the dashboard clients.
func (s *Server) Close() error {
	s.hub.CloseAll()
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) snapshot() *model.SnapshotRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleSnapshot returns the latest canonical document verbatim, the same
// bytes the file artifact holds.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	rec := s.snapshot()
	if rec == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(rec.Canonical)
}

// RosterEntry is one party slot as served by /api/roster, with numeric
// ids already resolved to names.
type RosterEntry struct {
	Species string `json:"species"`
	Level   uint8  `json:"level"`
	HP      uint16 `json:"hp_current"`
	MaxHP   uint16 `json:"hp_max"`
	Status  string `json:"status"`
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	rec := s.snapshot()
	if rec == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}

	entries := make([]RosterEntry, 0, len(rec.Snapshot.Roster))
	for _, mon := range rec.Snapshot.Roster {
		entries = append(entries, RosterEntry{
			Species: names.Species(mon.Species),
			Level:   mon.Level,
			HP:      mon.HP,
			MaxHP:   mon.MaxHP,
			Status:  names.StatusLabel(mon.Status),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	rec := s.snapshot()

	status := map[string]any{
		"clients":  s.hub.ClientCount(),
		"has_data": rec != nil,
	}
	if rec != nil {
		status["tick"] = rec.Tick
		status["updated_at"] = rec.Time.UTC().Format(time.RFC3339)
		status["save_regions_ok"] = rec.Save1OK && rec.Save2OK
		status["summary"] = rec.Snapshot.Summary()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
