// Package monitor runs the periodic status reporter: a small goroutine
// that snapshots the pipeline's health counters, logs them and overwrites
// a status file next to the artifact for quick inspection.
package monitor

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/retrosnap/firered/internal/sampler"
	"github.com/retrosnap/firered/internal/worker"
)

// Status is one health report.
type Status struct {
	Time              time.Time `json:"time"`
	Tick              uint64    `json:"tick"`
	QueueDepth        int       `json:"queue_depth"`
	LastDecodeMicros  int64     `json:"last_decode_us"`
	LastPublishMicros int64     `json:"last_publish_us"`
}

// Dependencies holds everything the monitor reports on.
type Dependencies struct {
	Logger     *slog.Logger
	Sampler    *sampler.Sampler
	Publisher  *worker.Publisher
	StatusPath string
	Interval   time.Duration
}

// Service manages status monitoring.
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service.
func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return &Service{
		deps:     deps,
		stopChan: make(chan struct{}),
	}
}

// IsRunning returns whether the status monitor is running.
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetStatus gathers the current health counters.
func (s *Service) GetStatus() Status {
	return Status{
		Time:              time.Now(),
		Tick:              s.deps.Sampler.Tick(),
		QueueDepth:        s.deps.Publisher.QueueDepth(),
		LastDecodeMicros:  s.deps.Sampler.LastDecodeDuration().Microseconds(),
		LastPublishMicros: s.deps.Publisher.LastWriteDuration().Microseconds(),
	}
}

// Start starts the status monitor goroutine.
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.Logger
		logger.Debug("Starting status monitor goroutine")

		ticker := time.NewTicker(s.deps.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				status := s.GetStatus()
				logger.Debug("Pipeline status",
					"tick", status.Tick,
					"queueDepth", status.QueueDepth,
					"lastDecodeUs", status.LastDecodeMicros,
					"lastPublishUs", status.LastPublishMicros)

				if s.deps.StatusPath == "" {
					continue
				}
				raw, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					continue
				}
				if err := os.WriteFile(s.deps.StatusPath, raw, 0644); err != nil {
					logger.Error("Error writing status file", "error", err)
				}
			}
		}
	}()

	return nil
}

// Stop stops the status monitor.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		close(s.stopChan)
	}
}
