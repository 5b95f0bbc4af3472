package storage

import "github.com/retrosnap/firered/internal/model"

// Backend is the interface all snapshot sinks must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// WriteSnapshot persists one published snapshot. Sinks are best-effort:
	// a failed write is reported to the caller, who logs and moves on, it
	// never stops the sampling loop.
	WriteSnapshot(rec *model.SnapshotRecord) error
}

// SessionStats accumulates per-session counters for sinks that track the
// play session alongside the live feed.
type SessionStats struct {
	Ticks     uint64
	Badges    int
	Caught    int
	Whiteouts int
}
