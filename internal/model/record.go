package model

import "time"

// SnapshotRecord is one published snapshot as handed to the storage sinks:
// the decoded state plus its canonical encoding and the decode diagnostics
// the sinks report on.
type SnapshotRecord struct {
	Time      time.Time
	Tick      uint64
	Snapshot  GameSnapshot
	Canonical []byte

	// Decode diagnostics.
	Dropped        int
	Save1OK        bool
	Save2OK        bool
	DecodeDuration time.Duration
}
