// Package sampler owns the sampling cadence: it counts host ticks and runs
// the full decode, serialize, publish sequence on every cadence boundary.
// The tick counter is explicit state of the Sampler value, advanced only by
// OnTick, so embedding callers control time completely.
package sampler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/retrosnap/firered/internal/canon"
	"github.com/retrosnap/firered/internal/decode"
	"github.com/retrosnap/firered/internal/model"
)

// DefaultCadence publishes twice per nominal second at the platform's 60
// frames per second.
const DefaultCadence = 30

// Publisher receives the assembled record on cadence ticks.
type Publisher interface {
	Publish(rec *model.SnapshotRecord)
}

// Sampler drives the per-frame decode schedule.
type Sampler struct {
	decoder     *decode.Decoder
	publisher   Publisher
	logger      *slog.Logger
	cadence     uint64
	trackDexIDs bool

	tick atomic.Uint64

	ticks     metric.Int64Counter
	snapshots metric.Int64Counter

	lastDecode atomic.Int64 // nanoseconds
}

// New creates a sampler. A cadence below 1 falls back to the default.
func New(dec *decode.Decoder, pub Publisher, cadence int, trackDexIDs bool, logger *slog.Logger) (*Sampler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cadence < 1 {
		cadence = DefaultCadence
	}
	s := &Sampler{
		decoder:     dec,
		publisher:   pub,
		logger:      logger,
		cadence:     uint64(cadence),
		trackDexIDs: trackDexIDs,
	}

	m := meter()
	var err error

	s.ticks, err = m.Int64Counter(
		"sampler.ticks",
		metric.WithDescription("Host ticks observed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick counter: %w", err)
	}

	s.snapshots, err = m.Int64Counter(
		"sampler.snapshots",
		metric.WithDescription("Snapshots decoded and published"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot counter: %w", err)
	}

	return s, nil
}

// OnTick advances the tick counter and, on cadence boundaries, runs one
// decode-serialize-publish cycle. Off-cadence ticks do nothing else.
func (s *Sampler) OnTick() {
	t := s.tick.Add(1)
	s.ticks.Add(context.Background(), 1)

	if t%s.cadence != 0 {
		return
	}

	start := time.Now()
	res := s.decoder.Decode()
	elapsed := time.Since(start)
	s.lastDecode.Store(int64(elapsed))

	rec := &model.SnapshotRecord{
		Time:           start,
		Tick:           t,
		Snapshot:       res.Snapshot,
		Canonical:      canon.EncodeSnapshot(res.Snapshot, s.trackDexIDs),
		Dropped:        len(res.Dropped),
		Save1OK:        res.Save1OK,
		Save2OK:        res.Save2OK,
		DecodeDuration: elapsed,
	}

	s.publisher.Publish(rec)
	s.snapshots.Add(context.Background(), 1)

	if !res.Save1OK || !res.Save2OK {
		s.logger.Debug("Save regions unavailable, published defaults",
			"tick", t, "save1", res.Save1OK, "save2", res.Save2OK)
	}
}

// Tick returns the current tick count. Safe from any goroutine.
func (s *Sampler) Tick() uint64 {
	return s.tick.Load()
}

// LastDecodeDuration reports how long the most recent decode cycle took.
func (s *Sampler) LastDecodeDuration() time.Duration {
	return time.Duration(s.lastDecode.Load())
}
