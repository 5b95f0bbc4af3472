// Package worker fans published snapshots out to the configured sinks. The
// file artifact is written synchronously on the sampling path; everything
// else (SQL, metrics, dashboard) is queued and drained by one background
// goroutine so the decode loop never blocks on sink I/O.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/retrosnap/firered/internal/model"
	"github.com/retrosnap/firered/internal/queue"
	"github.com/retrosnap/firered/internal/storage"
)

// Publisher routes snapshot records to sinks.
type Publisher struct {
	logger *slog.Logger

	sync  []storage.Backend
	async []storage.Backend

	q      *queue.Queue[*model.SnapshotRecord]
	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}

	mu        sync.Mutex
	lastWrite time.Duration

	published metric.Int64Counter
	failed    metric.Int64Counter
}

// New creates a publisher. Sync sinks run inline on every Publish call;
// async sinks are served by the drain goroutine after Start.
func New(logger *slog.Logger, syncSinks, asyncSinks []storage.Backend) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{
		logger: logger,
		sync:   syncSinks,
		async:  asyncSinks,
		q:      queue.New[*model.SnapshotRecord](),
		notify: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	m := meter()
	var err error

	p.published, err = m.Int64Counter(
		"publisher.snapshots.published",
		metric.WithDescription("Snapshots delivered to a sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating published counter: %w", err)
	}

	p.failed, err = m.Int64Counter(
		"publisher.snapshots.failed",
		metric.WithDescription("Sink write failures"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	return p, nil
}

// Init initializes every sink.
func (p *Publisher) Init() error {
	for _, b := range append(append([]storage.Backend{}, p.sync...), p.async...) {
		if err := b.Init(); err != nil {
			return fmt.Errorf("initializing sink %T: %w", b, err)
		}
	}
	return nil
}

// Publish delivers one record. Sync sinks are written before it returns; a
// sync failure is logged and that sink skipped for this record, the record
// still reaches the others and the queue. Never returns an error: the
// sampling loop must not abort on a publish failure.
func (p *Publisher) Publish(rec *model.SnapshotRecord) {
	start := time.Now()
	for _, b := range p.sync {
		p.write(b, rec)
	}
	p.mu.Lock()
	p.lastWrite = time.Since(start)
	p.mu.Unlock()

	if len(p.async) == 0 {
		return
	}

	p.q.Push(rec)
	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Start launches the drain goroutine.
func (p *Publisher) Start() {
	go func() {
		defer close(p.done)
		for {
			select {
			case <-p.notify:
				p.drain()
			case <-p.stop:
				// final drain so shutdown does not lose queued records
				p.drain()
				return
			}
		}
	}()
}

// Stop stops the drain goroutine after a final drain and closes all sinks.
func (p *Publisher) Stop() {
	close(p.stop)
	<-p.done

	for _, b := range append(append([]storage.Backend{}, p.sync...), p.async...) {
		if err := b.Close(); err != nil {
			p.logger.Warn("Sink close failed", "sink", fmt.Sprintf("%T", b), "error", err)
		}
	}
}

func (p *Publisher) drain() {
	for _, rec := range p.q.GetAndEmpty() {
		for _, b := range p.async {
			p.write(b, rec)
		}
	}
}

func (p *Publisher) write(b storage.Backend, rec *model.SnapshotRecord) {
	attr := metric.WithAttributes(attribute.String("sink", fmt.Sprintf("%T", b)))
	if err := b.WriteSnapshot(rec); err != nil {
		p.failed.Add(context.Background(), 1, attr)
		p.logger.Warn("Publish failed, skipping tick for sink",
			"sink", fmt.Sprintf("%T", b), "tick", rec.Tick, "error", err)
		return
	}
	p.published.Add(context.Background(), 1, attr)
}

// QueueDepth reports the records awaiting the async drain.
func (p *Publisher) QueueDepth() int {
	return p.q.Len()
}

// LastWriteDuration reports how long the most recent sync publish took.
func (p *Publisher) LastWriteDuration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastWrite
}
