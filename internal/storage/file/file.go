// Package file implements the canonical file artifact sink: one whole-file
// overwrite per published snapshot. There is no locking or rename dance; a
// consumer reading mid-write may see a truncated document and is expected
// to treat a parse failure as stale data and retry on its next cycle.
package file

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/retrosnap/firered/internal/model"
)

// Backend writes the canonical encoding of each snapshot to a fixed path.
type Backend struct {
	path   string
	logger *slog.Logger
}

// New creates a file sink writing to path.
func New(path string, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{path: path, logger: logger}
}

// Init ensures the target directory exists.
func (b *Backend) Init() error {
	dir := filepath.Dir(b.path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Close is a no-op; every write opens and closes the file itself.
func (b *Backend) Close() error { return nil }

// WriteSnapshot overwrites the artifact with the record's canonical bytes.
func (b *Backend) WriteSnapshot(rec *model.SnapshotRecord) error {
	if err := os.WriteFile(b.path, rec.Canonical, 0644); err != nil {
		return fmt.Errorf("writing snapshot artifact: %w", err)
	}
	return nil
}

// Path returns the artifact location.
func (b *Backend) Path() string { return b.path }
