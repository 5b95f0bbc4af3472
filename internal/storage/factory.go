package storage

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/retrosnap/firered/internal/config"
	"github.com/retrosnap/firered/internal/storage/file"
	"github.com/retrosnap/firered/internal/storage/gormdb"
)

// NewBackend creates a snapshot sink by kind.
func NewBackend(kind string, logger *slog.Logger, zlog zerolog.Logger) (Backend, error) {
	switch kind {
	case "file":
		return file.New(config.GetOutputConfig().Path, logger), nil
	case "gorm":
		return gormdb.New(zlog), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", kind)
	}
}
