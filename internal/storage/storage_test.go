package storage_test

import (
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/storage"
)

func TestNewBackend_File(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("output.path", t.TempDir()+"/out.json")

	b, err := storage.NewBackend("file", slog.Default(), zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestNewBackend_Gorm(t *testing.T) {
	b, err := storage.NewBackend("gorm", slog.Default(), zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := storage.NewBackend("redis", slog.Default(), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage type")
}
