package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/model"
)

func TestWriteSnapshot_OverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_state.json")
	b := New(path, nil)
	require.NoError(t, b.Init())

	first := &model.SnapshotRecord{Time: time.Now(), Tick: 30, Canonical: []byte(`{"money": 100}`)}
	require.NoError(t, b.WriteSnapshot(first))

	second := &model.SnapshotRecord{Time: time.Now(), Tick: 60, Canonical: []byte(`{"money": 5}`)}
	require.NoError(t, b.WriteSnapshot(second))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"money": 5}`, string(got), "previous contents must not survive")

	require.NoError(t, b.Close())
}

func TestInit_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	b := New(path, nil)
	require.NoError(t, b.Init())

	require.NoError(t, b.WriteSnapshot(&model.SnapshotRecord{Canonical: []byte(`{}`)}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteSnapshot_UnwritablePath(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "missing", "out.json"), nil)
	// Init not called: the directory does not exist and the write fails,
	// which the publisher logs and skips.
	err := b.WriteSnapshot(&model.SnapshotRecord{Canonical: []byte(`{}`)})
	assert.Error(t, err)
}
