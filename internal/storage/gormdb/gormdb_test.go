package gormdb

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/model"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(zerolog.Nop())
	// Use a file-backed SQLite DB per test; the shared in-memory DSN leaks
	// state between parallel tests.
	b.SqlitePath = filepath.Join(t.TempDir(), "snapshots.db")

	db, err := b.openSqlite(b.SqlitePath)
	require.NoError(t, err)
	b.db = db

	require.NoError(t, b.Init())
	t.Cleanup(func() { b.Close() })
	return b
}

func testRecord(tick uint64, canonical string) *model.SnapshotRecord {
	return &model.SnapshotRecord{
		Time:      time.Now(),
		Tick:      tick,
		Canonical: []byte(canonical),
		Snapshot: model.GameSnapshot{
			Player: model.PlayerState{MapID: 3, Money: 3000, BadgeCount: 2},
			Roster: []model.RosterRecord{{Species: 25, Level: 12}},
			Dex:    model.DexState{Seen: 10, Caught: 4},
		},
	}
}

func TestInit_SeedsLiveFeedAndSession(t *testing.T) {
	b := newTestBackend(t)

	var feed LiveFeed
	require.NoError(t, b.db.First(&feed, 1).Error)
	assert.Equal(t, "{}", feed.Data)

	var count int64
	require.NoError(t, b.db.Model(&Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWriteSnapshot_UpsertsSingleLiveFeedRow(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.WriteSnapshot(testRecord(30, `{"money": 100}`)))
	require.NoError(t, b.WriteSnapshot(testRecord(60, `{"money": 200}`)))

	var feeds []LiveFeed
	require.NoError(t, b.db.Find(&feeds).Error)
	require.Len(t, feeds, 1, "live feed must stay a single row")
	assert.Equal(t, `{"money": 200}`, feeds[0].Data)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(feeds[0].Data), &doc))
}

func TestWriteSnapshot_AppendsHistory(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.WriteSnapshot(testRecord(30, `{}`)))
	require.NoError(t, b.WriteSnapshot(testRecord(60, `{}`)))

	var rows []SnapshotRow
	require.NoError(t, b.db.Order("tick").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(30), rows[0].Tick)
	assert.Equal(t, uint64(60), rows[1].Tick)
	assert.Equal(t, b.session.ID, rows[0].SessionID)
	assert.Equal(t, uint8(3), rows[0].MapID)
	assert.Equal(t, 1, rows[0].PartySize)
	assert.Equal(t, 4, rows[0].DexCaught)
}

func TestWriteSnapshot_UpdatesSessionCounters(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.WriteSnapshot(testRecord(90, `{}`)))

	var sess Session
	require.NoError(t, b.db.First(&sess, b.session.ID).Error)
	assert.Equal(t, uint64(90), sess.Ticks)
	assert.Equal(t, 2, sess.Badges)
	assert.Equal(t, 4, sess.PokemonCaught)
	assert.Equal(t, 0, sess.Whiteouts)
}

func TestWriteSnapshot_CountsWhiteoutEdges(t *testing.T) {
	b := newTestBackend(t)

	lost := testRecord(30, `{}`)
	lost.Snapshot.Battle.Outcome = model.OutcomeLost

	// Staying in the LOST state across ticks is one whiteout, not three.
	require.NoError(t, b.WriteSnapshot(lost))
	require.NoError(t, b.WriteSnapshot(lost))
	require.NoError(t, b.WriteSnapshot(lost))
	require.NoError(t, b.WriteSnapshot(testRecord(120, `{}`)))

	lost2 := testRecord(150, `{}`)
	lost2.Snapshot.Battle.Outcome = model.OutcomeLost
	require.NoError(t, b.WriteSnapshot(lost2))

	var sess Session
	require.NoError(t, b.db.First(&sess, b.session.ID).Error)
	assert.Equal(t, 2, sess.Whiteouts)
}

func TestClose_EndsSession(t *testing.T) {
	b := New(zerolog.Nop())
	b.SqlitePath = filepath.Join(t.TempDir(), "snapshots.db")
	db, err := b.openSqlite(b.SqlitePath)
	require.NoError(t, err)
	b.db = db
	require.NoError(t, b.Init())

	sid := b.session.ID
	require.NoError(t, b.WriteSnapshot(testRecord(30, `{}`)))
	require.NoError(t, b.Close())

	db2, err := New(zerolog.Nop()).openSqlite(b.SqlitePath)
	require.NoError(t, err)
	var sess Session
	require.NoError(t, db2.First(&sess, sid).Error)
	assert.NotNil(t, sess.EndedAt)
}

func TestWriteSnapshot_NotInitialized(t *testing.T) {
	b := New(zerolog.Nop())
	err := b.WriteSnapshot(testRecord(30, `{}`))
	assert.Error(t, err)
}
