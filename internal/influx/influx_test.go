package influx

import (
	"strings"
	"testing"
	"time"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/model"
)

func TestSnapshotPoints(t *testing.T) {
	rec := &model.SnapshotRecord{
		Time: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Tick: 300,
		Snapshot: model.GameSnapshot{
			Player: model.PlayerState{MapID: 3, Money: 3000, BadgeCount: 2},
			Roster: []model.RosterRecord{{Species: 25}, {Species: 6}},
			Battle: model.BattleState{Phase: model.PhaseWild},
			Dex:    model.DexState{Seen: 40, Caught: 12},
		},
		Dropped:        1,
		Save1OK:        true,
		Save2OK:        true,
		DecodeDuration: 150 * time.Microsecond,
	}

	state, perf := SnapshotPoints(rec, "firered-us-rev0")

	stateLine := influxdb2_write.PointToLineProtocol(state, time.Nanosecond)
	assert.Contains(t, stateLine, "game_state")
	assert.Contains(t, stateLine, "layout=firered-us-rev0")
	assert.Contains(t, stateLine, "money=3000i")
	assert.Contains(t, stateLine, "party_size=2i")
	assert.Contains(t, stateLine, "in_battle=1i")

	perfLine := influxdb2_write.PointToLineProtocol(perf, time.Nanosecond)
	assert.Contains(t, perfLine, "decode")
	assert.Contains(t, perfLine, "tick=300i")
	assert.Contains(t, perfLine, "duration_us=150i")
	assert.Contains(t, perfLine, "dropped_records=1i")
}

func TestWritePoint_BackupWriterMissing(t *testing.T) {
	m := NewManager(zerolog.Nop(), "", "firered-us-rev0")
	// Not connected and no backup writer: the write must fail loudly.
	point := influxdb2_write.NewPointWithMeasurement("decode").AddField("tick", 1)
	err := m.WritePoint("decoder_performance", point)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not initialized"))
}
