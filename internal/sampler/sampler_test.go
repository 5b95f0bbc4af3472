package sampler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/decode"
	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/mem"
	"github.com/retrosnap/firered/internal/model"
)

type capturingPublisher struct {
	recs []*model.SnapshotRecord
}

func (c *capturingPublisher) Publish(rec *model.SnapshotRecord) {
	c.recs = append(c.recs, rec)
}

func newTestSampler(t *testing.T, cadence int) (*Sampler, *capturingPublisher) {
	t.Helper()
	im := mem.NewImage()
	l := gba.FireRedRev0()
	im.Poke32(l.SaveBlock1Ptr, 0x02025734)
	im.Poke32(l.SaveBlock2Ptr, 0x0202552C)
	im.Map(0x02025734, make([]byte, 0x1000))
	im.Map(0x0202552C, make([]byte, 0x1000))

	pub := &capturingPublisher{}
	dec := decode.New(im, l, decode.Options{}, nil)
	s, err := New(dec, pub, cadence, false, nil)
	require.NoError(t, err)
	return s, pub
}

func TestOnTick_PublishesOnCadenceOnly(t *testing.T) {
	s, pub := newTestSampler(t, 30)

	for i := 0; i < 89; i++ {
		s.OnTick()
	}
	assert.Len(t, pub.recs, 2, "ticks 30 and 60")

	s.OnTick() // tick 90
	require.Len(t, pub.recs, 3)
	assert.Equal(t, uint64(30), pub.recs[0].Tick)
	assert.Equal(t, uint64(60), pub.recs[1].Tick)
	assert.Equal(t, uint64(90), pub.recs[2].Tick)
	assert.Equal(t, uint64(90), s.Tick())
}

func TestOnTick_CadenceOne(t *testing.T) {
	s, pub := newTestSampler(t, 1)

	for i := 0; i < 5; i++ {
		s.OnTick()
	}
	assert.Len(t, pub.recs, 5)
}

func TestOnTick_RecordContents(t *testing.T) {
	s, pub := newTestSampler(t, 30)

	for i := 0; i < 30; i++ {
		s.OnTick()
	}
	require.Len(t, pub.recs, 1)

	rec := pub.recs[0]
	assert.True(t, rec.Save1OK)
	assert.True(t, rec.Save2OK)
	assert.Zero(t, rec.Dropped)
	assert.False(t, rec.Time.IsZero())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Canonical, &doc))
	assert.Contains(t, doc, "party")
	assert.Contains(t, doc, "pokedex_seen")
}

func TestNew_InvalidCadenceUsesDefault(t *testing.T) {
	s, pub := newTestSampler(t, 0)

	for i := 0; i < DefaultCadence; i++ {
		s.OnTick()
	}
	assert.Len(t, pub.recs, 1)
}
