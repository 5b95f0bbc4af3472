package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/mem"
	"github.com/retrosnap/firered/internal/model"
)

func TestResolveRegion(t *testing.T) {
	l := gba.FireRedRev0()
	tests := []struct {
		name string
		ptr  uint32
		ok   bool
	}{
		{"null pointer", 0, false},
		{"below ewram", gba.EWRAMStart - 4, false},
		{"first ewram byte", gba.EWRAMStart, true},
		{"interior", fixSave1, true},
		{"end exclusive", gba.EWRAMEnd, false},
		{"past ewram", 0x03001000, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			im := mem.NewImage()
			im.Poke32(l.SaveBlock1Ptr, tc.ptr)
			d := newTestDecoder(im, Options{})

			base, ok := d.resolveRegion(l.SaveBlock1Ptr)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.ptr, base)
			} else {
				assert.Zero(t, base)
			}
		})
	}
}

func TestDecodeMoneyNeedsBothRegions(t *testing.T) {
	im := newFixture()
	l := gba.FireRedRev0()

	im.Poke32(fixSave2+l.MoneyKey, 0x0F0F0F0F)
	im.Poke32(fixSave1+l.Money, 999_999^0x0F0F0F0F)

	res := newTestDecoder(im, Options{}).Decode()
	assert.Equal(t, uint32(999_999), res.Snapshot.Player.Money)

	// Knock out the second region: the masked value must not leak through
	// undecoded, currency degrades to zero while position survives.
	im.Poke16(fixSave1+l.PlayerX, 40)
	im.Poke32(l.SaveBlock2Ptr, 0)
	res = newTestDecoder(im, Options{}).Decode()
	assert.False(t, res.Save2OK)
	assert.Zero(t, res.Snapshot.Player.Money)
	assert.Equal(t, int16(40), res.Snapshot.Player.X)
}

func TestDecodeBadgeCount(t *testing.T) {
	tests := []struct {
		flags uint8
		count int
	}{
		{0x00, 0},
		{0x01, 1},
		{0b1010_0101, 4},
		{0xFF, 8},
	}
	for _, tc := range tests {
		im := newFixture()
		im.Poke8(fixSave1+gba.FireRedRev0().BadgeFlags, tc.flags)

		res := newTestDecoder(im, Options{}).Decode()
		assert.Equal(t, tc.flags, res.Snapshot.Player.Badges)
		assert.Equal(t, tc.count, res.Snapshot.Player.BadgeCount)
	}
}

func TestDecodeBattleClassifier(t *testing.T) {
	l := gba.FireRedRev0()
	tests := []struct {
		name         string
		participants uint8
		typeFlags    uint32
		outcome      uint8
		phase        model.BattlePhase
	}{
		{"overworld", 0, 0, 0, model.PhaseNone},
		{"wild", 2, 0, model.OutcomeOngoing, model.PhaseWild},
		{"trainer", 2, gba.BattleTypeTrainer, model.OutcomeOngoing, model.PhaseTrainer},
		{"double trainer", 4, gba.BattleTypeTrainer | 1, model.OutcomeOngoing, model.PhaseTrainer},
		{"single battler", 1, gba.BattleTypeTrainer, model.OutcomeOngoing, model.PhaseNone},
		{"won last frame", 2, gba.BattleTypeTrainer, model.OutcomeWon, model.PhaseNone},
		{"fled", 2, 0, model.OutcomeFled, model.PhaseNone},
		{"captured", 2, 0, model.OutcomeCaptured, model.PhaseNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			im := newFixture()
			im.Poke8(l.BattlersCount, tc.participants)
			im.Poke32(l.BattleTypeFlags, tc.typeFlags)
			im.Poke8(l.BattleOutcome, tc.outcome)

			b := newTestDecoder(im, Options{}).Decode().Snapshot.Battle

			assert.Equal(t, tc.phase, b.Phase)
			assert.Equal(t, tc.outcome, b.Outcome)
			assert.Equal(t, tc.phase != model.PhaseNone, b.InBattle())
		})
	}
}
