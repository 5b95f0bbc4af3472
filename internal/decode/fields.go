package decode

import (
	"math/bits"

	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/model"
)

// decodePlayer reads the unencrypted overworld fields. Position, map and
// badges live in the first save region; the currency XOR key lives in the
// second, so currency needs both regions to be available.
func (d *Decoder) decodePlayer(save1 uint32, ok1 bool, save2 uint32, ok2 bool) model.PlayerState {
	var p model.PlayerState
	if !ok1 {
		return p
	}

	p.X = int16(d.mem.ReadU16(save1 + d.layout.PlayerX))
	p.Y = int16(d.mem.ReadU16(save1 + d.layout.PlayerY))
	p.MapID = d.mem.ReadU8(save1 + d.layout.MapNumber)

	p.Badges = d.mem.ReadU8(save1 + d.layout.BadgeFlags)
	p.BadgeCount = bits.OnesCount8(p.Badges)

	if ok2 {
		stored := d.mem.ReadU32(save1 + d.layout.Money)
		key := d.mem.ReadU32(save2 + d.layout.MoneyKey)
		p.Money = (stored ^ key) & 0xFFFFFFFF
	}

	return p
}

// decodeBattle classifies the battle phase from three independent signals:
// active participant count, the type-flags word, and the outcome code. The
// outcome code is passed through raw. A battle counts as in progress only
// while at least two participants are active and the outcome is still
// ongoing; everything else is phase none regardless of the other flags.
func (d *Decoder) decodeBattle() model.BattleState {
	var b model.BattleState

	participants := d.mem.ReadU8(d.layout.BattlersCount)
	typeFlags := d.mem.ReadU32(d.layout.BattleTypeFlags)
	b.Outcome = d.mem.ReadU8(d.layout.BattleOutcome)

	if participants >= 2 && b.Outcome == model.OutcomeOngoing {
		if typeFlags&gba.BattleTypeTrainer != 0 {
			b.Phase = model.PhaseTrainer
		} else {
			b.Phase = model.PhaseWild
		}
	}
	return b
}
