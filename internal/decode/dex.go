package decode

import (
	"math/bits"

	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/mem"
	"github.com/retrosnap/firered/internal/model"
)

// decodeDex counts the seen and caught bitfield regions in the second save
// region. The two regions are processed independently even though they
// share a layout.
func (d *Decoder) decodeDex(save2 uint32, ok2 bool) model.DexState {
	var dex model.DexState
	if !ok2 {
		return dex
	}

	seen := mem.ReadBytes(d.mem, save2+d.layout.DexSeen, gba.DexFlagBytes)
	caught := mem.ReadBytes(d.mem, save2+d.layout.DexCaught, gba.DexFlagBytes)

	dex.Seen = popCount(seen)
	dex.Caught = popCount(caught)

	if d.opts.TrackDexIDs {
		dex.SeenIDs = setBitIDs(seen, gba.DexSpecies)
		dex.CaughtIDs = setBitIDs(caught, gba.DexSpecies)
	}
	return dex
}

// popCount returns the number of set bits across the byte range.
func popCount(region []byte) int {
	n := 0
	for _, b := range region {
		n += bits.OnesCount8(b)
	}
	return n
}

// setBitIDs returns the 1-based ordinal of every set bit, capped at max.
// Bit i of byte j flags species 8*j+i+1.
func setBitIDs(region []byte, max int) []uint16 {
	var ids []uint16
	for j, b := range region {
		for i := 0; i < 8; i++ {
			if b&(1<<i) == 0 {
				continue
			}
			id := j*8 + i + 1
			if id > max {
				return ids
			}
			ids = append(ids, uint16(id))
		}
	}
	return ids
}
