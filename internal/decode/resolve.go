package decode

import "github.com/retrosnap/firered/internal/gba"

// resolveRegion dereferences one save-region pointer cell and validates the
// target. A zero pointer or one outside general-purpose EWRAM marks the
// region unavailable; that is an expected state during boot and title
// screens, not an error.
func (d *Decoder) resolveRegion(ptrCell uint32) (base uint32, ok bool) {
	base = d.mem.ReadU32(ptrCell)
	if base == 0 || base < gba.EWRAMStart || base >= gba.EWRAMEnd {
		return 0, false
	}
	return base, true
}
