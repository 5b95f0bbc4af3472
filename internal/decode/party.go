package decode

import (
	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/model"
)

// decodeRoster reads the raw party count, decrypts each record and keeps
// the ones that pass the species validity gate, in original slot order.
// A raw count above the declared maximum is clamped, not treated as an
// error; that is the upstream-declared behavior for the count signal.
func (d *Decoder) decodeRoster() ([]model.RosterRecord, []DroppedRecord) {
	count := int(d.mem.ReadU8(d.layout.PartyCount))
	if count > gba.MaxPartySize {
		count = gba.MaxPartySize
	}

	var roster []model.RosterRecord
	var dropped []DroppedRecord

	for slot := 0; slot < count; slot++ {
		base := d.layout.Party + uint32(slot*gba.MonSize)
		rec, pid, otid, ok := d.decodeRecord(base)
		if !ok {
			dropped = append(dropped, DroppedRecord{
				Slot: slot, PID: pid, OTID: otid, Species: rec.Species,
			})
			d.logger.Warn("Dropped invalid party record",
				"slot", slot, "pid", pid, "otid", otid, "species", rec.Species)
			continue
		}
		roster = append(roster, rec)
	}
	return roster, dropped
}

// decodeRecord decrypts one party record. The encrypted region holds four
// 12-byte sub-blocks whose physical order is a function of PID mod 24; the
// decryption key is PID XOR OTID. Every XOR result is masked to 32 bits:
// the host integer may be wider than the field and must not retain high
// bits, which is the classic corruption source in this format.
func (d *Decoder) decodeRecord(base uint32) (rec model.RosterRecord, pid, otid uint32, ok bool) {
	pid = d.mem.ReadU32(base + gba.MonPIDOffset)
	otid = d.mem.ReadU32(base + gba.MonOTIDOffset)
	key := (pid ^ otid) & 0xFFFFFFFF

	perm := pid % 24
	growth := d.decryptSubBlock(base, growthSlot[perm], key)
	attacks := d.decryptSubBlock(base, attacksSlot[perm], key)

	rec.Species = uint16(growth[0] & 0xFFFF)
	rec.Experience = growth[1]

	rec.Abilities[0] = uint16(attacks[0] & 0xFFFF)
	rec.Abilities[1] = uint16(attacks[0] >> 16)
	rec.Abilities[2] = uint16(attacks[1] & 0xFFFF)
	rec.Abilities[3] = uint16(attacks[1] >> 16)

	rec.Status = d.mem.ReadU32(base + gba.MonStatusOffset)
	rec.Level = d.mem.ReadU8(base + gba.MonLevelOffset)
	rec.HP = d.mem.ReadU16(base + gba.MonHPOffset)
	rec.MaxHP = d.mem.ReadU16(base + gba.MonMaxHPOffset)

	// Validity gate: the only integrity check performed on a record. A
	// species of 0 or past the engine's table means the decrypt produced
	// garbage (or the slot is simply empty).
	ok = rec.Species > 0 && rec.Species <= gba.SpeciesMax
	return rec, pid, otid, ok
}

// decryptSubBlock XORs the three 32-bit words of the physical sub-block at
// the given slot index with the record key.
func (d *Decoder) decryptSubBlock(base uint32, slot int, key uint32) [3]uint32 {
	var words [3]uint32
	addr := base + gba.MonCryptOffset + uint32(slot*gba.MonSubBlockLen)
	for i := range words {
		words[i] = (d.mem.ReadU32(addr+uint32(i*4)) ^ key) & 0xFFFFFFFF
	}
	return words
}
