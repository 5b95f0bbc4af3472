// Package decode turns the raw memory image of the running game into a
// typed snapshot: it resolves the save-region pointers, decodes the plain
// scalar fields, reverses the per-record XOR/permutation obfuscation on the
// party roster, and counts the dex bitfields.
//
// The decoder is best-effort by design. The source memory can be observed
// at any instant of an unrelated program's execution, including boot and
// transient states, so an unavailable region or an invalid record degrades
// that part of the snapshot to defaults instead of failing the whole tick.
package decode

import (
	"log/slog"

	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/mem"
	"github.com/retrosnap/firered/internal/model"
)

// DroppedRecord describes a party slot whose decode failed the species
// validity gate. Surfaced explicitly so callers and tests can distinguish
// "empty roster" from "roster decoded to garbage", which usually means the
// base address resolution is wrong for this build.
type DroppedRecord struct {
	Slot    int
	PID     uint32
	OTID    uint32
	Species uint16
}

// Result is one full decode outcome: the assembled snapshot plus the
// explicit degradations that occurred while producing it.
type Result struct {
	Snapshot model.GameSnapshot

	// Save1OK / Save2OK report whether the two save-region pointers
	// validated. When false, every field dependent on that region holds
	// its zero/empty default.
	Save1OK bool
	Save2OK bool

	Dropped []DroppedRecord
}

// Options tunes decoding behavior that is not layout-dependent.
type Options struct {
	// TrackDexIDs additionally collects the explicit seen/caught species
	// id lists rather than just the population counts.
	TrackDexIDs bool
}

// Decoder reads one memory layout revision through a mem.Reader.
type Decoder struct {
	mem    mem.Reader
	layout gba.Layout
	opts   Options
	logger *slog.Logger
}

// New creates a decoder for the given memory source and layout.
func New(r mem.Reader, layout gba.Layout, opts Options, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{mem: r, layout: layout, opts: opts, logger: logger}
}

// Decode produces one snapshot from the current memory contents. It never
// returns an error: every failure mode degrades to defaults and is reported
// through the Result fields.
func (d *Decoder) Decode() Result {
	var res Result

	save1, ok1 := d.resolveRegion(d.layout.SaveBlock1Ptr)
	save2, ok2 := d.resolveRegion(d.layout.SaveBlock2Ptr)
	res.Save1OK = ok1
	res.Save2OK = ok2

	res.Snapshot.Player = d.decodePlayer(save1, ok1, save2, ok2)
	res.Snapshot.Battle = d.decodeBattle()
	res.Snapshot.Roster, res.Dropped = d.decodeRoster()
	res.Snapshot.Dex = d.decodeDex(save2, ok2)

	return res
}
