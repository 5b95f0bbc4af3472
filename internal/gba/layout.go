// Package gba holds the memory layout constants for the target game build.
//
// Every address and offset in here is specific to one revision of the ROM.
// Running the decoder against a different build does not fail loudly: the
// save-region pointers simply stop validating, or worse, resolve to the
// wrong structures and decode garbage that the species validity gate then
// drops. Layout values are therefore grouped per revision and selected by
// name at startup.
package gba

// General-purpose RAM intervals of the platform. Save-region pointers must
// land inside EWRAM to be considered valid.
const (
	EWRAMStart uint32 = 0x02000000
	EWRAMEnd   uint32 = 0x02040000
)

// Fixed sizes of the party record format. These are format constants, not
// revision constants: they hold for every build of the engine.
const (
	MaxPartySize = 6
	MonSize      = 100 // bytes per party record

	// Encrypted region inside a record: four 12-byte sub-blocks.
	MonCryptOffset = 32
	MonSubBlockLen = 12

	// Plain fields outside the encrypted region.
	MonPIDOffset    = 0
	MonOTIDOffset   = 4
	MonStatusOffset = 80
	MonLevelOffset  = 84
	MonHPOffset     = 86
	MonMaxHPOffset  = 88

	// Highest internal species id the engine defines. Values of 0 or above
	// this are impossible for a real record and mark a failed decode.
	SpeciesMax = 411

	// Species covered by the dex bitfield regions (national order).
	DexSpecies   = 386
	DexFlagBytes = 49
)

// Layout names the cells and offsets the decoder reads for one ROM build.
// SaveBlock offsets are relative to the resolved region pointers; battle
// globals are absolute EWRAM addresses.
type Layout struct {
	Name string

	// IWRAM cells holding the two save-region pointers.
	SaveBlock1Ptr uint32
	SaveBlock2Ptr uint32

	// SaveBlock1 offsets.
	PlayerX    uint32 // s16
	PlayerY    uint32 // s16
	MapNumber  uint32 // u8
	Money      uint32 // u32, XORed with the security key
	BadgeFlags uint32 // the single byte of the flag array holding all 8 badges

	// SaveBlock2 offsets.
	MoneyKey  uint32 // u32 security key
	DexCaught uint32 // DexFlagBytes-long bitfield
	DexSeen   uint32 // DexFlagBytes-long bitfield

	// Absolute EWRAM addresses.
	PartyCount      uint32 // u8
	Party           uint32 // MaxPartySize * MonSize bytes
	BattleTypeFlags uint32 // u32, bit 3 = trainer battle
	BattlersCount   uint32 // u8
	BattleOutcome   uint32 // u8, 0 while the battle is ongoing
}

// BattleTypeTrainer is the bit inside BattleTypeFlags that distinguishes a
// trainer battle from a wild encounter.
const BattleTypeTrainer uint32 = 1 << 3

// FireRedRev0 is the US v1.0 build (BPRE rev 0).
func FireRedRev0() Layout {
	return Layout{
		Name: "firered-us-rev0",

		SaveBlock1Ptr: 0x03005008,
		SaveBlock2Ptr: 0x0300500C,

		PlayerX:    0x0000,
		PlayerY:    0x0002,
		MapNumber:  0x0005,
		Money:      0x0290,
		BadgeFlags: 0x0FE4,

		MoneyKey:  0x0F20,
		DexCaught: 0x0028,
		DexSeen:   0x0059,

		PartyCount:      0x02024029,
		Party:           0x02024284,
		BattleTypeFlags: 0x02022B4C,
		BattlersCount:   0x02023BCC,
		BattleOutcome:   0x02023E8A,
	}
}

// ByName returns the layout registered under name. The bool reports whether
// the name is known.
func ByName(name string) (Layout, bool) {
	switch name {
	case "", "firered-us-rev0":
		return FireRedRev0(), true
	default:
		return Layout{}, false
	}
}
