package mem

import "encoding/binary"

// Image is a Reader over an in-process set of memory regions. It backs the
// decoder tests and offline decoding of memory dumps. Reads that land in no
// mapped region return zero, which mirrors what an uninitialized console
// address space looks like.
type Image struct {
	regions []region
}

type region struct {
	base uint32
	data []byte
}

// NewImage returns an empty image with no mapped regions.
func NewImage() *Image {
	return &Image{}
}

// Map places data into the address space starting at base. Later mappings
// shadow earlier ones.
func (im *Image) Map(base uint32, data []byte) {
	im.regions = append(im.regions, region{base: base, data: data})
}

// Poke8 writes a single byte, mapping a one-byte region if the address is
// not already covered.
func (im *Image) Poke8(addr uint32, v uint8) {
	for i := len(im.regions) - 1; i >= 0; i-- {
		r := im.regions[i]
		if addr >= r.base && addr < r.base+uint32(len(r.data)) {
			r.data[addr-r.base] = v
			return
		}
	}
	im.Map(addr, []byte{v})
}

// Poke32 writes a little-endian 32-bit value byte by byte.
func (im *Image) Poke32(addr uint32, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i, bb := range b {
		im.Poke8(addr+uint32(i), bb)
	}
}

// Poke16 writes a little-endian 16-bit value byte by byte.
func (im *Image) Poke16(addr uint32, v uint16) {
	im.Poke8(addr, uint8(v))
	im.Poke8(addr+1, uint8(v>>8))
}

func (im *Image) at(addr uint32) uint8 {
	for i := len(im.regions) - 1; i >= 0; i-- {
		r := im.regions[i]
		if addr >= r.base && addr < r.base+uint32(len(r.data)) {
			return r.data[addr-r.base]
		}
	}
	return 0
}

func (im *Image) ReadU8(addr uint32) uint8 {
	return im.at(addr)
}

func (im *Image) ReadU16(addr uint32) uint16 {
	return uint16(im.at(addr)) | uint16(im.at(addr+1))<<8
}

func (im *Image) ReadU32(addr uint32) uint32 {
	return uint32(im.at(addr)) |
		uint32(im.at(addr+1))<<8 |
		uint32(im.at(addr+2))<<16 |
		uint32(im.at(addr+3))<<24
}
