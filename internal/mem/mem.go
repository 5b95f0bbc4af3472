// Package mem provides typed little-endian access to the emulated memory
// space of the running game.
package mem

// Reader is the host-provided view of the emulated address space. All reads
// are little-endian and unsigned; there is no error path because a read
// outside the emulated space is a host contract violation, not a condition
// this layer handles.
//
// Return types carry exactly the requested width. Callers combining reads
// into wider values must mask after every arithmetic or XOR step so that a
// wider host representation can never leak sign-extended high bits into a
// decoded field.
type Reader interface {
	ReadU8(addr uint32) uint8
	ReadU16(addr uint32) uint16
	ReadU32(addr uint32) uint32
}

// ReadBytes copies n bytes starting at addr using byte-wide reads.
func ReadBytes(r Reader, addr uint32, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = r.ReadU8(addr + uint32(i))
	}
	return buf
}
