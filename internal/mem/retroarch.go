package mem

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RetroArch is a Reader backed by RetroArch's UDP network command
// interface (READ_CORE_MEMORY). The emulated GBA address space is exposed
// under its native addresses, so the decoder's layout constants apply
// unchanged.
//
// The Reader methods have no error path by contract; a failed network read
// is logged at debug level and surfaces as zero, the same defaulting the
// decoder already applies to unavailable regions.
type RetroArch struct {
	mu      sync.Mutex
	conn    net.Conn
	timeout time.Duration
	logger  *slog.Logger
}

// DialRetroArch connects to a RetroArch instance listening on the network
// command port (default 55355).
func DialRetroArch(host string, port int, timeout time.Duration, logger *slog.Logger) (*RetroArch, error) {
	conn, err := net.Dial("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("dial retroarch: %w", err)
	}
	return &RetroArch{conn: conn, timeout: timeout, logger: logger}, nil
}

// Close releases the UDP socket.
func (r *RetroArch) Close() error {
	return r.conn.Close()
}

// ReadMemory requests n bytes at addr from the running core.
func (r *RetroArch) ReadMemory(addr uint32, n int) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := fmt.Sprintf("READ_CORE_MEMORY %x %d", addr, n)
	if err := r.conn.SetDeadline(time.Now().Add(r.timeout)); err != nil {
		return nil, err
	}
	if _, err := r.conn.Write([]byte(cmd)); err != nil {
		return nil, fmt.Errorf("send %q: %w", cmd, err)
	}

	// One datagram per reply; a short buffer would drop the tail. The
	// header is "READ_CORE_MEMORY " plus the echoed address (up to 8 hex
	// digits), then up to 3 bytes of text per requested byte.
	buf := make([]byte, 32+n*3)
	rd, err := r.conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("read reply for %q: %w", cmd, err)
	}
	return parseReadReply(string(buf[:rd]), n)
}

// parseReadReply decodes a "READ_CORE_MEMORY <addr> <b0> <b1> ..." reply.
// RetroArch answers "-1" after the address when the core rejects the read.
func parseReadReply(reply string, n int) ([]byte, error) {
	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) < 3 || fields[0] != "READ_CORE_MEMORY" {
		return nil, fmt.Errorf("unexpected reply %q", reply)
	}
	if fields[2] == "-1" {
		return nil, fmt.Errorf("core rejected read at %s", fields[1])
	}
	raw := fields[2:]
	if len(raw) < n {
		return nil, fmt.Errorf("short reply: want %d bytes, got %d", n, len(raw))
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := strconv.ParseUint(raw[i], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad byte %q in reply", raw[i])
		}
		out[i] = uint8(b)
	}
	return out, nil
}

func (r *RetroArch) read(addr uint32, n int) []byte {
	b, err := r.ReadMemory(addr, n)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("Memory read failed", "addr", fmt.Sprintf("%08x", addr), "error", err)
		}
		return make([]byte, n)
	}
	return b
}

func (r *RetroArch) ReadU8(addr uint32) uint8 {
	return r.read(addr, 1)[0]
}

func (r *RetroArch) ReadU16(addr uint32) uint16 {
	b := r.read(addr, 2)
	return uint16(b[0]) | uint16(b[1])<<8
}

func (r *RetroArch) ReadU32(addr uint32) uint32 {
	b := r.read(addr, 4)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
