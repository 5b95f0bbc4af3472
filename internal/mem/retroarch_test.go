package mem

import (
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeCore serves READ_CORE_MEMORY over a loopback UDP socket, backed
// by the given image. Reads at rejectAddr answer "-1" the way a core
// refuses an unmapped region. Returns the port to dial.
func startFakeCore(t *testing.T, im *Image, rejectAddr uint32) int {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { pc.Close() })

	go func() {
		buf := make([]byte, 1024)
		for {
			n, addr, err := pc.ReadFrom(buf)
			if err != nil {
				return
			}
			var base uint32
			var count int
			if _, err := fmt.Sscanf(string(buf[:n]), "READ_CORE_MEMORY %x %d", &base, &count); err != nil {
				continue
			}

			var reply strings.Builder
			fmt.Fprintf(&reply, "READ_CORE_MEMORY %x", base)
			if rejectAddr != 0 && base == rejectAddr {
				reply.WriteString(" -1")
			} else {
				for i := 0; i < count; i++ {
					fmt.Fprintf(&reply, " %02x", im.ReadU8(base+uint32(i)))
				}
			}
			reply.WriteByte('\n')
			pc.WriteTo([]byte(reply.String()), addr)
		}
	}()
	return pc.LocalAddr().(*net.UDPAddr).Port
}

func dialFakeCore(t *testing.T, port int) *RetroArch {
	t.Helper()
	r, err := DialRetroArch("127.0.0.1", port, time.Second, nil)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestReadMemory_FullReply(t *testing.T) {
	im := NewImage()
	im.Map(0x03005008, []byte{0x34, 0x57, 0x02, 0x02})
	r := dialFakeCore(t, startFakeCore(t, im, 0))

	// The echoed 8-hex-digit address makes this the longest header the
	// protocol produces; the reply must survive it intact.
	b, err := r.ReadMemory(0x03005008, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x57, 0x02, 0x02}, b)
}

func TestReadMemory_Rejected(t *testing.T) {
	im := NewImage()
	r := dialFakeCore(t, startFakeCore(t, im, 0x0E000000))

	_, err := r.ReadMemory(0x0E000000, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestTypedReads_OverSocket(t *testing.T) {
	im := NewImage()
	im.Poke32(0x03005008, 0x02025734)
	im.Poke16(0x02024028, 0x0619)
	r := dialFakeCore(t, startFakeCore(t, im, 0x0E000000))

	assert.Equal(t, uint32(0x02025734), r.ReadU32(0x03005008))
	assert.Equal(t, uint16(0x0619), r.ReadU16(0x02024028))
	assert.Equal(t, uint8(0x34), r.ReadU8(0x03005008))

	// Rejected reads degrade to zero instead of surfacing an error.
	assert.Equal(t, uint32(0), r.ReadU32(0x0E000000))
}

func TestReadMemory_LargeRead(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	im := NewImage()
	im.Map(0x02024284, data)
	r := dialFakeCore(t, startFakeCore(t, im, 0))

	b, err := r.ReadMemory(0x02024284, 100)
	require.NoError(t, err)
	assert.Equal(t, data, b)
}

func TestParseReadReply(t *testing.T) {
	b, err := parseReadReply("READ_CORE_MEMORY 2024284 19 1 ff 0\n", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x19, 0x01, 0xFF, 0x00}, b)
}

func TestParseReadReplyRejected(t *testing.T) {
	_, err := parseReadReply("READ_CORE_MEMORY 2024284 -1\n", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestParseReadReplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		n     int
	}{
		{"wrong command", "GET_STATUS PLAYING\n", 1},
		{"empty", "", 1},
		{"short reply", "READ_CORE_MEMORY 2024284 19 1\n", 4},
		{"non hex byte", "READ_CORE_MEMORY 2024284 zz\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseReadReply(tt.reply, tt.n)
			assert.Error(t, err)
		})
	}
}
