package canon

import (
	"bytes"
	"strconv"
)

// Encode renders the value tree as its canonical text form. The same tree
// always produces the same bytes: member order is the builder's order and
// number formatting is deterministic.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	encodeValue(&buf, v)
	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(formatNumber(v.Number))
	case KindString:
		encodeString(buf, v.Str)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.Seq {
			if i > 0 {
				buf.WriteString(", ")
			}
			encodeValue(buf, item)
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, m := range v.Map {
			if i > 0 {
				buf.WriteString(", ")
			}
			encodeString(buf, m.Key)
			buf.WriteString(": ")
			encodeValue(buf, m.Value)
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
}

// formatNumber prints integral values without a fractional part and
// everything else with the shortest round-trippable representation.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// encodeString writes a double-quoted string with the five escapes the
// consumer understands. Other control bytes pass through unmodified; the
// decoded fields never contain them.
func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}
