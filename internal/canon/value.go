// Package canon renders decoded snapshots into the deterministic text
// encoding the external consumer parses. The structure of the output is
// fixed by construction: the document is built as an explicit tagged value
// tree, so whether something renders as a sequence or a map is decided by
// the builder, never inferred from the shape of the data at encode time.
package canon

// Kind tags a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMap
)

// Value is one node of the document tree. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Bool   bool
	Number float64
	Str    string
	Seq    []Value
	Map    []Member
}

// Member is one key/value pair of a map value. Members are kept as an
// ordered slice rather than a Go map: encode order is part of the output
// contract and must not depend on map iteration.
type Member struct {
	Key   string
	Value Value
}

func Null() Value            { return Value{Kind: KindNull} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// Int builds a number value from any unsigned or signed integer already
// widened by the caller.
func Int(n int64) Value { return Value{Kind: KindNumber, Number: float64(n)} }

// Uint builds a number value from an unsigned integer. All the decoded
// fields are at most 32 bits wide, so the float64 mantissa holds them
// exactly.
func Uint(n uint64) Value { return Value{Kind: KindNumber, Number: float64(n)} }

// Sequence builds an ordered sequence value. A nil or empty slice is the
// canonical empty sequence, not null and not a map.
func Sequence(items ...Value) Value { return Value{Kind: KindSequence, Seq: items} }

// Map builds a map value with the given member order.
func Map(members ...Member) Value { return Value{Kind: KindMap, Map: members} }

// Field is a convenience constructor for one map member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }
