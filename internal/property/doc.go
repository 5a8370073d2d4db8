// Package property implements the self-describing binary encoding used for
// property values attached to graph heads, vertices and edges.
//
// Every encoded value starts with a one-byte Tag followed by a payload whose
// layout is owned by the Strategy registered for that tag:
//
//	Value    ::= Tag [Payload]
//	Tag 0x00 ->  unset/null, no payload
//	fixed    ->  exactly N bytes for N-byte numeric/boolean kinds
//	variable ->  4-byte big-endian length L, then L bytes
//	composite -> 4-byte big-endian count, then count nested Tag+Payload sequences
//
// Tags are persisted and must never be renumbered.
//
// # Registry
//
// A Registry maps native Go kinds and tag bytes to strategies. It is built once
// by NewRegistry and never mutated afterwards, so every lookup is a plain read
// and a single Registry can be shared by any number of goroutines. Builtin
// returns the process-wide registry holding every strategy in this package.
//
// # Values
//
// Value wraps one tagged buffer. Values are created from native values
// (Create), from bytes previously produced by this package (FromRawBytes), or
// from a stream (ReadValue). Equality is byte equality; ordering goes through
// Registry.Compare:
//   - same tag: the strategy's total order
//   - int16, int32, int64, float32, float64, decimal: numeric promotion
//   - anything else: ErrIncompatibleTypes
//   - unset sorts before every concrete value
//
// Values are not safe for concurrent mutation. To hand a value to another
// goroutine, copy it (Value.Copy or RawBytes followed by FromRawBytes).
package property
