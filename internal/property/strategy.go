package property

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// MaxDepth bounds the nesting of lists and maps, on encode and on decode.
const MaxDepth = 64

// Reader is the sequential input strategies decode from.
// *bytes.Reader and *bufio.Reader both satisfy it.
type Reader interface {
	io.Reader
	io.ByteReader
}

// Strategy is the codec and comparator for one tag. Implementations are
// stateless; composite strategies reach nested values through Nested.
type Strategy interface {
	// Tag returns the tag this strategy writes and reads.
	Tag() Tag

	// Kind returns the native kind this strategy owns.
	Kind() Kind

	// AppendPayload appends the payload of v, without the tag, to dst.
	// v must be of the strategy's Kind.
	AppendPayload(dst []byte, v any, n Nested) ([]byte, error)

	// Read consumes one payload, without the tag, from r.
	Read(r Reader, n Nested) (any, error)

	// Compare orders two native values of the strategy's Kind.
	Compare(a, b any, n Nested) (int, error)
}

// RawComparer is implemented by strategies whose payloads can be ordered
// without building native values. a and b are payloads without the tag.
type RawComparer interface {
	CompareRaw(a, b []byte) (int, error)
}

// Nested gives composite strategies access to the registry for their
// elements while tracking how deep the current value is nested.
type Nested struct {
	reg   *Registry
	depth int
}

// Append appends the tagged encoding of v to dst. Values of unsupported
// kinds are written as a bare null tag.
func (n Nested) Append(dst []byte, v any) ([]byte, error) {
	if n.depth >= MaxDepth {
		return nil, &Error{Code: CodeNestingTooDeep, Message: "value nests deeper than MaxDepth"}
	}
	return n.reg.appendTagged(dst, v, n.depth+1)
}

// Read reads one tagged value from r. A null tag yields nil.
func (n Nested) Read(r Reader) (any, error) {
	if n.depth >= MaxDepth {
		return nil, &Error{Code: CodeCorruptPayload, Message: "payload nests deeper than MaxDepth"}
	}
	v, err := n.reg.readTagged(r, n.depth+1)
	if err == io.EOF {
		return nil, &Error{Code: CodeCorruptPayload, Message: "nested value truncated"}
	}
	return v, err
}

// Compare orders two native element values using the registry rules.
func (n Nested) Compare(a, b any) (int, error) {
	return n.reg.compareNative(a, b, n.depth+1)
}

// noopStrategy is returned for native kinds nothing is registered for.
// It encodes to nothing, which callers observe as the unset value.
type noopStrategy struct{}

func (noopStrategy) Tag() Tag   { return TagNull }
func (noopStrategy) Kind() Kind { return KindUnknown }

func (noopStrategy) AppendPayload(dst []byte, _ any, _ Nested) ([]byte, error) {
	return dst, nil
}

func (noopStrategy) Read(Reader, Nested) (any, error) {
	return nil, nil
}

func (noopStrategy) Compare(any, any, Nested) (int, error) {
	return 0, nil
}

// asReader adapts r to Reader, buffering it if it cannot read single bytes.
// Buffering may consume input beyond the decoded value.
func asReader(r io.Reader) Reader {
	if br, ok := r.(Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// appendLen writes a 4-byte big-endian length or count.
func appendLen(dst []byte, n int, t Tag) ([]byte, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return nil, &Error{Code: CodeCorruptPayload, Tag: t, Message: "length exceeds 4-byte prefix"}
	}
	return binary.BigEndian.AppendUint32(dst, uint32(n)), nil
}

// readLen reads a 4-byte big-endian length or count.
func readLen(r Reader, t Tag) (int, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, readError(t, err)
	}
	n := binary.BigEndian.Uint32(b[:])
	if uint64(n) > math.MaxInt {
		return 0, corrupt(t, "length %d exceeds addressable size", n)
	}
	return int(n), nil
}

// streamChunk bounds how much is allocated ahead of data that has actually
// arrived when the total input size is not known.
const streamChunk = 64 << 10

// readN reads exactly n bytes. When r knows how much input remains, a length
// beyond it is rejected before anything is allocated; otherwise the buffer
// grows only as data arrives.
func readN(r Reader, n int, t Tag) ([]byte, error) {
	if l, ok := r.(interface{ Len() int }); ok && n > l.Len() {
		return nil, corrupt(t, "declared length %d exceeds remaining %d bytes", n, l.Len())
	}
	if n <= streamChunk {
		b := make([]byte, n)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, readError(t, err)
		}
		return b, nil
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		return nil, readError(t, err)
	}
	return buf.Bytes(), nil
}

// capHint bounds a pre-allocation for count elements, each at least one byte.
func capHint(r Reader, count int) int {
	if l, ok := r.(interface{ Len() int }); ok {
		return min(count, l.Len())
	}
	return min(count, 64)
}
