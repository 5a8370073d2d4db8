package property

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/apd/v3"
)

// Variable-width payloads are a 4-byte big-endian length followed by that
// many bytes of content.

func appendPrefixed(dst, content []byte, t Tag) ([]byte, error) {
	dst, err := appendLen(dst, len(content), t)
	if err != nil {
		return nil, err
	}
	return append(dst, content...), nil
}

func readPrefixed(r Reader, t Tag) ([]byte, error) {
	n, err := readLen(r, t)
	if err != nil {
		return nil, err
	}
	return readN(r, n, t)
}

// prefixedContent returns the content of a raw length-prefixed payload.
func prefixedContent(p []byte, t Tag) ([]byte, error) {
	if len(p) < 4 {
		return nil, corrupt(t, "payload of %d bytes has no length prefix", len(p))
	}
	n := binary.BigEndian.Uint32(p)
	if uint64(n) != uint64(len(p)-4) {
		return nil, corrupt(t, "declared length %d, have %d bytes", n, len(p)-4)
	}
	return p[4:], nil
}

func comparePrefixed(a, b []byte, t Tag) (int, error) {
	x, err := prefixedContent(a, t)
	if err != nil {
		return 0, err
	}
	y, err := prefixedContent(b, t)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(x, y), nil
}

// stringStrategy orders strings by their UTF-8 bytes. Content is not
// validated as UTF-8.
type stringStrategy struct{}

func (stringStrategy) Tag() Tag   { return TagString }
func (stringStrategy) Kind() Kind { return KindString }

func (stringStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	s := v.(string)
	dst, err := appendLen(dst, len(s), TagString)
	if err != nil {
		return nil, err
	}
	return append(dst, s...), nil
}

func (stringStrategy) Read(r Reader, _ Nested) (any, error) {
	b, err := readPrefixed(r, TagString)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (stringStrategy) Compare(a, b any, _ Nested) (int, error) {
	x, y := a.(string), b.(string)
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

func (stringStrategy) CompareRaw(a, b []byte) (int, error) {
	return comparePrefixed(a, b, TagString)
}

type bytesStrategy struct{}

func (bytesStrategy) Tag() Tag   { return TagBytes }
func (bytesStrategy) Kind() Kind { return KindBytes }

func (bytesStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return appendPrefixed(dst, v.([]byte), TagBytes)
}

func (bytesStrategy) Read(r Reader, _ Nested) (any, error) {
	return readPrefixed(r, TagBytes)
}

func (bytesStrategy) Compare(a, b any, _ Nested) (int, error) {
	return bytes.Compare(a.([]byte), b.([]byte)), nil
}

func (bytesStrategy) CompareRaw(a, b []byte) (int, error) {
	return comparePrefixed(a, b, TagBytes)
}

// decimalStrategy stores arbitrary-precision decimals in their textual form,
// which keeps coefficient and exponent exactly.
type decimalStrategy struct{}

func (decimalStrategy) Tag() Tag   { return TagDecimal }
func (decimalStrategy) Kind() Kind { return KindDecimal }

func (decimalStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return appendPrefixed(dst, []byte(v.(*apd.Decimal).String()), TagDecimal)
}

func (decimalStrategy) Read(r Reader, _ Nested) (any, error) {
	b, err := readPrefixed(r, TagDecimal)
	if err != nil {
		return nil, err
	}
	d, _, err := apd.NewFromString(string(b))
	if err != nil {
		return nil, corrupt(TagDecimal, "invalid decimal %q", b)
	}
	return d, nil
}

func (decimalStrategy) Compare(a, b any, _ Nested) (int, error) {
	return compareDecimal(a.(*apd.Decimal), b.(*apd.Decimal)), nil
}

// compareDecimal orders decimals numerically, so 1.0 equals 1.00. NaNs sort
// first, matching the float order.
func compareDecimal(a, b *apd.Decimal) int {
	an, bn := isNaN(a), isNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}
	return a.Cmp(b)
}

func isNaN(d *apd.Decimal) bool {
	return d.Form == apd.NaN || d.Form == apd.NaNSignaling
}
