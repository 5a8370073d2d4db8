package property

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// fixed reads a payload of exactly len(buf) bytes into buf.
func fixed(r Reader, buf []byte, t Tag) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return readError(t, err)
	}
	return nil
}

// sized checks that both raw payloads have exactly n bytes.
func sized(a, b []byte, n int, t Tag) error {
	if len(a) != n || len(b) != n {
		return corrupt(t, "payload must be %d bytes, got %d and %d", n, len(a), len(b))
	}
	return nil
}

// Byte written for true. Decoding treats any other byte as false so that
// data written by lenient producers remains readable; encodings are always
// 0xFF or 0x00.
const (
	boolTrue  byte = 0xFF
	boolFalse byte = 0x00
)

type boolStrategy struct{}

func (boolStrategy) Tag() Tag   { return TagBool }
func (boolStrategy) Kind() Kind { return KindBool }

func (boolStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	if v.(bool) {
		return append(dst, boolTrue), nil
	}
	return append(dst, boolFalse), nil
}

func (boolStrategy) Read(r Reader, _ Nested) (any, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, readError(TagBool, err)
	}
	return b == boolTrue, nil
}

func (boolStrategy) Compare(a, b any, _ Nested) (int, error) {
	return compareBool(a.(bool), b.(bool)), nil
}

func (boolStrategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 1, TagBool); err != nil {
		return 0, err
	}
	return compareBool(a[0] == boolTrue, b[0] == boolTrue), nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

type shortStrategy struct{}

func (shortStrategy) Tag() Tag   { return TagShort }
func (shortStrategy) Kind() Kind { return KindShort }

func (shortStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return binary.BigEndian.AppendUint16(dst, uint16(v.(int16))), nil
}

func (shortStrategy) Read(r Reader, _ Nested) (any, error) {
	var b [2]byte
	if err := fixed(r, b[:], TagShort); err != nil {
		return nil, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

func (shortStrategy) Compare(a, b any, _ Nested) (int, error) {
	return cmp.Compare(a.(int16), b.(int16)), nil
}

func (shortStrategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 2, TagShort); err != nil {
		return 0, err
	}
	return cmp.Compare(int16(binary.BigEndian.Uint16(a)), int16(binary.BigEndian.Uint16(b))), nil
}

type int32Strategy struct{}

func (int32Strategy) Tag() Tag   { return TagInt32 }
func (int32Strategy) Kind() Kind { return KindInt32 }

func (int32Strategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return binary.BigEndian.AppendUint32(dst, uint32(v.(int32))), nil
}

func (int32Strategy) Read(r Reader, _ Nested) (any, error) {
	var b [4]byte
	if err := fixed(r, b[:], TagInt32); err != nil {
		return nil, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (int32Strategy) Compare(a, b any, _ Nested) (int, error) {
	return cmp.Compare(a.(int32), b.(int32)), nil
}

func (int32Strategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 4, TagInt32); err != nil {
		return 0, err
	}
	return cmp.Compare(int32(binary.BigEndian.Uint32(a)), int32(binary.BigEndian.Uint32(b))), nil
}

type int64Strategy struct{}

func (int64Strategy) Tag() Tag   { return TagInt64 }
func (int64Strategy) Kind() Kind { return KindInt64 }

func (int64Strategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return binary.BigEndian.AppendUint64(dst, uint64(v.(int64))), nil
}

func (int64Strategy) Read(r Reader, _ Nested) (any, error) {
	var b [8]byte
	if err := fixed(r, b[:], TagInt64); err != nil {
		return nil, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (int64Strategy) Compare(a, b any, _ Nested) (int, error) {
	return cmp.Compare(a.(int64), b.(int64)), nil
}

func (int64Strategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 8, TagInt64); err != nil {
		return 0, err
	}
	return cmp.Compare(int64(binary.BigEndian.Uint64(a)), int64(binary.BigEndian.Uint64(b))), nil
}

// Floats order with cmp.Compare: NaN sorts before every other value and
// equals itself, which keeps the order total.

type float32Strategy struct{}

func (float32Strategy) Tag() Tag   { return TagFloat32 }
func (float32Strategy) Kind() Kind { return KindFloat32 }

func (float32Strategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(v.(float32))), nil
}

func (float32Strategy) Read(r Reader, _ Nested) (any, error) {
	var b [4]byte
	if err := fixed(r, b[:], TagFloat32); err != nil {
		return nil, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b[:])), nil
}

func (float32Strategy) Compare(a, b any, _ Nested) (int, error) {
	return cmp.Compare(a.(float32), b.(float32)), nil
}

func (float32Strategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 4, TagFloat32); err != nil {
		return 0, err
	}
	x := math.Float32frombits(binary.BigEndian.Uint32(a))
	y := math.Float32frombits(binary.BigEndian.Uint32(b))
	return cmp.Compare(x, y), nil
}

type float64Strategy struct{}

func (float64Strategy) Tag() Tag   { return TagFloat64 }
func (float64Strategy) Kind() Kind { return KindFloat64 }

func (float64Strategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(v.(float64))), nil
}

func (float64Strategy) Read(r Reader, _ Nested) (any, error) {
	var b [8]byte
	if err := fixed(r, b[:], TagFloat64); err != nil {
		return nil, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[:])), nil
}

func (float64Strategy) Compare(a, b any, _ Nested) (int, error) {
	return cmp.Compare(a.(float64), b.(float64)), nil
}

func (float64Strategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, 8, TagFloat64); err != nil {
		return 0, err
	}
	x := math.Float64frombits(binary.BigEndian.Uint64(a))
	y := math.Float64frombits(binary.BigEndian.Uint64(b))
	return cmp.Compare(x, y), nil
}

// idStrategy encodes graph element identifiers as their 16 raw bytes.
type idStrategy struct{}

func (idStrategy) Tag() Tag   { return TagID }
func (idStrategy) Kind() Kind { return KindID }

func (idStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	id := v.(uuid.UUID)
	return append(dst, id[:]...), nil
}

func (idStrategy) Read(r Reader, _ Nested) (any, error) {
	var id uuid.UUID
	if err := fixed(r, id[:], TagID); err != nil {
		return nil, err
	}
	return id, nil
}

func (idStrategy) Compare(a, b any, _ Nested) (int, error) {
	x, y := a.(uuid.UUID), b.(uuid.UUID)
	return bytes.Compare(x[:], y[:]), nil
}

func (idStrategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, len(uuid.UUID{}), TagID); err != nil {
		return 0, err
	}
	return bytes.Compare(a, b), nil
}

// dateTimeStrategy stores an instant as 8 bytes of Unix seconds followed by
// 4 bytes of nanoseconds. The location is not kept; decoded times are UTC.
type dateTimeStrategy struct{}

const dateTimeSize = 12

func (dateTimeStrategy) Tag() Tag   { return TagDateTime }
func (dateTimeStrategy) Kind() Kind { return KindDateTime }

func (dateTimeStrategy) AppendPayload(dst []byte, v any, _ Nested) ([]byte, error) {
	t := v.(time.Time)
	dst = binary.BigEndian.AppendUint64(dst, uint64(t.Unix()))
	return binary.BigEndian.AppendUint32(dst, uint32(t.Nanosecond())), nil
}

func (dateTimeStrategy) Read(r Reader, _ Nested) (any, error) {
	var b [dateTimeSize]byte
	if err := fixed(r, b[:], TagDateTime); err != nil {
		return nil, err
	}
	sec, nsec, err := splitDateTime(b[:])
	if err != nil {
		return nil, err
	}
	return time.Unix(sec, nsec).UTC(), nil
}

func (dateTimeStrategy) Compare(a, b any, _ Nested) (int, error) {
	return a.(time.Time).Compare(b.(time.Time)), nil
}

func (dateTimeStrategy) CompareRaw(a, b []byte) (int, error) {
	if err := sized(a, b, dateTimeSize, TagDateTime); err != nil {
		return 0, err
	}
	as, an, err := splitDateTime(a)
	if err != nil {
		return 0, err
	}
	bs, bn, err := splitDateTime(b)
	if err != nil {
		return 0, err
	}
	if c := cmp.Compare(as, bs); c != 0 {
		return c, nil
	}
	return cmp.Compare(an, bn), nil
}

func splitDateTime(b []byte) (int64, int64, error) {
	sec := int64(binary.BigEndian.Uint64(b[:8]))
	nsec := int64(binary.BigEndian.Uint32(b[8:]))
	if nsec >= int64(time.Second) {
		return 0, 0, corrupt(TagDateTime, "nanoseconds %d out of range", nsec)
	}
	return sec, nsec, nil
}
