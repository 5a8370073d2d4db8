package property

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Value is a property value: one tagged buffer. The zero Value is unset.
type Value struct {
	raw []byte
}

// Null is the unset value.
var Null = Value{}

// Create encodes v with the builtin registry. A nil value or an unsupported
// kind yields the unset value rather than an error, so one unknown property
// never aborts writing an element.
func Create(v any) (Value, error) {
	return Builtin().Create(v)
}

// Create encodes v with r. See the package-level Create.
func (r *Registry) Create(v any) (Value, error) {
	b, err := r.Encode(v)
	if err != nil {
		return Null, err
	}
	if len(b) == 0 {
		return Null, nil
	}
	return Value{raw: b}, nil
}

// FromRawBytes wraps a buffer produced by this package without validating
// it. The buffer is retained, not copied; decoding errors surface on first
// typed access.
func FromRawBytes(b []byte) Value {
	if len(b) == 0 {
		return Null
	}
	return Value{raw: b}
}

// ReadValue reads one tagged value from in and keeps its encoded bytes.
// It returns io.EOF when in is exhausted before a tag byte.
func ReadValue(in io.Reader) (Value, error) {
	return Builtin().ReadValue(in)
}

// ReadValue reads one tagged value from in using r to find where the payload
// ends. See the package-level ReadValue.
func (r *Registry) ReadValue(in io.Reader) (Value, error) {
	rec := &recorder{r: asReader(in)}
	if _, err := r.readTagged(rec, 0); err != nil {
		return Null, err
	}
	return Value{raw: rec.buf}, nil
}

// recorder keeps a copy of every byte read through it.
type recorder struct {
	r   Reader
	buf []byte
}

func (rec *recorder) Read(p []byte) (int, error) {
	n, err := rec.r.Read(p)
	rec.buf = append(rec.buf, p[:n]...)
	return n, err
}

func (rec *recorder) ReadByte() (byte, error) {
	b, err := rec.r.ReadByte()
	if err == nil {
		rec.buf = append(rec.buf, b)
	}
	return b, err
}

// Type returns the value's tag, or TagNull when unset.
func (v Value) Type() Tag {
	if len(v.raw) == 0 {
		return TagNull
	}
	return Tag(v.raw[0])
}

// IsNull reports whether v is unset or an explicit null.
func (v Value) IsNull() bool {
	return v.Type() == TagNull
}

// RawBytes returns the encoded buffer unchanged. The caller must not modify it.
func (v Value) RawBytes() []byte {
	return v.raw
}

// Copy returns a value backed by its own buffer.
func (v Value) Copy() Value {
	return FromRawBytes(slices.Clone(v.raw))
}

// Set replaces the whole buffer with the encoding of x. On error v is left
// unchanged.
func (v *Value) Set(x any) error {
	nv, err := Create(x)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// Equal reports whether both buffers are byte-identical.
func (v Value) Equal(o Value) bool {
	return bytes.Equal(v.raw, o.raw)
}

// Compare orders v against o using the builtin registry.
func (v Value) Compare(o Value) (int, error) {
	return Builtin().Compare(v, o)
}

// Native decodes v into its native Go value. Unset decodes to nil.
func (v Value) Native() (any, error) {
	return Builtin().Decode(v.raw)
}

// MarshalBinary returns a copy of the encoded buffer.
func (v Value) MarshalBinary() ([]byte, error) {
	return slices.Clone(v.raw), nil
}

// UnmarshalBinary stores a copy of b without validating it.
func (v *Value) UnmarshalBinary(b []byte) error {
	*v = FromRawBytes(slices.Clone(b))
	return nil
}

// WriteTo writes the encoded buffer to w.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.raw)
	return int64(n), err
}

func (v Value) String() string {
	if v.IsNull() {
		return "NULL"
	}
	x, err := v.Native()
	if err != nil {
		return fmt.Sprintf("<%s %s>", v.Type(), hex.EncodeToString(v.raw[1:]))
	}
	return Format(x)
}

// Format renders a native value the way Value.String does.
func Format(x any) string {
	switch x := x.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case *apd.Decimal:
		return x.String()
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case []byte:
		return hex.EncodeToString(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := sortedKeys(x)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + Format(x[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(x)
}

// as decodes v after checking it carries tag t.
func as[T any](v Value, t Tag) (T, error) {
	var zero T
	if got := v.Type(); got != t {
		return zero, typeMismatch(t, got)
	}
	x, err := Builtin().Decode(v.raw)
	if err != nil {
		return zero, err
	}
	return x.(T), nil
}

func (v Value) IsBool() bool     { return v.Type() == TagBool }
func (v Value) IsShort() bool    { return v.Type() == TagShort }
func (v Value) IsInt32() bool    { return v.Type() == TagInt32 }
func (v Value) IsInt64() bool    { return v.Type() == TagInt64 }
func (v Value) IsFloat32() bool  { return v.Type() == TagFloat32 }
func (v Value) IsFloat64() bool  { return v.Type() == TagFloat64 }
func (v Value) IsString() bool   { return v.Type() == TagString }
func (v Value) IsDecimal() bool  { return v.Type() == TagDecimal }
func (v Value) IsID() bool       { return v.Type() == TagID }
func (v Value) IsMap() bool      { return v.Type() == TagMap }
func (v Value) IsList() bool     { return v.Type() == TagList }
func (v Value) IsDateTime() bool { return v.Type() == TagDateTime }
func (v Value) IsBytes() bool    { return v.Type() == TagBytes }

// IsNumber reports whether v belongs to the numeric family.
func (v Value) IsNumber() bool { return v.Type().IsNumeric() }

// Typed accessors fail with ErrTypeMismatch when v carries another tag.

func (v Value) AsBool() (bool, error)            { return as[bool](v, TagBool) }
func (v Value) AsShort() (int16, error)          { return as[int16](v, TagShort) }
func (v Value) AsInt32() (int32, error)          { return as[int32](v, TagInt32) }
func (v Value) AsInt64() (int64, error)          { return as[int64](v, TagInt64) }
func (v Value) AsFloat32() (float32, error)      { return as[float32](v, TagFloat32) }
func (v Value) AsFloat64() (float64, error)      { return as[float64](v, TagFloat64) }
func (v Value) AsString() (string, error)        { return as[string](v, TagString) }
func (v Value) AsDecimal() (*apd.Decimal, error) { return as[*apd.Decimal](v, TagDecimal) }
func (v Value) AsID() (uuid.UUID, error)         { return as[uuid.UUID](v, TagID) }
func (v Value) AsMap() (map[string]any, error)   { return as[map[string]any](v, TagMap) }
func (v Value) AsList() ([]any, error)           { return as[[]any](v, TagList) }
func (v Value) AsDateTime() (time.Time, error)   { return as[time.Time](v, TagDateTime) }
func (v Value) AsBytes() ([]byte, error)         { return as[[]byte](v, TagBytes) }
