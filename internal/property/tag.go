package property

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Tag is the single-byte discriminant written in front of every encoded value.
type Tag byte

// Registered type tags. Values are persisted; never renumber them.
const (
	TagNull     Tag = 0x00
	TagBool     Tag = 0x01
	TagInt32    Tag = 0x02
	TagInt64    Tag = 0x03
	TagFloat32  Tag = 0x04
	TagFloat64  Tag = 0x05
	TagString   Tag = 0x06
	TagDecimal  Tag = 0x07
	TagID       Tag = 0x08
	TagMap      Tag = 0x09
	TagList     Tag = 0x0a
	TagDateTime Tag = 0x0d
	TagShort    Tag = 0x0e
	TagBytes    Tag = 0x10
)

// Reserved tags are assigned in persisted data written by other versions
// (date, time and set) and have no strategy here.
const (
	tagReservedDate Tag = 0x0b
	tagReservedTime Tag = 0x0c
	tagReservedSet  Tag = 0x0f
)

var tagNames = map[Tag]string{
	TagNull:         "null",
	TagBool:         "boolean",
	TagInt32:        "int32",
	TagInt64:        "int64",
	TagFloat32:      "float32",
	TagFloat64:      "float64",
	TagString:       "string",
	TagDecimal:      "decimal",
	TagID:           "id",
	TagMap:          "map",
	TagList:         "list",
	TagDateTime:     "datetime",
	TagShort:        "short",
	TagBytes:        "bytes",
	tagReservedDate: "date",
	tagReservedTime: "time",
	tagReservedSet:  "set",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(0x%02x)", byte(t))
}

// IsNumeric reports whether t belongs to the numeric family, whose members
// compare against each other after promotion.
func (t Tag) IsNumeric() bool {
	switch t {
	case TagShort, TagInt32, TagInt64, TagFloat32, TagFloat64, TagDecimal:
		return true
	}
	return false
}

// Kind identifies the native Go type a strategy owns.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindShort
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindDecimal
	KindID
	KindMap
	KindList
	KindDateTime
	KindBytes

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:  "unknown",
	KindBool:     "bool",
	KindShort:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindString:   "string",
	KindDecimal:  "*apd.Decimal",
	KindID:       "uuid.UUID",
	KindMap:      "map[string]any",
	KindList:     "[]any",
	KindDateTime: "time.Time",
	KindBytes:    "[]byte",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// KindOf returns the native kind of v, or KindUnknown for nil and for any
// type without a strategy in this package. A nil *apd.Decimal is unknown.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case bool:
		return KindBool
	case int16:
		return KindShort
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case *apd.Decimal:
		if x == nil {
			return KindUnknown
		}
		return KindDecimal
	case uuid.UUID:
		return KindID
	case map[string]any:
		return KindMap
	case []any:
		return KindList
	case time.Time:
		return KindDateTime
	case []byte:
		return KindBytes
	}
	return KindUnknown
}
