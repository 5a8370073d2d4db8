package property

import (
	"bytes"
	"io"
	"slices"
	"sync"
)

// Registry maps native kinds and tag bytes to strategies. It is immutable
// once NewRegistry returns and safe for concurrent use.
type Registry struct {
	byTag  [256]Strategy
	byKind [numKinds]Strategy
	tags   []Tag
}

var noop Strategy = noopStrategy{}

// NewRegistry builds a registry from strategies. Registering the null tag,
// an unknown kind, or the same tag or kind twice is a configuration error.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	r := &Registry{}
	for _, s := range strategies {
		if s == nil {
			return nil, configError("nil strategy")
		}
		t, k := s.Tag(), s.Kind()
		if t == TagNull {
			return nil, configError("%s is reserved for the unset value", TagNull)
		}
		if k == KindUnknown || k >= numKinds {
			return nil, configError("strategy for %s has no native kind", t)
		}
		if r.byTag[t] != nil {
			return nil, configError("duplicate registration for %s", t)
		}
		if r.byKind[k] != nil {
			return nil, configError("duplicate registration for kind %s", k)
		}
		r.byTag[t] = s
		r.byKind[k] = s
		r.tags = append(r.tags, t)
	}
	slices.Sort(r.tags)
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on a configuration error.
// Use only at process start.
func MustNewRegistry(strategies ...Strategy) *Registry {
	r, err := NewRegistry(strategies...)
	if err != nil {
		panic(err)
	}
	return r
}

// BuiltinStrategies returns a fresh slice of every strategy in this package,
// for callers that want to build a registry with additions.
func BuiltinStrategies() []Strategy {
	return []Strategy{
		boolStrategy{},
		shortStrategy{},
		int32Strategy{},
		int64Strategy{},
		float32Strategy{},
		float64Strategy{},
		stringStrategy{},
		decimalStrategy{},
		idStrategy{},
		mapStrategy{},
		listStrategy{},
		dateTimeStrategy{},
		bytesStrategy{},
	}
}

var builtin = sync.OnceValue(func() *Registry {
	return MustNewRegistry(BuiltinStrategies()...)
})

// Builtin returns the shared registry holding every built-in strategy.
func Builtin() *Registry {
	return builtin()
}

// Tags returns the registered tags in ascending order.
func (r *Registry) Tags() []Tag {
	return slices.Clone(r.tags)
}

// StrategyForValue returns the strategy owning v's native kind, or a no-op
// strategy that encodes nothing when v is nil or of an unregistered kind.
func (r *Registry) StrategyForValue(v any) Strategy {
	if s := r.byKind[KindOf(v)]; s != nil {
		return s
	}
	return noop
}

// StrategyForTag returns the strategy registered for t.
func (r *Registry) StrategyForTag(t Tag) (Strategy, bool) {
	s := r.byTag[t]
	return s, s != nil
}

// Supports reports whether v's native kind has a strategy.
func (r *Registry) Supports(v any) bool {
	return r.byKind[KindOf(v)] != nil
}

// Encode returns the tagged encoding of v. For a nil value or an
// unregistered kind it returns an empty buffer and no error; Supports tells
// the two apart from a real encoding up front.
func (r *Registry) Encode(v any) ([]byte, error) {
	s := r.StrategyForValue(v)
	if s == noop {
		return []byte{}, nil
	}
	return s.AppendPayload([]byte{byte(s.Tag())}, v, Nested{reg: r})
}

// appendTagged appends tag and payload for a nested value. Unregistered
// kinds become a bare null tag so the enclosing count stays valid.
func (r *Registry) appendTagged(dst []byte, v any, depth int) ([]byte, error) {
	s := r.StrategyForValue(v)
	if s == noop {
		return append(dst, byte(TagNull)), nil
	}
	return s.AppendPayload(append(dst, byte(s.Tag())), v, Nested{reg: r, depth: depth})
}

// Decode decodes a buffer produced by Encode. An empty buffer or a bare
// null tag decodes to nil. Bytes left over after the value are an error.
func (r *Registry) Decode(b []byte) (any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	br := bytes.NewReader(b)
	v, err := r.readTagged(br, 0)
	if err != nil {
		return nil, err
	}
	if br.Len() > 0 {
		return nil, corrupt(Tag(b[0]), "%d trailing bytes", br.Len())
	}
	return v, nil
}

// DecodeStream reads one tagged value from in. It returns io.EOF, unwrapped,
// when in is exhausted before a tag byte, so callers can loop over a stream
// of values. If in cannot read single bytes it is buffered, and input past
// the value may be consumed.
func (r *Registry) DecodeStream(in io.Reader) (any, error) {
	return r.readTagged(asReader(in), 0)
}

func (r *Registry) readTagged(br Reader, depth int) (any, error) {
	b, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	t := Tag(b)
	if t == TagNull {
		return nil, nil
	}
	s, ok := r.StrategyForTag(t)
	if !ok {
		return nil, unknownTag(t)
	}
	return s.Read(br, Nested{reg: r, depth: depth})
}
