package graph

import (
	"maps"
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/Rascat/gradoop/internal/property"
)

// Properties maps property keys to encoded values. The zero value is an
// empty, usable map.
type Properties struct {
	m map[string]property.Value
}

// NormalizeKey returns the NFC form of a property key.
func NormalizeKey(key string) string {
	return norm.NFC.String(key)
}

// Set encodes v and stores it under key, replacing any previous value.
// It reports false when nothing was encoded, because v is nil or its kind has
// no strategy; the key then holds the unset value instead of failing the
// whole element.
func (p *Properties) Set(key string, v any) (bool, error) {
	pv, err := property.Create(v)
	if err != nil {
		return false, err
	}
	p.SetValue(key, pv)
	return !pv.IsNull(), nil
}

// SetValue stores an already-encoded value.
func (p *Properties) SetValue(key string, v property.Value) {
	if p.m == nil {
		p.m = make(map[string]property.Value)
	}
	p.m[NormalizeKey(key)] = v
}

// SetRaw stores bytes produced by this codec without decoding them.
func (p *Properties) SetRaw(key string, raw []byte) {
	p.SetValue(key, property.FromRawBytes(raw))
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (property.Value, bool) {
	v, ok := p.m[NormalizeKey(key)]
	return v, ok
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (p *Properties) Remove(key string) bool {
	key = NormalizeKey(key)
	_, ok := p.m[key]
	delete(p.m, key)
	return ok
}

// Len returns the number of entries.
func (p *Properties) Len() int {
	return len(p.m)
}

// Keys returns the keys in byte order.
func (p *Properties) Keys() []string {
	var keys []string
	for k := range p.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a map whose values own copies of their buffers.
func (p *Properties) Clone() Properties {
	if p.m == nil {
		return Properties{}
	}
	c := make(map[string]property.Value, len(p.m))
	for k, v := range p.m {
		c[k] = v.Copy()
	}
	return Properties{m: c}
}

// Equal reports whether both maps hold the same keys with byte-equal values.
func (p *Properties) Equal(o *Properties) bool {
	return maps.EqualFunc(p.m, o.m, property.Value.Equal)
}
