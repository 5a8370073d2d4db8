package property

import (
	"cmp"
	"slices"
)

// listStrategy encodes []any as a count followed by tagged elements.
// Elements of unsupported kinds are written as null.
type listStrategy struct{}

func (listStrategy) Tag() Tag   { return TagList }
func (listStrategy) Kind() Kind { return KindList }

func (listStrategy) AppendPayload(dst []byte, v any, n Nested) ([]byte, error) {
	list := v.([]any)
	dst, err := appendLen(dst, len(list), TagList)
	if err != nil {
		return nil, err
	}
	for _, elem := range list {
		if dst, err = n.Append(dst, elem); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (listStrategy) Read(r Reader, n Nested) (any, error) {
	count, err := readLen(r, TagList)
	if err != nil {
		return nil, err
	}
	list := make([]any, 0, capHint(r, count))
	for c := 0; c < count; c++ {
		elem, err := n.Read(r)
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
	}
	return list, nil
}

// Compare orders lists element by element, then by length.
func (listStrategy) Compare(a, b any, n Nested) (int, error) {
	x, y := a.([]any), b.([]any)
	for i, end := 0, min(len(x), len(y)); i < end; i++ {
		c, err := n.Compare(x[i], y[i])
		if err != nil || c != 0 {
			return c, err
		}
	}
	return cmp.Compare(len(x), len(y)), nil
}

// mapStrategy encodes map[string]any as a count followed by tagged key and
// value pairs. Keys are written in byte order, so equal maps encode to equal
// bytes.
type mapStrategy struct{}

func (mapStrategy) Tag() Tag   { return TagMap }
func (mapStrategy) Kind() Kind { return KindMap }

func (mapStrategy) AppendPayload(dst []byte, v any, n Nested) ([]byte, error) {
	m := v.(map[string]any)
	dst, err := appendLen(dst, len(m), TagMap)
	if err != nil {
		return nil, err
	}
	for _, k := range sortedKeys(m) {
		if dst, err = n.Append(dst, k); err != nil {
			return nil, err
		}
		if dst, err = n.Append(dst, m[k]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (mapStrategy) Read(r Reader, n Nested) (any, error) {
	count, err := readLen(r, TagMap)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any, capHint(r, count))
	for c := 0; c < count; c++ {
		key, err := n.Read(r)
		if err != nil {
			return nil, err
		}
		k, ok := key.(string)
		if !ok {
			return nil, corrupt(TagMap, "key is %T, not string", key)
		}
		if _, dup := m[k]; dup {
			return nil, corrupt(TagMap, "duplicate key %q", k)
		}
		val, err := n.Read(r)
		if err != nil {
			return nil, err
		}
		m[k] = val
	}
	return m, nil
}

// Compare walks both maps in key order comparing keys, then values, and
// finally the number of entries.
func (mapStrategy) Compare(a, b any, n Nested) (int, error) {
	x, y := a.(map[string]any), b.(map[string]any)
	xk, yk := sortedKeys(x), sortedKeys(y)
	for i, end := 0, min(len(xk), len(yk)); i < end; i++ {
		if c := cmp.Compare(xk[i], yk[i]); c != 0 {
			return c, nil
		}
		c, err := n.Compare(x[xk[i]], y[yk[i]])
		if err != nil || c != 0 {
			return c, err
		}
	}
	return cmp.Compare(len(xk), len(yk)), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
