package property

import (
	"bytes"
	"cmp"

	"github.com/cockroachdb/apd/v3"
)

// Compare orders two values and returns -1, 0 or +1.
//
// Unset values sort before everything else. Values with the same tag use
// that strategy's order, on raw payload bytes when the strategy supports it.
// Members of the numeric family compare by value across tags. Any other pair
// of tags fails with ErrIncompatibleTypes.
//
// Two values carrying the same tag this registry does not know compare by
// payload bytes, so relaying foreign data never fails on ordering alone.
func (r *Registry) Compare(a, b Value) (int, error) {
	ta, tb := a.Type(), b.Type()
	if err := checkNull(a); err != nil {
		return 0, err
	}
	if err := checkNull(b); err != nil {
		return 0, err
	}
	switch {
	case ta == TagNull && tb == TagNull:
		return 0, nil
	case ta == TagNull:
		return -1, nil
	case tb == TagNull:
		return 1, nil
	}

	if ta == tb {
		s, ok := r.StrategyForTag(ta)
		if !ok {
			return bytes.Compare(a.raw[1:], b.raw[1:]), nil
		}
		if rc, ok := s.(RawComparer); ok {
			return rc.CompareRaw(a.raw[1:], b.raw[1:])
		}
	} else if !ta.IsNumeric() || !tb.IsNumeric() {
		return 0, incompatible(ta, tb)
	}

	x, err := r.Decode(a.raw)
	if err != nil {
		return 0, err
	}
	y, err := r.Decode(b.raw)
	if err != nil {
		return 0, err
	}
	return r.compareNative(x, y, 0)
}

// checkNull rejects an explicit null followed by payload bytes.
func checkNull(v Value) error {
	if v.Type() == TagNull && len(v.raw) > 1 {
		return corrupt(TagNull, "%d bytes after null tag", len(v.raw)-1)
	}
	return nil
}

// CompareNative orders two native values with the same rules as Compare.
// nil is the unset value.
func (r *Registry) CompareNative(a, b any) (int, error) {
	return r.compareNative(a, b, 0)
}

func (r *Registry) compareNative(a, b any, depth int) (int, error) {
	sa, sb := r.StrategyForValue(a), r.StrategyForValue(b)
	switch {
	case sa == noop && sb == noop:
		return 0, nil
	case sa == noop:
		return -1, nil
	case sb == noop:
		return 1, nil
	case sa.Tag() == sb.Tag():
		return sa.Compare(a, b, Nested{reg: r, depth: depth})
	}

	x, okA := toNumber(a)
	y, okB := toNumber(b)
	if !okA || !okB {
		return 0, incompatible(sa.Tag(), sb.Tag())
	}
	return compareNumbers(x, y), nil
}

// number is a member of the numeric family widened for comparison.
type number struct {
	integral bool
	i        int64
	f        float64
	d        *apd.Decimal
}

func toNumber(v any) (number, bool) {
	switch x := v.(type) {
	case int16:
		return number{integral: true, i: int64(x)}, true
	case int32:
		return number{integral: true, i: int64(x)}, true
	case int64:
		return number{integral: true, i: x}, true
	case float32:
		return number{f: float64(x)}, true
	case float64:
		return number{f: x}, true
	case *apd.Decimal:
		if x == nil {
			return number{}, false
		}
		return number{d: x}, true
	}
	return number{}, false
}

// compareNumbers promotes both sides to the widest representation present:
// int64 when both are integral, an exact decimal when either is a decimal,
// float64 otherwise.
func compareNumbers(a, b number) int {
	switch {
	case a.integral && b.integral:
		return cmp.Compare(a.i, b.i)
	case a.d != nil || b.d != nil:
		return compareDecimal(a.decimal(), b.decimal())
	}
	return cmp.Compare(a.float(), b.float())
}

func (n number) float() float64 {
	if n.integral {
		return float64(n.i)
	}
	return n.f
}

func (n number) decimal() *apd.Decimal {
	switch {
	case n.d != nil:
		return n.d
	case n.integral:
		return apd.New(n.i, 0)
	}
	d, err := new(apd.Decimal).SetFloat64(n.f)
	if err != nil {
		// Keep NaN and infinities ordered even if the parser rejects them.
		d = &apd.Decimal{Form: apd.NaN}
		if n.f > 0 {
			d.Form = apd.Infinite
		} else if n.f < 0 {
			d.Form, d.Negative = apd.Infinite, true
		}
	}
	return d
}
