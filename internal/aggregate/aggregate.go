// Package aggregate folds a property over graph elements.
//
// Elements without the key, or holding the unset value, take no part. Values
// are only ordered within one type family: the numeric family when any
// element holds a number, otherwise the family of the lowest tag present.
// Values outside the chosen family are skipped and counted in Result.Skipped,
// so the result does not depend on element order. A comparison error within
// the family aborts the fold, since it means a stored value is corrupt.
package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
)

// Func selects the extreme to keep.
type Func string

const (
	FuncMin Func = "min"
	FuncMax Func = "max"
)

// ParseFunc validates s as an aggregate function name.
func ParseFunc(s string) (Func, error) {
	switch f := Func(s); f {
	case FuncMin, FuncMax:
		return f, nil
	}
	return "", fmt.Errorf("unknown aggregate function %q: must be min or max", s)
}

// Result is the outcome of a fold.
type Result struct {
	// Value is the extreme, or the unset value when no element qualified.
	Value property.Value

	// Count is the number of elements that took part.
	Count int

	// Skipped counts values outside the type family the fold ran over.
	Skipped int
}

// Fold applies fn to the values stored under key.
func Fold(elements []*graph.Element, key string, fn Func) (Result, error) {
	keep := func(c int) bool { return c < 0 }
	if fn == FuncMax {
		keep = func(c int) bool { return c > 0 }
	} else if fn != FuncMin {
		return Result{}, fmt.Errorf("unknown aggregate function %q", fn)
	}

	type candidate struct {
		e *graph.Element
		v property.Value
	}
	var (
		cands []candidate
		want  family
	)
	for _, e := range elements {
		v, ok := e.Properties.Get(key)
		if !ok || v.IsNull() {
			continue
		}
		if f := familyOf(v.Type()); len(cands) == 0 || f.before(want) {
			want = f
		}
		cands = append(cands, candidate{e, v})
	}

	var res Result
	for _, c := range cands {
		if familyOf(c.v.Type()) != want {
			slog.Debug("skipping incomparable value",
				"element", c.e.ID,
				"key", key,
				"type", c.v.Type(),
				"family", want.String())
			res.Skipped++
			continue
		}
		if res.Count == 0 {
			res.Value, res.Count = c.v, 1
			continue
		}
		order, err := c.v.Compare(res.Value)
		if err != nil {
			return Result{}, fmt.Errorf("%s %s: %w", c.e.Kind, c.e.ID, err)
		}
		res.Count++
		if keep(order) {
			res.Value = c.v
		}
	}
	return res, nil
}

// family groups the tags whose values order against each other.
type family struct {
	numeric bool
	tag     property.Tag
}

func familyOf(t property.Tag) family {
	if t.IsNumeric() {
		return family{numeric: true}
	}
	return family{tag: t}
}

func (f family) before(o family) bool {
	if f.numeric != o.numeric {
		return f.numeric
	}
	return f.tag < o.tag
}

func (f family) String() string {
	if f.numeric {
		return "numeric"
	}
	return f.tag.String()
}

// Min returns the smallest value stored under key.
func Min(elements []*graph.Element, key string) (Result, error) {
	return Fold(elements, key, FuncMin)
}

// Max returns the largest value stored under key.
func Max(elements []*graph.Element, key string) (Result, error) {
	return Fold(elements, key, FuncMax)
}

func MinVertexProperty(g *graph.Graph, key string) (Result, error) { return Min(g.Vertices, key) }
func MaxVertexProperty(g *graph.Graph, key string) (Result, error) { return Max(g.Vertices, key) }
func MinEdgeProperty(g *graph.Graph, key string) (Result, error)   { return Min(g.Edges, key) }
func MaxEdgeProperty(g *graph.Graph, key string) (Result, error)   { return Max(g.Edges, key) }

// MinProperty folds over vertices and edges together.
func MinProperty(g *graph.Graph, key string) (Result, error) {
	return Min(members(g), key)
}

// MaxProperty folds over vertices and edges together.
func MaxProperty(g *graph.Graph, key string) (Result, error) {
	return Max(members(g), key)
}

func members(g *graph.Graph) []*graph.Element {
	out := make([]*graph.Element, 0, len(g.Vertices)+len(g.Edges))
	out = append(out, g.Vertices...)
	return append(out, g.Edges...)
}
