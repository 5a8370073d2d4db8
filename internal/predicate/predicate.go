// Package predicate evaluates comparisons between property values.
//
// A comparison between values of incompatible kinds is not an error here:
// it is simply false, for != as much as for =, so a filter over a graph with
// heterogeneous properties keeps only the elements it can actually order.
package predicate

import (
	"errors"
	"fmt"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
)

// Operator is a comparison operator.
type Operator string

const (
	OpEq Operator = "="
	OpNe Operator = "!="
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

var operatorAliases = map[string]Operator{
	"=": OpEq, "==": OpEq, "eq": OpEq,
	"!=": OpNe, "ne": OpNe,
	"<": OpLt, "lt": OpLt,
	"<=": OpLe, "le": OpLe,
	">": OpGt, "gt": OpGt,
	">=": OpGe, "ge": OpGe,
}

// ParseOperator accepts the symbolic form or its two-letter alias (eq, ne,
// lt, le, gt, ge), which is easier to pass through a shell.
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[s]; ok {
		return op, nil
	}
	return "", fmt.Errorf("unknown operator %q: must be one of =, !=, <, <=, >, >=", s)
}

func (op Operator) holds(c int) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	}
	return false
}

// Evaluate reports whether a op b holds.
func Evaluate(a property.Value, op Operator, b property.Value) (bool, error) {
	if _, ok := operatorAliases[string(op)]; !ok {
		return false, fmt.Errorf("unknown operator %q", op)
	}
	c, err := a.Compare(b)
	if errors.Is(err, property.ErrIncompatibleTypes) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return op.holds(c), nil
}

// Filter returns the elements whose value under key satisfies op against
// want. Elements without the key, or holding the unset value, never match.
func Filter(elements []*graph.Element, key string, op Operator, want property.Value) ([]*graph.Element, error) {
	var out []*graph.Element
	for _, e := range elements {
		v, ok := e.Properties.Get(key)
		if !ok || v.IsNull() {
			continue
		}
		match, err := Evaluate(v, op, want)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", e.Kind, e.ID, err)
		}
		if match {
			out = append(out, e)
		}
	}
	return out, nil
}
