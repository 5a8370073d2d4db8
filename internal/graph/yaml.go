package graph

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML layout of a graph file.
//
//	graph:
//	  label: Community
//	vertices:
//	  - key: alice
//	    label: Person
//	    properties:
//	      name: Alice
//	      age: !int32 42
//	edges:
//	  - label: knows
//	    source: alice
//	    target: bob
//	    properties:
//	      since: 2014-05-01T00:00:00Z
//
// Untagged integers become int64 and untagged floats float64. Custom tags
// select other kinds: !short, !int32, !float32, !decimal, !id, !bytes (hex).
// The core tags !!binary and !!timestamp map to []byte and time.Time.
type Fixture struct {
	Graph    ElementFixture   `yaml:"graph"`
	Vertices []ElementFixture `yaml:"vertices"`
	Edges    []ElementFixture `yaml:"edges"`
}

// ElementFixture describes one element of a Fixture.
type ElementFixture struct {
	// Key names a vertex so edges can refer to it. Defaults to ID.
	Key string `yaml:"key,omitempty"`

	// ID fixes the element id; when empty the generator assigns one.
	ID string `yaml:"id,omitempty"`

	Label  string `yaml:"label"`
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`

	Properties yaml.Node `yaml:"properties,omitempty"`
}

// Custom scalar tags.
const (
	tagShort   = "!short"
	tagInt32   = "!int32"
	tagFloat32 = "!float32"
	tagDecimal = "!decimal"
	tagID      = "!id"
	tagBytes   = "!bytes"
)

// LoadYAMLFile reads a graph fixture from path.
func LoadYAMLFile(path string, gen IDGenerator) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()
	return LoadYAML(f, gen)
}

// LoadYAML decodes a graph fixture. Every vertex and edge joins the graph
// described by the fixture's head.
func LoadYAML(r io.Reader, gen IDGenerator) (*Graph, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode graph file: %w", err)
	}

	headID, err := fixtureID(fx.Graph.ID, gen)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	g := &Graph{Head: NewGraphHead(headID, fx.Graph.Label)}
	if err := decodeProperties(&fx.Graph.Properties, &g.Head.Properties); err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}

	byKey := make(map[string]uuid.UUID, len(fx.Vertices))
	for i, vf := range fx.Vertices {
		id, err := fixtureID(vf.ID, gen)
		if err != nil {
			return nil, fmt.Errorf("vertices[%d]: %w", i, err)
		}
		key := vf.Key
		if key == "" {
			key = id.String()
		}
		if _, dup := byKey[key]; dup {
			return nil, fmt.Errorf("vertices[%d]: duplicate key %q", i, key)
		}
		byKey[key] = id

		v := NewVertex(id, vf.Label, headID)
		if err := decodeProperties(&vf.Properties, &v.Properties); err != nil {
			return nil, fmt.Errorf("vertices[%d] (%s): %w", i, key, err)
		}
		g.Vertices = append(g.Vertices, v)
	}

	for i, ef := range fx.Edges {
		src, ok := byKey[ef.Source]
		if !ok {
			return nil, fmt.Errorf("edges[%d]: unknown source vertex %q", i, ef.Source)
		}
		dst, ok := byKey[ef.Target]
		if !ok {
			return nil, fmt.Errorf("edges[%d]: unknown target vertex %q", i, ef.Target)
		}
		id, err := fixtureID(ef.ID, gen)
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}

		e := NewEdge(id, ef.Label, src, dst, headID)
		if err := decodeProperties(&ef.Properties, &e.Properties); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		g.Edges = append(g.Edges, e)
	}

	return g, nil
}

func fixtureID(s string, gen IDGenerator) (uuid.UUID, error) {
	if s == "" {
		return gen.Generate(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func decodeProperties(n *yaml.Node, props *Properties) error {
	if n.IsZero() {
		return nil
	}
	v, err := DecodeNode(n)
	if err != nil {
		return err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("properties must be a mapping, got %s", n.ShortTag())
	}
	for k, val := range m {
		if _, err := props.Set(k, val); err != nil {
			return fmt.Errorf("property %q: %w", k, err)
		}
	}
	return nil
}

// DecodeNode converts a YAML node into a native property value.
func DecodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return DecodeNode(n.Content[0])
	case yaml.AliasNode:
		return DecodeNode(n.Alias)
	case yaml.SequenceNode:
		list := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := DecodeNode(c)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			list[i] = v
		}
		return list, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: map keys must be scalars", k.Line)
			}
			v, err := DecodeNode(vn)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.Value, err)
			}
			m[k.Value] = v
		}
		return m, nil
	case yaml.ScalarNode:
		v, err := decodeScalar(n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func decodeScalar(n *yaml.Node) (any, error) {
	s := n.Value
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return nil, nil
	case "!!str":
		return s, nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		err := n.Decode(&i)
		return i, err
	case "!!float":
		var f float64
		err := n.Decode(&f)
		return f, err
	case "!!timestamp":
		var t time.Time
		err := n.Decode(&t)
		return t, err
	case "!!binary":
		return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
	case tagShort:
		i, err := strconv.ParseInt(s, 0, 16)
		return int16(i), err
	case tagInt32:
		i, err := strconv.ParseInt(s, 0, 32)
		return int32(i), err
	case tagFloat32:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	case tagDecimal:
		d, _, err := apd.NewFromString(s)
		return d, err
	case tagID:
		return uuid.Parse(s)
	case tagBytes:
		return hex.DecodeString(s)
	default:
		return nil, fmt.Errorf("unsupported tag %s", tag)
	}
}
