package graph

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ElementKind distinguishes the three element types.
type ElementKind string

const (
	KindGraphHead ElementKind = "graph"
	KindVertex    ElementKind = "vertex"
	KindEdge      ElementKind = "edge"
)

// ParseElementKind validates s as an element kind.
func ParseElementKind(s string) (ElementKind, error) {
	switch k := ElementKind(s); k {
	case KindGraphHead, KindVertex, KindEdge:
		return k, nil
	}
	return "", fmt.Errorf("unknown element kind %q: must be one of graph, vertex, edge", s)
}

// Element is a graph head, vertex or edge.
type Element struct {
	ID    uuid.UUID
	Kind  ElementKind
	Label string

	// Source and Target are set for edges only.
	Source uuid.UUID
	Target uuid.UUID

	// GraphIDs lists the logical graphs a vertex or edge belongs to.
	GraphIDs []uuid.UUID

	Properties Properties
}

// NewGraphHead creates a graph head.
func NewGraphHead(id uuid.UUID, label string) *Element {
	return &Element{ID: id, Kind: KindGraphHead, Label: label}
}

// NewVertex creates a vertex.
func NewVertex(id uuid.UUID, label string, graphIDs ...uuid.UUID) *Element {
	return &Element{ID: id, Kind: KindVertex, Label: label, GraphIDs: graphIDs}
}

// NewEdge creates an edge from source to target.
func NewEdge(id uuid.UUID, label string, source, target uuid.UUID, graphIDs ...uuid.UUID) *Element {
	return &Element{
		ID:       id,
		Kind:     KindEdge,
		Label:    label,
		Source:   source,
		Target:   target,
		GraphIDs: graphIDs,
	}
}

// Copy returns an element that shares no memory with e.
func (e *Element) Copy() *Element {
	c := *e
	c.GraphIDs = slices.Clone(e.GraphIDs)
	c.Properties = e.Properties.Clone()
	return &c
}

func (e *Element) String() string {
	if e.Kind == KindEdge {
		return fmt.Sprintf("%s %s:%s (%s)->(%s)", e.Kind, e.ID, e.Label, e.Source, e.Target)
	}
	return fmt.Sprintf("%s %s:%s", e.Kind, e.ID, e.Label)
}

// Graph is a logical graph: its head plus member vertices and edges.
type Graph struct {
	Head     *Element
	Vertices []*Element
	Edges    []*Element
}

// Elements returns the head, vertices and edges in that order.
func (g *Graph) Elements() []*Element {
	out := make([]*Element, 0, 1+len(g.Vertices)+len(g.Edges))
	if g.Head != nil {
		out = append(out, g.Head)
	}
	out = append(out, g.Vertices...)
	return append(out, g.Edges...)
}

// Copy duplicates every element, relaying properties through their raw bytes.
func (g *Graph) Copy() *Graph {
	c := &Graph{
		Vertices: make([]*Element, len(g.Vertices)),
		Edges:    make([]*Element, len(g.Edges)),
	}
	if g.Head != nil {
		c.Head = g.Head.Copy()
	}
	for i, v := range g.Vertices {
		c.Vertices[i] = v.Copy()
	}
	for i, e := range g.Edges {
		c.Edges[i] = e.Copy()
	}
	return c
}
