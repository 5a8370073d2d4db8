package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
)

// ValueView is the printable form of one encoded value.
type ValueView struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Hex   string `json:"hex"`
}

func newValueView(v property.Value) ValueView {
	return ValueView{
		Type:  v.Type().String(),
		Value: v.String(),
		Hex:   hex.EncodeToString(v.RawBytes()),
	}
}

func (v ValueView) String() string {
	return fmt.Sprintf("%s %s", v.Type, v.Value)
}

// PropertyView is one key of an ElementView.
type PropertyView struct {
	Key string `json:"key"`
	ValueView
}

// ElementView is the printable form of a stored element.
type ElementView struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Label      string         `json:"label"`
	Source     string         `json:"source,omitempty"`
	Target     string         `json:"target,omitempty"`
	GraphIDs   []string       `json:"graph_ids,omitempty"`
	Properties []PropertyView `json:"properties"`
}

func newElementView(e *graph.Element) ElementView {
	ev := ElementView{
		ID:         e.ID.String(),
		Kind:       string(e.Kind),
		Label:      e.Label,
		Properties: []PropertyView{},
	}
	if e.Kind == graph.KindEdge {
		ev.Source, ev.Target = e.Source.String(), e.Target.String()
	}
	for _, id := range e.GraphIDs {
		ev.GraphIDs = append(ev.GraphIDs, id.String())
	}
	for _, key := range e.Properties.Keys() {
		v, _ := e.Properties.Get(key)
		ev.Properties = append(ev.Properties, PropertyView{Key: key, ValueView: newValueView(v)})
	}
	return ev
}

func (ev ElementView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s :%s", ev.Kind, ev.ID, ev.Label)
	if ev.Kind == string(graph.KindEdge) {
		fmt.Fprintf(&b, " (%s)->(%s)", ev.Source, ev.Target)
	}
	for _, p := range ev.Properties {
		fmt.Fprintf(&b, "\n  %s: %s", p.Key, p.ValueView)
	}
	return b.String()
}

// ElementList prints one element per block.
type ElementList []ElementView

func newElementList(elements []*graph.Element) ElementList {
	list := make(ElementList, len(elements))
	for i, e := range elements {
		list[i] = newElementView(e)
	}
	return list
}

func (l ElementList) String() string {
	if len(l) == 0 {
		return "No elements found."
	}
	parts := make([]string, len(l))
	for i, ev := range l {
		parts[i] = ev.String()
	}
	return strings.Join(parts, "\n")
}

// parseKind validates an optional --kind flag.
func parseKind(s string) (graph.ElementKind, error) {
	if s == "" {
		return "", nil
	}
	k, err := graph.ParseElementKind(s)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "invalid --kind", err)
	}
	return k, nil
}
