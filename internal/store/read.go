package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
)

const elementColumns = `seq, id, kind, label, source_id, target_id, graph_ids`

// ReadElement retrieves a single element with its properties.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadElement(ctx context.Context, id uuid.UUID) (*graph.Element, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+elementColumns+`
		FROM elements
		WHERE id = ?
	`, id.String())

	var seq int64
	e, err := scanElement(row, &seq)
	if err != nil {
		return nil, err
	}
	if err := s.readProperties(ctx, `WHERE p.element_id = ?`, []any{id.String()}, map[string]*graph.Element{e.ID.String(): e}); err != nil {
		return nil, err
	}
	return e, nil
}

// ReadElements returns every element of the given kind in insertion order.
// An empty kind selects all elements. Returns an empty slice (not nil) if
// nothing matches.
func (s *Store) ReadElements(ctx context.Context, kind graph.ElementKind) ([]*graph.Element, error) {
	where, args := "", []any(nil)
	if kind != "" {
		where, args = "WHERE kind = ?", []any{string(kind)}
	}
	return s.queryElements(ctx, where, args)
}

// ReadGraph returns the graph head id with every vertex and edge that lists
// it among its graph ids.
// Returns sql.ErrNoRows if the head does not exist.
func (s *Store) ReadGraph(ctx context.Context, headID uuid.UUID) (*graph.Graph, error) {
	head, err := s.ReadElement(ctx, headID)
	if err != nil {
		return nil, err
	}
	if head.Kind != graph.KindGraphHead {
		return nil, fmt.Errorf("read graph: %s is a %s", headID, head.Kind)
	}

	members, err := s.queryElements(ctx, `
		WHERE kind != 'graph'
		AND EXISTS (SELECT 1 FROM json_each(elements.graph_ids) WHERE json_each.value = ?)
	`, []any{headID.String()})
	if err != nil {
		return nil, err
	}

	g := &graph.Graph{Head: head}
	for _, e := range members {
		if e.Kind == graph.KindVertex {
			g.Vertices = append(g.Vertices, e)
		} else {
			g.Edges = append(g.Edges, e)
		}
	}
	return g, nil
}

// ListGraphs returns the ids of all graph heads in insertion order.
func (s *Store) ListGraphs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM elements WHERE kind = 'graph' ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query graphs: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan graph id: %w", err)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("scan graph id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graphs: %w", err)
	}
	return ids, nil
}

// CountByType returns how many stored property values carry each tag.
func (s *Store) CountByType(ctx context.Context) (map[property.Tag]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, COUNT(*) FROM properties GROUP BY type ORDER BY type
	`)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}
	defer rows.Close()

	counts := make(map[property.Tag]int)
	for rows.Next() {
		var tag, n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("scan property count: %w", err)
		}
		counts[property.Tag(tag)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate property counts: %w", err)
	}
	return counts, nil
}

func (s *Store) queryElements(ctx context.Context, where string, args []any) ([]*graph.Element, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+elementColumns+`
		FROM elements
		`+where+`
		ORDER BY seq ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()

	elements := []*graph.Element{}
	byID := make(map[string]*graph.Element)
	var minSeq, maxSeq int64
	for rows.Next() {
		var seq int64
		e, err := scanElement(rows, &seq)
		if err != nil {
			return nil, err
		}
		if len(elements) == 0 {
			minSeq = seq
		}
		maxSeq = seq
		elements = append(elements, e)
		byID[e.ID.String()] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate elements: %w", err)
	}
	if len(elements) == 0 {
		return elements, nil
	}

	// Properties of elements outside the selection are filtered by byID.
	err = s.readProperties(ctx, `
		JOIN elements e ON e.id = p.element_id
		WHERE e.seq BETWEEN ? AND ?
	`, []any{minSeq, maxSeq}, byID)
	if err != nil {
		return nil, err
	}
	return elements, nil
}

func (s *Store) readProperties(ctx context.Context, where string, args []any, byID map[string]*graph.Element) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.element_id, p.key, p.type, p.value
		FROM properties p
		`+where+`
		ORDER BY p.element_id, p.key
	`, args...)
	if err != nil {
		return fmt.Errorf("query properties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			elementID, key string
			tag            int
			raw            []byte
		)
		if err := rows.Scan(&elementID, &key, &tag, &raw); err != nil {
			return fmt.Errorf("scan property: %w", err)
		}
		e, ok := byID[elementID]
		if !ok {
			continue
		}
		if len(raw) == 0 || int(raw[0]) != tag {
			return fmt.Errorf("property %q of %s: type column %d does not match stored value: %w",
				key, elementID, tag, property.ErrCorruptPayload)
		}
		e.Properties.SetValue(key, property.FromRawBytes(raw))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate properties: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanElement scans a row selected with elementColumns.
func scanElement(row scanner, seq *int64) (*graph.Element, error) {
	var (
		id, kind, label string
		source, target  sql.NullString
		graphIDs        string
	)
	if err := row.Scan(seq, &id, &kind, &label, &source, &target, &graphIDs); err != nil {
		return nil, err
	}

	e := &graph.Element{Label: label}
	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("scan element id %q: %w", id, err)
	}
	if e.Kind, err = graph.ParseElementKind(kind); err != nil {
		return nil, fmt.Errorf("scan element %s: %w", id, err)
	}
	if source.Valid {
		if e.Source, err = uuid.Parse(source.String); err != nil {
			return nil, fmt.Errorf("scan element %s source: %w", id, err)
		}
	}
	if target.Valid {
		if e.Target, err = uuid.Parse(target.String); err != nil {
			return nil, fmt.Errorf("scan element %s target: %w", id, err)
		}
	}
	if e.GraphIDs, err = unmarshalGraphIDs(graphIDs); err != nil {
		return nil, fmt.Errorf("scan element %s: %w", id, err)
	}
	return e, nil
}
