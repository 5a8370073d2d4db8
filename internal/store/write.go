package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Rascat/gradoop/internal/graph"
)

// WriteElement inserts or replaces an element and all its properties.
// A second write of the same id replaces the label, endpoints, graph
// memberships and the complete property set.
func (s *Store) WriteElement(ctx context.Context, e *graph.Element) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write element: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := writeElement(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write element: commit: %w", err)
	}
	return nil
}

// WriteGraph writes the head, vertices and edges of g in one transaction.
// Either every element is stored or none is.
func (s *Store) WriteGraph(ctx context.Context, g *graph.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write graph: begin tx: %w", err)
	}
	defer tx.Rollback()

	elements := g.Elements()
	for _, e := range elements {
		if err := writeElement(ctx, tx, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write graph: commit: %w", err)
	}

	slog.Debug("graph written",
		"vertices", len(g.Vertices),
		"edges", len(g.Edges))
	return nil
}

func writeElement(ctx context.Context, tx *sql.Tx, e *graph.Element) error {
	graphIDs, err := marshalGraphIDs(e.GraphIDs)
	if err != nil {
		return fmt.Errorf("write %s %s: %w", e.Kind, e.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO elements (id, kind, label, source_id, target_id, graph_ids)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			label = excluded.label,
			source_id = excluded.source_id,
			target_id = excluded.target_id,
			graph_ids = excluded.graph_ids
	`,
		e.ID.String(),
		string(e.Kind),
		e.Label,
		nullableID(e.Source),
		nullableID(e.Target),
		graphIDs,
	)
	if err != nil {
		return fmt.Errorf("write %s %s: %w", e.Kind, e.ID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM properties WHERE element_id = ?`, e.ID.String()); err != nil {
		return fmt.Errorf("write %s %s: clear properties: %w", e.Kind, e.ID, err)
	}

	for _, key := range e.Properties.Keys() {
		v, _ := e.Properties.Get(key)
		if v.IsNull() {
			slog.Debug("skipping unset property", "element", e.ID, "key", key)
			continue
		}
		raw := v.RawBytes()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO properties (element_id, key, type, value)
			VALUES (?, ?, ?, ?)
		`,
			e.ID.String(),
			key,
			int(raw[0]),
			raw,
		)
		if err != nil {
			return fmt.Errorf("write %s %s: property %q: %w", e.Kind, e.ID, key, err)
		}
	}

	return nil
}
