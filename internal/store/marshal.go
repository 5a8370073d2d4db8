package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// marshalGraphIDs converts graph memberships to JSON TEXT for storage.
// Always produces an array, never null, so json_each works on every row.
func marshalGraphIDs(ids []uuid.UUID) (string, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ids); err != nil {
		return "", fmt.Errorf("marshal graph ids: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalGraphIDs parses JSON TEXT produced by marshalGraphIDs.
func unmarshalGraphIDs(data string) ([]uuid.UUID, error) {
	if data == "" || data == "[]" {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("unmarshal graph ids: %w", err)
	}
	return ids, nil
}

// nullableID stores uuid.Nil as NULL.
func nullableID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id.String()
}
