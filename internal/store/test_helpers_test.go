package store

import (
	"path/filepath"
	"testing"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/testutil"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// loadCommunity loads the shared graph fixture with deterministic ids.
func loadCommunity(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.LoadYAMLFile("../graph/testdata/community.yaml", testutil.NewDeterministicIDs())
	if err != nil {
		t.Fatalf("LoadYAMLFile() failed: %v", err)
	}
	return g
}
