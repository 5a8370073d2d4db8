package testutil

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

// DeterministicIDs hands out element ids 00000000-0000-0000-0000-000000000001,
// ...0002 and so on, so the same fixture always produces the same ids and
// therefore the same golden output.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicIDs struct {
	mu sync.Mutex
	n  uint64
}

// NewDeterministicIDs creates a sequence whose first id ends in 1.
func NewDeterministicIDs() *DeterministicIDs {
	return &DeterministicIDs{}
}

// Generate returns the next id in the sequence.
func (g *DeterministicIDs) Generate() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return ID(g.n)
}

// Reset restarts the sequence. The next Generate returns ID(1).
func (g *DeterministicIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}

// ID returns the id with n in its low 8 bytes.
func ID(n uint64) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}
