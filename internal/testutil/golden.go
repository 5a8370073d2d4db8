package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares data against testdata/golden/{name}.golden relative
// to the calling test's package.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
//
// Regenerate only for output meant to change; a diff in a wire format
// fixture is a compatibility break.
func AssertGolden(t *testing.T, name string, data []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
