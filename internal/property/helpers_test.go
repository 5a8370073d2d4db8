package property

import (
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertNativeEqual compares decoded values, treating decimals and times by
// value rather than by internal representation.
func assertNativeEqual(t *testing.T, want, got any) {
	t.Helper()
	switch w := want.(type) {
	case *apd.Decimal:
		g, ok := got.(*apd.Decimal)
		require.True(t, ok, "got %T, want *apd.Decimal", got)
		assert.Equal(t, w.String(), g.String())
	case time.Time:
		g, ok := got.(time.Time)
		require.True(t, ok, "got %T, want time.Time", got)
		assert.True(t, w.Equal(g), "got %v, want %v", g, w)
	case []any:
		g, ok := got.([]any)
		require.True(t, ok, "got %T, want []any", got)
		require.Len(t, g, len(w))
		for i := range w {
			assertNativeEqual(t, w[i], g[i])
		}
	case map[string]any:
		g, ok := got.(map[string]any)
		require.True(t, ok, "got %T, want map[string]any", got)
		require.Len(t, g, len(w))
		for k := range w {
			require.Contains(t, g, k)
			assertNativeEqual(t, w[k], g[k])
		}
	default:
		assert.Equal(t, want, got)
	}
}

func mustCreate(t *testing.T, v any) Value {
	t.Helper()
	pv, err := Create(v)
	require.NoError(t, err)
	return pv
}
