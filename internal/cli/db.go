package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/store"
)

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openExisting opens a database that must already exist, so a mistyped
// --db path is reported instead of silently creating an empty store.
func openExisting(path string) (*store.Store, func(), error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("database not found: %s", path), err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	closeFn := func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}
	return st, closeFn, nil
}

// readMembers returns the stored elements of kind, or every vertex and
// edge when kind is empty. Graph heads are only returned when asked for.
func readMembers(ctx context.Context, st *store.Store, kind graph.ElementKind) ([]*graph.Element, error) {
	if kind != "" {
		return st.ReadElements(ctx, kind)
	}
	all, err := st.ReadElements(ctx, "")
	if err != nil {
		return nil, err
	}
	members := all[:0]
	for _, e := range all {
		if e.Kind != graph.KindGraphHead {
			members = append(members, e)
		}
	}
	return members, nil
}
