package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	Database string
	Kind     string
	Graph    string
	Stats    bool
}

// TypeCount is one row of the --stats output.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// StatsResult counts stored property values by type.
type StatsResult struct {
	Types []TypeCount `json:"types"`
	Total int         `json:"total"`
}

func (r StatsResult) String() string {
	var b strings.Builder
	for _, tc := range r.Types {
		fmt.Fprintf(&b, "%-10s %d\n", tc.Type, tc.Count)
	}
	fmt.Fprintf(&b, "%-10s %d", "total", r.Total)
	return b.String()
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print stored elements and their properties",
		Long: `Print the elements in the store in insertion order, with every property
decoded and its type shown.

Examples:
  propctl dump --db ./graph.db
  propctl dump --db ./graph.db --kind edge
  propctl dump --db ./graph.db --graph 0192...
  propctl dump --db ./graph.db --stats`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "only elements of this kind (graph|vertex|edge)")
	cmd.Flags().StringVar(&opts.Graph, "graph", "", "only the given graph head and its members")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "count stored values by type instead")

	return cmd
}

func runDump(opts *DumpOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	kind, err := parseKind(opts.Kind)
	if err != nil {
		return err
	}

	st, closeFn, err := openExisting(opts.Database)
	if err != nil {
		return err
	}
	defer closeFn()

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	if opts.Stats {
		counts, err := st.CountByType(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to count properties", err)
		}
		result := StatsResult{Types: []TypeCount{}}
		tags := make([]property.Tag, 0, len(counts))
		for t := range counts {
			tags = append(tags, t)
		}
		slices.Sort(tags)
		for _, t := range tags {
			result.Types = append(result.Types, TypeCount{Type: t.String(), Count: counts[t]})
			result.Total += counts[t]
		}
		return f.Success(result)
	}

	var elements []*graph.Element
	if opts.Graph != "" {
		id, err := uuid.Parse(opts.Graph)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --graph", err)
		}
		g, err := st.ReadGraph(ctx, id)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read graph %s", id), err)
		}
		for _, e := range g.Elements() {
			if kind == "" || e.Kind == kind {
				elements = append(elements, e)
			}
		}
	} else {
		elements, err = st.ReadElements(ctx, kind)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read elements", err)
		}
	}

	return f.Success(newElementList(elements))
}
