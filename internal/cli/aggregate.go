package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/aggregate"
)

// AggregateOptions holds flags for the aggregate command.
type AggregateOptions struct {
	*RootOptions
	Database string
	Key      string
	Func     string
	Kind     string
}

// AggregateResult is the extreme found by the aggregate command.
type AggregateResult struct {
	Key     string     `json:"key"`
	Func    string     `json:"func"`
	Value   *ValueView `json:"value"`
	Count   int        `json:"count"`
	Skipped int        `json:"skipped"`
}

func (r AggregateResult) String() string {
	if r.Value == nil {
		return fmt.Sprintf("%s(%s): no values", r.Func, r.Key)
	}
	s := fmt.Sprintf("%s(%s) = %s (%d values)", r.Func, r.Key, r.Value, r.Count)
	if r.Skipped > 0 {
		s += fmt.Sprintf(", %d incomparable skipped", r.Skipped)
	}
	return s
}

// NewAggregateCommand creates the aggregate command.
func NewAggregateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AggregateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Find the minimum or maximum of a property",
		Long: `Fold a property over the stored vertices and edges and print its minimum
or maximum.

Values of different numeric widths compete by value. When any value is a
number, only numbers take part; otherwise only values sharing the lowest
type tag do. The rest are skipped and counted.

Examples:
  propctl aggregate --db ./graph.db --key age --fn max
  propctl aggregate --db ./graph.db --key since --fn min --kind edge`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Key, "key", "", "property key (required)")
	_ = cmd.MarkFlagRequired("key")
	cmd.Flags().StringVar(&opts.Func, "fn", "", "aggregate function (min|max) (required)")
	_ = cmd.MarkFlagRequired("fn")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "only elements of this kind (vertex|edge)")

	return cmd
}

func runAggregate(opts *AggregateOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	fn, err := aggregate.ParseFunc(opts.Func)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --fn", err)
	}
	kind, err := parseKind(opts.Kind)
	if err != nil {
		return err
	}

	st, closeFn, err := openExisting(opts.Database)
	if err != nil {
		return err
	}
	defer closeFn()

	elements, err := readMembers(ctx, st, kind)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read elements", err)
	}

	res, err := aggregate.Fold(elements, opts.Key, fn)
	if err != nil {
		return WrapExitError(ExitFailure, "aggregate failed", err)
	}

	result := AggregateResult{
		Key:     opts.Key,
		Func:    string(fn),
		Count:   res.Count,
		Skipped: res.Skipped,
	}
	if !res.Value.IsNull() {
		vv := newValueView(res.Value)
		result.Value = &vv
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return f.Success(result)
}
