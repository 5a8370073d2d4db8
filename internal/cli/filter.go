package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/literal"
	"github.com/Rascat/gradoop/internal/predicate"
	"github.com/Rascat/gradoop/internal/property"
)

// FilterOptions holds flags for the filter command.
type FilterOptions struct {
	*RootOptions
	Database string
	Key      string
	Op       string
	Value    string
	As       string
	Kind     string
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print elements whose property satisfies a comparison",
		Long: `Print the stored vertices and edges whose value under --key compares to
--value as --op says. Elements without the key, or whose value cannot be
ordered against --value, do not match.

--value is a CUE literal; --as narrows it like the encode command does.

Examples:
  propctl filter --db ./graph.db --key age --op '>=' --value 35
  propctl filter --db ./graph.db --key name --op eq --value '"Alice"'
  propctl filter --db ./graph.db --key since --op lt --value 2014 --kind edge`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Key, "key", "", "property key (required)")
	_ = cmd.MarkFlagRequired("key")
	cmd.Flags().StringVar(&opts.Op, "op", "", "comparison operator (=|!=|<|<=|>|>= or eq|ne|lt|le|gt|ge) (required)")
	_ = cmd.MarkFlagRequired("op")
	cmd.Flags().StringVar(&opts.Value, "value", "", "literal to compare against (required)")
	_ = cmd.MarkFlagRequired("value")
	cmd.Flags().StringVar(&opts.As, "as", "", fmt.Sprintf("narrow --value to a kind (%s)", strings.Join(literal.Kinds, "|")))
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "only elements of this kind (vertex|edge)")

	return cmd
}

func runFilter(opts *FilterOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	op, err := predicate.ParseOperator(opts.Op)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --op", err)
	}
	kind, err := parseKind(opts.Kind)
	if err != nil {
		return err
	}
	x, err := literal.Parse(opts.Value, opts.As)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --value", err)
	}
	want, err := property.Create(x)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --value", err)
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

	matches, err := predicate.Filter(elements, opts.Key, op, want)
	if err != nil {
		return WrapExitError(ExitFailure, "filter failed", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return f.Success(newElementList(matches))
}
