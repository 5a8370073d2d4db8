package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/literal"
	"github.com/Rascat/gradoop/internal/property"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	As string
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <literal>",
		Short: "Encode a literal into its tagged byte form",
		Long: `Encode a CUE literal and print the encoded bytes as hex.

Integers encode as int64 and floats as float64 unless --as narrows them.

Examples:
  propctl encode 42
  propctl encode 42 --as int32
  propctl encode '"1.50"' --as decimal
  propctl encode '{name: "Alice", tags: ["db"]}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", fmt.Sprintf("narrow the literal to a kind (%s)", strings.Join(literal.Kinds, "|")))

	return cmd
}

func runEncode(opts *EncodeOptions, expr string, cmd *cobra.Command) error {
	x, err := literal.Parse(expr, opts.As)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid literal", err)
	}

	v, err := property.Create(x)
	if err != nil {
		return WrapExitError(ExitFailure, "encode failed", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return f.Success(newValueView(v))
	}
	return f.Success(hexString(v.RawBytes()))
}
