package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/property"
)

// CompareResult is the outcome of comparing two encoded values.
type CompareResult struct {
	Left   ValueView `json:"left"`
	Right  ValueView `json:"right"`
	Result int       `json:"result"`
}

func (r CompareResult) String() string {
	op := "="
	switch {
	case r.Result < 0:
		op = "<"
	case r.Result > 0:
		op = ">"
	}
	return fmt.Sprintf("%s %s %s", r.Left.Value, op, r.Right.Value)
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <hex> <hex>",
		Short: "Order two hex-encoded values",
		Long: `Compare two encoded values and print how they order.

Numbers of different widths compare by value; decimals compare exactly.
Values of unrelated types (a string and a number, say) cannot be ordered.

Exit codes:
  0 - Compared
  1 - Incompatible types or corrupt payload
  2 - Command error (invalid hex)

Examples:
  propctl compare 02ffffff9c 030000000000000001
  propctl compare --format json 0100 01ff`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runCompare(opts *RootOptions, left, right string, cmd *cobra.Command) error {
	a, err := parseHex(left)
	if err != nil {
		return err
	}
	b, err := parseHex(right)
	if err != nil {
		return err
	}

	va, vb := property.FromRawBytes(a), property.FromRawBytes(b)
	c, err := va.Compare(vb)
	if err != nil {
		return WrapExitError(ExitFailure, "compare failed", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return f.Success(CompareResult{
		Left:   newValueView(va),
		Right:  newValueView(vb),
		Result: c,
	})
}
