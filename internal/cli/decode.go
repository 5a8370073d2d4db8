package cli

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rascat/gradoop/internal/property"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Stream bool
}

// DecodeResult lists the decoded values.
type DecodeResult struct {
	Values []ValueView `json:"values"`
}

func (r DecodeResult) String() string {
	lines := make([]string, len(r.Values))
	for i, v := range r.Values {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex-encoded value",
		Long: `Decode a value from its hex-encoded tagged byte form and print its type
and contents.

With --stream the input may hold several values back to back; each is
printed on its own line.

Exit codes:
  0 - Decoded
  1 - Unknown tag, corrupt payload or nesting too deep
  2 - Command error (invalid hex)

Examples:
  propctl decode 0600000007677261646f6f70
  propctl decode --stream 01ff0e0007`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "decode a sequence of concatenated values")

	return cmd
}

func runDecode(opts *DecodeOptions, in string, cmd *cobra.Command) error {
	raw, err := parseHex(in)
	if err != nil {
		return err
	}

	result := DecodeResult{Values: []ValueView{}}
	if opts.Stream {
		r := bytes.NewReader(raw)
		for i := 0; ; i++ {
			v, err := property.ReadValue(r)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("decode value %d", i), err)
			}
			result.Values = append(result.Values, newValueView(v))
		}
	} else {
		if _, err := property.Builtin().Decode(raw); err != nil {
			return WrapExitError(ExitFailure, "decode failed", err)
		}
		result.Values = []ValueView{newValueView(property.FromRawBytes(raw))}
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return f.Success(result)
}

// parseHex accepts hex with optional 0x prefix and embedded whitespace.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.Join(strings.Fields(s), ""), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid hex input", err)
	}
	return raw, nil
}

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}
