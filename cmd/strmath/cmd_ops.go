package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"strmath/pkg/mathx"
	"strmath/pkg/textutil"
)

func newTrimCmds() []*cobra.Command {
	ops := []struct {
		use   string
		short string
		fn    func(string) string
	}{
		{"ltrim", "Remove leading whitespace", textutil.LTrim},
		{"rtrim", "Remove trailing whitespace", textutil.RTrim},
		{"trim", "Remove leading and trailing whitespace", textutil.Trim},
	}

	cmds := make([]*cobra.Command, 0, len(ops))

	for _, op := range ops {
		op := op // per-iteration copy; go directive predates Go 1.22 loopvar semantics

		var quote bool

		cmd := &cobra.Command{
			Use:   op.use + " <text>",
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := op.fn(args[0])
				if quote {
					out = "'" + out + "'"
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), out)

				return err
			},
		}

		cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Wrap the result in single quotes")

		cmds = append(cmds, cmd)
	}

	return cmds
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two 32-bit integers",
		Long: `Add two 32-bit signed integers. The sum wraps around on overflow,
the same as exqudens_math_add in the C library.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt32(args[0])
			if err != nil {
				return err
			}

			b, err := parseInt32(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), mathx.Add(a, b))

			return err
		},
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}

	return int32(v), nil
}
