package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	syskit "github.com/goliatone/go-syskit"
)

// newSizeCommand creates the `syskit size` command. Range validation happens
// here, before the formatter is called: the library assumes valid input.
func newSizeCommand(ctx *cliContext) *cobra.Command {
	var (
		precision int
		locale    string
	)

	cmd := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Convert a byte count to a human-readable size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bytes, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q", args[0])
			}
			if bytes < 0 {
				return fmt.Errorf("byte count must be non-negative, got %d", bytes)
			}

			if !cmd.Flags().Changed("precision") {
				precision = ctx.settings.Precision
			}
			if precision < 0 || precision > syskit.MaxSizePrecision {
				return fmt.Errorf("precision must be within [0, %d], got %d", syskit.MaxSizePrecision, precision)
			}

			if locale == "" {
				locale = ctx.settings.Locale
			}

			output := ""
			if locale != "" {
				formatted, ok := syskit.FormatSizeIn(locale, bytes, precision)
				if !ok {
					ctx.logger.Warn("locale not recognized, using plain formatting", "locale", locale)
				}
				output = formatted
			} else {
				output = syskit.FormatSize(bytes, precision)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", syskit.DefaultSizePrecision, "fractional digits, 0 to 10")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "render digits and separators for this locale")
	return cmd
}
