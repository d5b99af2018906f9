package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	syskit "github.com/goliatone/go-syskit"
)

// newChecksumCommand creates the `syskit checksum` command.
func newChecksumCommand(ctx *cliContext) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "checksum <file>...",
		Short: "Compute file checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithm == "" {
				algorithm = ctx.settings.Algorithm
			}

			for _, path := range args {
				sum, err := syskit.ChecksumFile(path, algorithm)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "",
		"hash algorithm ("+strings.Join(syskit.Algorithms(), ", ")+")")
	return cmd
}
