package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCommand creates the `syskit version` command.
func newVersionCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print module metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			if plain {
				fmt.Fprintln(out, Version)
				return
			}

			fmt.Fprintln(out, TitleStyle.Render("syskit")+" "+versionString())
			fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("module:"), "github.com/goliatone/go-syskit")
			fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("commit:"), Commit)
			fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("built:"), BuildDate)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the bare version only")
	return cmd
}
