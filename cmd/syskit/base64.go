package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	syskit "github.com/goliatone/go-syskit"
)

// newBase64Command creates the `syskit base64` command group.
func newBase64Command(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64 text",
	}
	cmd.AddCommand(newBase64EncodeCommand(ctx), newBase64DecodeCommand(ctx))
	return cmd
}

func newBase64EncodeCommand(ctx *cliContext) *cobra.Command {
	var urlSafe bool

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Base64-encode text from the argument or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTextInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), syskit.EncodeBase64(input, urlSafe))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&urlSafe, "url", "u", false, "use the URL-safe alphabet")
	return cmd
}

func newBase64DecodeCommand(ctx *cliContext) *cobra.Command {
	var urlSafe bool

	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode base64 text from the argument or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTextInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := syskit.DecodeBase64(input, urlSafe)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&urlSafe, "url", "u", false, "use the URL-safe alphabet")
	return cmd
}

// readTextInput returns the single positional argument, or the full stdin
// stream when the argument is absent or "-".
func readTextInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
