package main

import (
	"fmt"

	"github.com/spf13/cobra"

	syskit "github.com/goliatone/go-syskit"
)

// newLocaleCommand creates the `syskit locale` command.
func newLocaleCommand(ctx *cliContext) *cobra.Command {
	var (
		check    string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Report the normalized system locale",
		Long: `Report the effective system locale in canonical language-REGION form.

Candidate sources (LC_ALL, LC_MESSAGES, LANG, LANGUAGE) are tried in order;
the first that resolves against the locale database wins. When none resolve,
the configured fallback is used and a warning is emitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check != "" {
				normalized, ok := syskit.NormalizeLocale(check)
				if !ok {
					return fmt.Errorf("cannot normalize locale %q", check)
				}
				return printLocale(cmd, normalized, detailed)
			}

			locale := ctx.settings.Locale
			if locale == "" {
				detector, err := syskit.NewDetector(
					syskit.WithFallbackLocale(ctx.settings.Fallback),
				)
				if err != nil {
					return err
				}

				resolved, fellBack := detector.SystemLocale()
				if fellBack {
					ctx.logger.Warn("no locale source resolved, using fallback", "fallback", resolved)
				}
				locale = resolved
			} else {
				// Settings are validated at load time, so this cannot miss.
				locale, _ = syskit.NormalizeLocale(locale)
			}

			return printLocale(cmd, locale, detailed)
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "normalize the given locale instead of detecting")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "include language, region, and display names")
	return cmd
}

func printLocale(cmd *cobra.Command, locale string, detailed bool) error {
	out := cmd.OutOrStdout()

	if !detailed {
		fmt.Fprintln(out, locale)
		return nil
	}

	info, ok := syskit.LocaleInfo(locale)
	if !ok {
		return fmt.Errorf("no locale details for %q", locale)
	}

	fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("tag:"), info.Tag)
	fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("language:"), info.Language)
	if info.Region != "" {
		fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("region:"), info.Region)
	}
	fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("name:"), info.Name)
	fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("self name:"), info.SelfName)
	return nil
}
