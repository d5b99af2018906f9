// Command syskit exposes the go-syskit helpers as subcommands: humanized
// byte sizes, locale normalization and detection, base64 text encoding, and
// file checksums.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	syskit "github.com/goliatone/go-syskit"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// cliContext carries state shared by every subcommand: loaded settings and
// the logger bound to the command's error stream.
type cliContext struct {
	settings syskit.Settings
	logger   *log.Logger
	verbose  bool
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{}
	var settingsPath string

	root := &cobra.Command{
		Use:   "syskit",
		Short: "Small system utilities: sizes, locales, base64, checksums",
		Long: TitleStyle.Render("syskit") + SubtitleStyle.Render(" - small system utilities") + `

syskit bundles a handful of thin helpers around everyday system chores:

` + SubtitleStyle.Render("Examples:") + `
  syskit size 1536              Humanize a byte count ("1.50 KB")
  syskit locale                 Print the normalized system locale
  syskit locale --check en_us   Canonicalize a locale identifier
  syskit base64 encode "hi"     Base64-encode text
  syskit checksum file.iso      Compute a file checksum`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: false,
			})
			if ctx.verbose {
				ctx.logger.SetLevel(log.DebugLevel)
			}

			settings, err := syskit.NewSettingsLoader(settingsPath).Load()
			if err != nil {
				return err
			}
			ctx.settings = settings
			ctx.logger.Debug("settings loaded", "path", settingsPath, "settings", settings)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&settingsPath, "config", defaultSettingsPath(), "settings file")

	root.AddCommand(
		newSizeCommand(ctx),
		newLocaleCommand(ctx),
		newBase64Command(ctx),
		newChecksumCommand(ctx),
		newVersionCommand(),
	)
	return root
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "syskit", "config.yaml")
}

// versionString returns a formatted version string for display.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command with fang's styled wrapper. It is called by
// main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
