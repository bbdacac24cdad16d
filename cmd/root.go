package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/object-viewer/internal/logging"
	"github.com/mj1618/object-viewer/internal/output"
	"github.com/mj1618/object-viewer/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "object-viewer",
	Short: "Browse the accessibility object tree of the desktop",
	Long: `Inspect the accessibility objects a screen reader perceives: a lazily populated
object tree, a property inspector and a Lua console bound to the selected object.

Without a live host the viewer serves an accessibility snapshot (--snapshot) or
a built-in demo desktop.`,
	SilenceUsage: true,
}

// logger is replaced in PersistentPreRunE once --log-level is known.
var logger = logging.NewNop()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("snapshot", "", "Accessibility snapshot file (YAML or JSON); default is the built-in demo desktop")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.object-viewer/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		lvl, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		logger = logging.New(lvl)
		slog.SetDefault(logger)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		if output.OutputFormat, err = output.ParseFormat(format); err != nil {
			return err
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
