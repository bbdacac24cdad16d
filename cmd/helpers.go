package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/object-viewer/internal/config"
	"github.com/mj1618/object-viewer/internal/platform"
	"github.com/mj1618/object-viewer/internal/session"
	"github.com/spf13/cobra"
)

// configPath returns --config or the default location.
func configPath() string {
	if p, _ := rootCmd.PersistentFlags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}

// loadConfig opens the persisted options.
func loadConfig() *config.Store {
	return config.Load(configPath(), logger)
}

// newProvider connects to the host named by the root flags.
func newProvider(iconTTL time.Duration) (*platform.Provider, error) {
	snapshot, _ := rootCmd.PersistentFlags().GetString("snapshot")
	provider, err := platform.NewProvider(platform.Options{Snapshot: snapshot, IconCacheTTL: iconTTL})
	if err != nil {
		return nil, err
	}
	logger.Debug("provider ready", "snapshot", snapshot)
	return provider, nil
}

// newController returns the process-wide session. A nil window factory
// gives a headless session.
func newController(window session.WindowFactory, iconTTL time.Duration) (*session.Controller, error) {
	provider, err := newProvider(iconTTL)
	if err != nil {
		return nil, err
	}
	ctrl, err := session.Shared(session.Options{
		Host:   provider.Host,
		Store:  loadConfig(),
		Icons:  provider.Icons,
		Logger: logger,
		Window: window,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return ctrl, nil
}

// sourceFlag parses the --from flag.
func sourceFlag(cmd *cobra.Command) (platform.Source, error) {
	from, _ := cmd.Flags().GetString("from")
	return platform.ParseSource(from)
}
