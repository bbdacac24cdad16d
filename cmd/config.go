package cmd

import (
	"github.com/mj1618/object-viewer/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted viewer options",
	Long: `Options:
  nvdaReviewMode     follow the host's simple review preference (default true)
  simpleReviewMode   use simplified relations when nvdaReviewMode is off (default false)
  addTreeNotesMode   tree population mode: children or iterator (default children)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one option, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadConfig()
		if len(args) == 0 {
			return output.Print(store.All())
		}
		v, err := store.Get(args[0])
		if err != nil {
			return err
		}
		return output.Print(map[string]string{args[0]: v})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change and persist an option",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadConfig()
		if err := store.Set(args[0], args[1]); err != nil {
			return err
		}
		logger.Info("config saved", "path", store.Path(), "key", args[0])
		return output.Print(store.All())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd)
	configCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
}
