package cmd

import (
	"github.com/mj1618/object-viewer/internal/ui"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the object viewer window",
	Long: `Open the interactive viewer: object tree, property inspector and console.

With --from the window opens with that object revealed and selected:
  focus       the object with keyboard focus
  mouse       the object under the pointer
  navigator   the last object reviewed with object navigation

Examples:
  object-viewer view
  object-viewer view --from focus
  object-viewer view --snapshot desktop.yaml --from navigator`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().String("from", "", "Select an object on open: focus, mouse, navigator")
}

func runView(cmd *cobra.Command, args []string) error {
	src, err := sourceFlag(cmd)
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	ctrl, err := newController(ui.Factory(app), 0)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.ShowFrom(src); err != nil {
		return err
	}
	return app.Run()
}
