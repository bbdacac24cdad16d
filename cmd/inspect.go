package cmd

import (
	"fmt"

	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/output"
	"github.com/mj1618/object-viewer/internal/platform"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the developer attributes of an object",
	Long: `Print the inspector rows of one object: each developer attribute split into
a name and a value.

Examples:
  object-viewer inspect --from focus
  object-viewer inspect --id notepad-edit --format json --pretty`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("from", "focus", "Inspect this object: focus, mouse, navigator")
	inspectCmd.Flags().String("id", "", "Inspect the object with this ID (overrides --from)")
	inspectCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	src, err := sourceFlag(cmd)
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")

	provider, err := newProvider(0)
	if err != nil {
		return err
	}

	var obj model.Object
	if id != "" {
		obj = provider.Host.Lookup(id)
	} else {
		obj = platform.Resolve(provider.Host, src)
	}
	if obj == nil {
		return fmt.Errorf("no object to inspect")
	}
	return output.Print(output.NewInspectResult(obj))
}
