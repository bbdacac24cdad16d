package cmd

import (
	"fmt"

	"github.com/mj1618/object-viewer/internal/output"
	"github.com/mj1618/object-viewer/internal/platform"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the object tree with an object revealed",
	Long: `Reveal an object the way the viewer does, expanding only the nodes on its
ancestor chain, and print the materialized tree. Selecting an object switches
the persisted population mode to iterator.

Examples:
  object-viewer tree --from focus
  object-viewer tree --id calc-7 --flat
  object-viewer tree --expand desktop,notepad`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("from", "", "Reveal this object: focus, mouse, navigator")
	treeCmd.Flags().String("id", "", "Reveal the object with this ID")
	treeCmd.Flags().StringSlice("expand", nil, "Expand these node IDs afterwards, in order")
	treeCmd.Flags().Bool("flat", false, "Print a flat list with path breadcrumbs")
	treeCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runTree(cmd *cobra.Command, args []string) error {
	src, err := sourceFlag(cmd)
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	expand, _ := cmd.Flags().GetStringSlice("expand")
	flat, _ := cmd.Flags().GetBool("flat")
	if id != "" && src != platform.SourceNone {
		return fmt.Errorf("--id and --from are mutually exclusive")
	}

	ctrl, err := newController(nil, 0)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	switch {
	case id != "":
		obj := ctrl.Host().Lookup(id)
		if obj == nil {
			return fmt.Errorf("no object with id %q", id)
		}
		err = ctrl.Show(obj, false)
	default:
		err = ctrl.ShowFrom(src)
	}
	if err != nil {
		return err
	}

	for _, nodeID := range expand {
		n := ctrl.Tree().Find(nodeID)
		if n == nil {
			return fmt.Errorf("node %q is not in the tree", nodeID)
		}
		ctrl.Expand(n)
	}

	res := output.NewTreeResult(ctrl.Tree(), output.ModesOf(ctrl.PopulationMode(), ctrl.TraversalMode()))
	res.Source = src.String()
	res.Status = ctrl.Status()
	if flat {
		return output.Print(res.Flat())
	}
	return output.Print(res)
}
