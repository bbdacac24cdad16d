package objtree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mj1618/object-viewer/internal/model"
)

// ErrUnreachable is returned by SelectObject when the target cannot be found
// by expanding its ancestor chain. The tree is left collapsed along the
// partial path with nothing selected.
var ErrUnreachable = errors.New("object is not reachable from the tree root")

// ErrNoObject is returned by SelectObject for a nil target.
var ErrNoObject = errors.New("no object to select")

// SelectObject reveals and selects target. The tree is collapsed, then only
// the nodes on target's ancestor chain are expanded. Population is switched
// to iterator mode, and the switch persists.
func (t *Tree) SelectObject(target model.Object) (*Node, error) {
	if target == nil {
		return nil, ErrNoObject
	}
	t.modes.SetPopulationMode(model.PopulateIterator)
	t.CollapseAll()
	t.setSelected(nil)

	line := AncestorChain(target, t.modes.TraversalMode())
	cur := t.root
	if !model.SameObject(line[0], cur.Object) {
		return nil, fmt.Errorf("%w: top ancestor %s is not the desktop", ErrUnreachable, model.DisplayText(line[0]))
	}
	for _, want := range line[1:] {
		t.Expand(cur)
		next := childFor(cur, want)
		if next == nil {
			return nil, fmt.Errorf("%w: %s not found under %s", ErrUnreachable, model.DisplayText(want), cur.Text)
		}
		cur = next
	}

	t.Select(cur)
	t.log.Debug("selected object", "node", cur.Text)
	return cur, nil
}

// AncestorChain returns [top, ..., parent(target), target] following the
// parent relation in mode.
func AncestorChain(target model.Object, mode model.TraversalMode) []model.Object {
	line := Collect(NewIterator(target, model.RelationParent, mode))
	slices.Reverse(line)
	return line
}

// childFor scans n's children in population order for obj.
func childFor(n *Node, obj model.Object) *Node {
	for _, c := range n.children {
		if model.SameObject(c.Object, obj) {
			return c
		}
	}
	return nil
}

// PathTo returns the nodes from the root down to n.
func PathTo(n *Node) []*Node {
	var path []*Node
	for ; n != nil; n = n.parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}
