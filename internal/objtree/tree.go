package objtree

import (
	"image"
	"log/slog"

	"github.com/mj1618/object-viewer/internal/logging"
	"github.com/mj1618/object-viewer/internal/model"
)

// Modes supplies the population and traversal modes. SetPopulationMode is
// expected to persist the choice.
type Modes interface {
	PopulationMode() model.PopulationMode
	SetPopulationMode(model.PopulationMode)
	TraversalMode() model.TraversalMode
}

// IconLoader extracts a small icon for an application path.
type IconLoader interface {
	SmallIcon(path string) (image.Image, error)
}

// Node is one entry of the tree. Object is nil once the node is released.
type Node struct {
	Object      model.Object
	Text        string
	HasChildren bool        // Expand affordance, set before children exist
	Icon        image.Image // Owning application's icon, when it differs from the parent's

	parent   *Node
	children []*Node
	expanded bool
}

// Children returns the materialized children.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Expanded reports whether the node's children are materialized.
func (n *Node) Expanded() bool { return n.expanded }

// Tree is the lazily populated node hierarchy rooted at the desktop.
type Tree struct {
	modes    Modes
	icons    IconLoader
	log      *slog.Logger
	root     *Node
	selected *Node
	onSelect func(*Node)
}

// Option configures a Tree.
type Option func(*Tree)

// WithIcons decorates nodes with application icons.
func WithIcons(icons IconLoader) Option {
	return func(t *Tree) { t.icons = icons }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tree) { t.log = log }
}

// New creates a tree whose root is bound to desktop.
func New(desktop model.Object, modes Modes, opts ...Option) *Tree {
	t := &Tree{modes: modes}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logging.NewNop()
	}
	t.Reset(desktop)
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Reset discards every node and rebinds the root to desktop.
func (t *Tree) Reset(desktop model.Object) {
	if t.root != nil {
		t.Collapse(t.root)
	}
	t.root = &Node{Object: desktop, Text: model.DisplayText(desktop), HasChildren: true}
	t.setSelected(nil)
}

// OnSelect registers fn to run whenever the selection changes. fn receives
// nil when the selection is cleared.
func (t *Tree) OnSelect(fn func(*Node)) {
	t.onSelect = fn
}

// Selected returns the selected node, or nil.
func (t *Tree) Selected() *Node { return t.selected }

// Select makes n the current selection.
func (t *Tree) Select(n *Node) {
	if n == t.selected {
		return
	}
	t.setSelected(n)
}

func (t *Tree) setSelected(n *Node) {
	prev := t.selected
	t.selected = n
	if t.onSelect != nil && (prev != nil || n != nil) {
		t.onSelect(n)
	}
}

// Expand materializes n's children unless they already are.
func (t *Tree) Expand(n *Node) {
	if n == nil || n.expanded {
		return
	}
	t.Populate(n)
	n.expanded = true
}

// Populate replaces n's children with one node per child object, derived
// with the active population mode. A node without an object gets no children.
func (t *Tree) Populate(n *Node) {
	if n == nil {
		return
	}
	t.releaseChildren(n)
	if n.Object == nil {
		return
	}

	pop := t.modes.PopulationMode()
	switch pop {
	case model.PopulateIterator:
		mode := t.modes.TraversalMode()
		for obj := range NewIterator(n.Object, model.RelationChildren, mode).All() {
			child := t.appendChild(n, obj)
			child.HasChildren = obj.FirstChild(mode) != nil
		}
	default:
		for _, obj := range n.Object.Children() {
			if obj == nil {
				continue
			}
			child := t.appendChild(n, obj)
			child.HasChildren = obj.FirstChild(model.HostDefault) != nil
		}
	}
	t.log.Debug("populated node", "node", n.Text, "mode", pop, "children", len(n.children))
}

func (t *Tree) appendChild(parent *Node, obj model.Object) *Node {
	child := &Node{Object: obj, Text: model.DisplayText(obj), parent: parent}
	parent.children = append(parent.children, child)

	app := obj.App()
	if t.icons == nil || app == nil || app.Path == "" || model.SameApp(app, parent.Object.App()) {
		return child
	}
	img, err := t.icons.SmallIcon(app.Path)
	if err != nil {
		t.log.Debug("icon extraction failed", "app", app.Name, "path", app.Path, "err", err)
		return child
	}
	child.Icon = img
	return child
}

// Collapse releases every descendant of n. Collapsing a collapsed node does
// nothing. A selection inside the released subtree is cleared.
func (t *Tree) Collapse(n *Node) {
	if n == nil {
		return
	}
	if t.selected != nil && t.selected != n && isDescendant(t.selected, n) {
		t.setSelected(nil)
	}
	t.releaseChildren(n)
	n.expanded = false
}

// CollapseAll returns the tree to its root-only state.
func (t *Tree) CollapseAll() {
	t.Collapse(t.root)
}

func (t *Tree) releaseChildren(n *Node) {
	for _, c := range n.children {
		release(c)
	}
	n.children = nil
}

func release(n *Node) {
	for _, c := range n.children {
		release(c)
	}
	n.children = nil
	n.parent = nil
	n.Object = nil
	n.Icon = nil
	n.expanded = false
}

func isDescendant(n, ancestor *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Find returns the first materialized node bound to the object with id,
// searching depth-first from the root.
func (t *Tree) Find(id string) *Node {
	var walk func(n *Node) *Node
	walk = func(n *Node) *Node {
		if n.Object != nil && n.Object.ID() == id {
			return n
		}
		for _, c := range n.children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(t.root)
}

// Size returns the number of materialized nodes, root included.
func (t *Tree) Size() int {
	var count func(n *Node) int
	count = func(n *Node) int {
		total := 1
		for _, c := range n.children {
			total += count(c)
		}
		return total
	}
	return count(t.root)
}
