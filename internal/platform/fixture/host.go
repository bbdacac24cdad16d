package fixture

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/mj1618/object-viewer/internal/model"
)

//go:embed demo.yaml
var demoSnapshot []byte

// Host serves a snapshot through the model.Object relations.
// Hidden elements are transparent to simplified relations: their children
// are promoted to the nearest visible ancestor.
type Host struct {
	root      *node
	byID      map[string]*node
	focus     *node
	mouse     *node
	navigator *node
	simple    bool
}

type node struct {
	spec   NodeSpec
	app    *model.AppModule
	parent *node
	index  int
	kids   []*node

	simpleParent *node
	simpleKids   []*node
	simpleIndex  int // -1 when hidden
}

// New builds a host from a snapshot.
func New(snap Snapshot) (*Host, error) {
	h := &Host{byID: make(map[string]*node), simple: snap.SimpleReviewMode}

	root, err := h.build(snap.Desktop, nil, 0, nil)
	if err != nil {
		return nil, err
	}
	// The desktop is always visible.
	root.spec.Hidden = false
	h.root = root
	h.linkSimplified(root)

	if h.focus, err = h.resolve("focus", snap.Focus); err != nil {
		return nil, err
	}
	if h.mouse, err = h.resolve("mouse", snap.Mouse); err != nil {
		return nil, err
	}
	if h.navigator, err = h.resolve("navigator", snap.Navigator); err != nil {
		return nil, err
	}
	return h, nil
}

// Demo returns a host serving the built-in demo desktop.
func Demo() *Host {
	snap, err := ParseSnapshot(demoSnapshot, false)
	if err != nil {
		panic(fmt.Sprintf("fixture: invalid demo snapshot: %v", err))
	}
	h, err := New(snap)
	if err != nil {
		panic(fmt.Sprintf("fixture: invalid demo snapshot: %v", err))
	}
	return h
}

func (h *Host) build(spec NodeSpec, parent *node, index int, inherited *model.AppModule) (*node, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("element %q (%s) has no id", spec.Name, spec.Role)
	}
	if _, dup := h.byID[spec.ID]; dup {
		return nil, fmt.Errorf("duplicate element id %q", spec.ID)
	}
	n := &node{spec: spec, parent: parent, index: index, app: inherited, simpleIndex: -1}
	if spec.App != nil {
		app := *spec.App
		n.app = &app
	}
	h.byID[spec.ID] = n

	for i, child := range spec.Children {
		kid, err := h.build(child, n, i, n.app)
		if err != nil {
			return nil, err
		}
		n.kids = append(n.kids, kid)
	}
	n.spec.Children = nil
	return n, nil
}

// linkSimplified computes the flattened relations below the visible node p.
func (h *Host) linkSimplified(p *node) {
	for _, n := range h.byID {
		n.simpleKids = promoteHidden(n.kids)
	}
	var walk func(p *node)
	walk = func(p *node) {
		for i, c := range p.simpleKids {
			c.simpleParent = p
			c.simpleIndex = i
			walk(c)
		}
	}
	walk(p)
	// Hidden elements still report their nearest visible ancestor.
	for _, n := range h.byID {
		if n.spec.Hidden {
			for a := n.parent; a != nil; a = a.parent {
				if !a.spec.Hidden {
					n.simpleParent = a
					break
				}
			}
		}
	}
}

// promoteHidden replaces hidden elements with their own flattened children.
func promoteHidden(kids []*node) []*node {
	var result []*node
	for _, k := range kids {
		if k.spec.Hidden {
			result = append(result, promoteHidden(k.kids)...)
		} else {
			result = append(result, k)
		}
	}
	return result
}

func (h *Host) resolve(what, id string) (*node, error) {
	if id == "" {
		return h.root, nil
	}
	n, ok := h.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s refers to unknown element id %q", what, id)
	}
	return n, nil
}

func (h *Host) Desktop() model.Object { return h.wrap(h.root) }
func (h *Host) Focus() model.Object { return h.wrap(h.focus) }
func (h *Host) Mouse() model.Object { return h.wrap(h.mouse) }
func (h *Host) Navigator() model.Object { return h.wrap(h.navigator) }
func (h *Host) SimpleReviewMode() bool { return h.simple }

// Lookup resolves an element by id, or returns nil.
func (h *Host) Lookup(id string) model.Object {
	return h.wrap(h.byID[id])
}

// SetNavigator moves the review position, as object navigation in the host would.
func (h *Host) SetNavigator(obj model.Object) {
	if obj == nil {
		return
	}
	if n, ok := h.byID[obj.ID()]; ok {
		h.navigator = n
	}
}

// Count returns the number of elements in the snapshot.
func (h *Host) Count() int {
	return len(h.byID)
}

func (h *Host) wrap(n *node) model.Object {
	if n == nil {
		return nil
	}
	return &object{host: h, n: n}
}

// object is a handle to a snapshot element. Handles are created per call,
// so identity is by ID, as with a live host.
type object struct {
	host *Host
	n    *node
}

func (o *object) ID() string { return o.n.spec.ID }
func (o *object) Role() string { return o.n.spec.Role }
func (o *object) Name() string { return o.n.spec.Name }

func (o *object) App() *model.AppModule { return o.n.app }

func (o *object) FirstChild(mode model.TraversalMode) model.Object {
	kids := o.n.kids
	if mode == model.Simplified {
		kids = o.n.simpleKids
	}
	if len(kids) == 0 {
		return nil
	}
	return o.host.wrap(kids[0])
}

func (o *object) Next(mode model.TraversalMode) model.Object {
	if mode == model.Simplified {
		p := o.n.simpleParent
		if p == nil || o.n.simpleIndex < 0 || o.n.simpleIndex+1 >= len(p.simpleKids) {
			return nil
		}
		return o.host.wrap(p.simpleKids[o.n.simpleIndex+1])
	}
	p := o.n.parent
	if p == nil || o.n.index+1 >= len(p.kids) {
		return nil
	}
	return o.host.wrap(p.kids[o.n.index+1])
}

func (o *object) Parent(mode model.TraversalMode) model.Object {
	if mode == model.Simplified {
		return o.host.wrap(o.n.simpleParent)
	}
	return o.host.wrap(o.n.parent)
}

func (o *object) Children() []model.Object {
	result := make([]model.Object, 0, len(o.n.kids))
	for _, k := range o.n.kids {
		result = append(result, o.host.wrap(k))
	}
	return result
}

func (o *object) DevInfo() []string {
	if len(o.n.spec.DevInfo) > 0 {
		return append([]string(nil), o.n.spec.DevInfo...)
	}
	s := o.n.spec
	info := []string{
		"Name: " + s.Name,
		"Role: " + s.Role,
	}
	if len(s.States) > 0 {
		info = append(info, "States: "+strings.Join(s.States, ", "))
	}
	if s.Bounds != [4]int{} {
		info = append(info, fmt.Sprintf("Location: %d, %d, %d, %d", s.Bounds[0], s.Bounds[1], s.Bounds[2], s.Bounds[3]))
	}
	if o.n.app != nil {
		info = append(info, "App: "+o.n.app.String())
		if o.n.app.Path != "" {
			info = append(info, "App path: "+o.n.app.Path)
		}
	}
	info = append(info, "ID: "+s.ID)
	if s.Hidden {
		info = append(info, "Simple review: hidden")
	}
	return info
}

func (o *object) String() string {
	return model.DisplayText(o)
}
