// Package session owns the viewer's single logical session: the object tree,
// the inspector panel, the console namespace and the window showing them.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mj1618/object-viewer/internal/config"
	"github.com/mj1618/object-viewer/internal/console"
	"github.com/mj1618/object-viewer/internal/inspector"
	"github.com/mj1618/object-viewer/internal/logging"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
	"github.com/mj1618/object-viewer/internal/platform"
)

// ErrSimpleReviewLocked is returned when the simple review option is changed
// while traversal follows the host's own review preference.
var ErrSimpleReviewLocked = errors.New("simple review mode is controlled by the host while NVDA review mode is on")

// Window displays a session. Implementations are called from the goroutine
// that drives the controller.
type Window interface {
	// Render redraws the tree after a structural change.
	Render(tree *objtree.Tree)
	// Inspect shows the attributes of the selected object.
	Inspect(panel inspector.Panel)
	// Status shows a non-modal message.
	Status(msg string)
	// Raise brings the window to the front.
	Raise()
}

// WindowFactory creates the window on first Show.
type WindowFactory func(c *Controller) (Window, error)

// Options configures a Controller.
type Options struct {
	Host    platform.Host
	Store   *config.Store      // nil loads config.DefaultPath()
	Icons   objtree.IconLoader // nil disables icon decoration
	Logger  *slog.Logger
	Window  WindowFactory // nil uses a headless window
	Console io.Writer     // console output until a window redirects it
}

// Controller is the session. It is not safe for concurrent use.
type Controller struct {
	host    platform.Host
	store   *config.Store
	icons   objtree.IconLoader
	log     *slog.Logger
	factory WindowFactory
	out     io.Writer

	tree    *objtree.Tree
	panel   inspector.Panel
	console *console.Console
	window  Window
	status  string
}

var (
	sharedMu sync.Mutex
	shared   *Controller
)

// Shared returns the process-wide controller, constructing it from opts on
// first use. Later calls ignore opts.
func Shared(opts Options) (*Controller, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		return shared, nil
	}
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	shared = c
	return shared, nil
}

// New creates an independent controller. Most callers want Shared.
func New(opts Options) (*Controller, error) {
	if opts.Host == nil {
		return nil, errors.New("session: no accessibility host")
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = config.Load(config.DefaultPath(), log)
	}
	factory := opts.Window
	if factory == nil {
		factory = func(*Controller) (Window, error) { return &Headless{}, nil }
	}

	c := &Controller{
		host:    opts.Host,
		store:   store,
		icons:   opts.Icons,
		log:     log,
		factory: factory,
		out:     opts.Console,
	}
	treeOpts := []objtree.Option{objtree.WithLogger(log)}
	if c.icons != nil {
		treeOpts = append(treeOpts, objtree.WithIcons(c.icons))
	}
	c.tree = objtree.New(opts.Host.Desktop(), modes{c}, treeOpts...)
	c.tree.OnSelect(c.selectionChanged)
	return c, nil
}

// modes resolves tree modes from the persisted options and the host.
type modes struct{ c *Controller }

func (m modes) PopulationMode() model.PopulationMode { return m.c.store.PopulationMode() }

func (m modes) SetPopulationMode(p model.PopulationMode) { m.c.store.SetPopulationMode(p) }

func (m modes) TraversalMode() model.TraversalMode { return m.c.TraversalMode() }

// Host returns the accessibility host.
func (c *Controller) Host() platform.Host { return c.host }

// Store returns the persisted options.
func (c *Controller) Store() *config.Store { return c.store }

// Tree returns the object tree.
func (c *Controller) Tree() *objtree.Tree { return c.tree }

// Panel returns what the inspector currently shows.
func (c *Controller) Panel() inspector.Panel { return c.panel }

// Status returns the last status message.
func (c *Controller) Status() string { return c.status }

// PopulationMode returns the persisted population strategy.
func (c *Controller) PopulationMode() model.PopulationMode { return c.store.PopulationMode() }

// TraversalMode returns the relation variant currently followed.
func (c *Controller) TraversalMode() model.TraversalMode {
	return c.store.TraversalMode(c.host.SimpleReviewMode())
}

// Show initializes the console namespace and window on first use, then
// optionally rebuilds the tree and selects sel before raising the window.
// An unreachable sel is reported through the window status, not as an error.
func (c *Controller) Show(sel model.Object, refreshTree bool) error {
	if err := c.initConsole(); err != nil {
		return err
	}
	c.bindHost()

	if c.window == nil {
		w, err := c.factory(c)
		if err != nil {
			return fmt.Errorf("session: create window: %w", err)
		}
		c.window = w
	}

	if refreshTree {
		c.Refresh()
	}
	if sel != nil {
		c.selectObject(sel)
	}
	c.window.Render(c.tree)
	c.window.Inspect(c.panel)
	c.window.Raise()
	return nil
}

// ShowFrom shows the window and selects the object src names, resolved now.
func (c *Controller) ShowFrom(src platform.Source) error {
	obj := platform.Resolve(c.host, src)
	if err := c.Show(obj, false); err != nil {
		return err
	}
	if obj == nil && src != platform.SourceNone {
		c.setStatus(fmt.Sprintf("No %s object", src))
	}
	return nil
}

// FromFocus shows the window with the focused object selected.
func (c *Controller) FromFocus() error { return c.ShowFrom(platform.SourceFocus) }

// FromMouse shows the window with the object under the pointer selected.
func (c *Controller) FromMouse() error { return c.ShowFrom(platform.SourceMouse) }

// FromNavigator shows the window with the navigator object selected.
func (c *Controller) FromNavigator() error { return c.ShowFrom(platform.SourceNavigator) }

func (c *Controller) selectObject(sel model.Object) {
	n, err := c.tree.SelectObject(sel)
	if err != nil {
		c.log.Info("selection failed", "object", model.DisplayText(sel), "err", err)
		c.setStatus("Could not find " + model.DisplayText(sel) + " in the tree")
		return
	}
	c.setStatus("Selected " + n.Text)
}

// Refresh discards every node and rebinds the root to the current desktop.
func (c *Controller) Refresh() {
	if f, ok := c.icons.(interface{ Flush() }); ok {
		f.Flush()
	}
	c.tree.Reset(c.host.Desktop())
	c.render()
}

// Expand materializes n's children.
func (c *Controller) Expand(n *objtree.Node) {
	c.tree.Expand(n)
	c.render()
}

// Collapse releases n's descendants.
func (c *Controller) Collapse(n *objtree.Node) {
	c.tree.Collapse(n)
	c.render()
}

// Toggle expands a collapsed node and collapses an expanded one.
func (c *Controller) Toggle(n *objtree.Node) {
	if n == nil {
		return
	}
	if n.Expanded() {
		c.Collapse(n)
	} else {
		c.Expand(n)
	}
}

// Select makes n the selection.
func (c *Controller) Select(n *objtree.Node) {
	c.tree.Select(n)
}

// SetPopulationMode persists m and collapses the tree so that re-expanded
// nodes use it.
func (c *Controller) SetPopulationMode(m model.PopulationMode) {
	c.store.SetPopulationMode(m)
	c.resetModes()
}

// SetHostReviewMode toggles following the host's simple review preference.
func (c *Controller) SetHostReviewMode(on bool) {
	c.store.SetNVDAReviewMode(on)
	c.store.SetPopulationMode(model.PopulateIterator)
	c.resetModes()
}

// SetSimpleReviewMode toggles the viewer's own simple review option. It is
// locked while host review mode is on.
func (c *Controller) SetSimpleReviewMode(on bool) error {
	if c.store.NVDAReviewMode() {
		return ErrSimpleReviewLocked
	}
	c.store.SetSimpleReviewMode(on)
	c.store.SetPopulationMode(model.PopulateIterator)
	c.resetModes()
	return nil
}

func (c *Controller) resetModes() {
	c.tree.CollapseAll()
	if c.console != nil {
		c.console.SetMode(c.TraversalMode())
	}
	c.log.Debug("modes changed", "population", c.PopulationMode(), "traversal", c.TraversalMode())
	c.render()
}

// Eval runs one console line, initializing the console if needed.
func (c *Controller) Eval(line string) error {
	if err := c.initConsole(); err != nil {
		return err
	}
	return c.console.Eval(line)
}

// SetConsoleOutput redirects console output, typically to a window pane.
func (c *Controller) SetConsoleOutput(w io.Writer) {
	c.out = w
	if c.console != nil {
		c.console.SetOutput(w)
	}
}

// Close releases the console namespace.
func (c *Controller) Close() {
	if c.console != nil {
		c.console.Close()
		c.console = nil
	}
}

func (c *Controller) initConsole() error {
	if c.console != nil {
		return nil
	}
	con, err := console.New(c.out)
	if err != nil {
		return fmt.Errorf("session: init console: %w", err)
	}
	c.console = con
	c.bindHost()
	if n := c.tree.Selected(); n != nil {
		con.Set("obj", n.Object)
	}
	c.log.Debug("console initialized")
	return nil
}

// bindHost refreshes the console's traversal mode and host object names.
func (c *Controller) bindHost() {
	c.console.SetMode(c.TraversalMode())
	c.console.Set("focus", c.host.Focus())
	c.console.Set("nav", c.host.Navigator())
	c.console.Set("mouse", c.host.Mouse())
	c.console.Set("desktop", c.host.Desktop())
}

func (c *Controller) selectionChanged(n *objtree.Node) {
	var obj model.Object
	if n != nil {
		obj = n.Object
	}
	c.panel.Update(obj)
	if c.console != nil {
		c.console.Set("obj", obj)
	}
	if c.window != nil {
		c.window.Inspect(c.panel)
	}
}

func (c *Controller) setStatus(msg string) {
	c.status = msg
	if c.window != nil {
		c.window.Status(msg)
	}
}

func (c *Controller) render() {
	if c.window != nil {
		c.window.Render(c.tree)
	}
}
