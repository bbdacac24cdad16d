// Package ui is the terminal window of the object viewer.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mj1618/object-viewer/internal/console"
	"github.com/mj1618/object-viewer/internal/icon"
	"github.com/mj1618/object-viewer/internal/inspector"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
	"github.com/mj1618/object-viewer/internal/session"
	"github.com/rivo/tview"
)

const keyHelp = `[yellow]Enter[-] expand/collapse • [yellow]F2[-] population • [yellow]F3[-] NVDA review • ` +
	`[yellow]F4[-] simple review • [yellow]^F/^O/^N[-] focus/mouse/navigator • [yellow]^R[-] refresh • ` +
	`[yellow]Tab[-] move • [yellow]^C[-] quit`

// Window shows the object tree, the inspector and the console.
type Window struct {
	app  *tview.Application
	ctrl *session.Controller

	layout  *tview.Flex
	tree    *tview.TreeView
	props   *tview.Table
	output  *tview.TextView
	input   *tview.InputField
	console *tview.Flex
	status  *tview.TextView
	panes   []tview.Primitive
	message string
	syncing bool
}

// Factory returns a session.WindowFactory building windows on app.
func Factory(app *tview.Application) session.WindowFactory {
	return func(c *session.Controller) (session.Window, error) {
		return newWindow(app, c), nil
	}
}

func newWindow(app *tview.Application, ctrl *session.Controller) *Window {
	w := &Window{app: app, ctrl: ctrl}

	w.tree = tview.NewTreeView()
	w.tree.SetGraphics(true)
	w.tree.SetTitle("Objects")
	w.tree.SetBorder(true)
	w.tree.SetChangedFunc(w.cursorMoved)
	w.tree.SetSelectedFunc(w.toggle)

	w.props = tview.NewTable()
	w.props.SetSelectable(true, false)
	w.props.SetFixed(1, 0)
	w.props.SetTitle("Properties")
	w.props.SetBorder(true)

	w.output = tview.NewTextView()
	w.output.SetScrollable(true)
	w.output.SetWrap(true)
	w.output.ScrollToEnd()
	fmt.Fprintln(w.output, console.Intro)
	ctrl.SetConsoleOutput(w.output)

	w.input = w.newInput()
	w.console = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(w.output, 0, 1, false).
		AddItem(w.input, 1, 0, false)
	w.console.SetTitle("Console")
	w.console.SetBorder(true)

	w.status = tview.NewTextView()
	w.status.SetDynamicColors(true)

	body := tview.NewFlex().
		AddItem(w.tree, 0, 2, true).
		AddItem(w.props, 0, 3, false)
	w.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 3, true).
		AddItem(w.console, 0, 1, false).
		AddItem(w.status, 2, 0, false)

	w.panes = []tview.Primitive{w.tree, w.props, w.input}
	return w
}

// Render rebuilds the widget tree from the object tree and puts the cursor
// on the selected node.
func (w *Window) Render(t *objtree.Tree) {
	w.syncing = true
	defer func() { w.syncing = false }()

	refs := make(map[*objtree.Node]*tview.TreeNode)
	root := buildNode(t.Root(), refs)
	w.tree.SetRoot(root)
	current := root
	if n, ok := refs[t.Selected()]; ok {
		current = n
	}
	w.tree.SetCurrentNode(current)
	w.refreshStatus()
}

func buildNode(n *objtree.Node, refs map[*objtree.Node]*tview.TreeNode) *tview.TreeNode {
	tn := tview.NewTreeNode(label(n)).
		SetReference(n).
		SetSelectable(true).
		SetExpanded(n.Expanded())
	if n.Icon != nil {
		c := icon.Dominant(n.Icon)
		tn.SetColor(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	refs[n] = tn
	for _, c := range n.Children() {
		tn.AddChild(buildNode(c, refs))
	}
	return tn
}

func label(n *objtree.Node) string {
	switch {
	case n.Expanded():
		return "- " + n.Text
	case n.HasChildren:
		return "+ " + n.Text
	default:
		return "  " + n.Text
	}
}

func nodeOf(tn *tview.TreeNode) *objtree.Node {
	if tn == nil {
		return nil
	}
	n, _ := tn.GetReference().(*objtree.Node)
	return n
}

// Inspect fills the properties table.
func (w *Window) Inspect(p inspector.Panel) {
	w.props.Clear()
	title := p.Title
	if title == "" {
		title = "Properties"
	}
	w.props.SetTitle(title)
	w.props.SetCell(0, 0, tview.NewTableCell("[::b]Property[::-]").SetSelectable(false))
	w.props.SetCell(0, 1, tview.NewTableCell("[::b]Value[::-]").SetSelectable(false))
	for i, row := range p.Rows {
		w.props.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(row.Name)))
		w.props.SetCell(i+1, 1, tview.NewTableCell(tview.Escape(row.Value)).SetExpansion(1))
	}
}

// Status shows msg under the mode summary.
func (w *Window) Status(msg string) {
	w.message = msg
	w.refreshStatus()
}

// Raise makes the window the application root and focuses the tree.
func (w *Window) Raise() {
	w.app.SetRoot(w.layout, true)
	w.app.SetInputCapture(w.handleKey)
	w.app.SetFocus(w.tree)
}

func (w *Window) refreshStatus() {
	cfg := w.ctrl.Store().Config()
	modes := fmt.Sprintf("population: [green]%s[-] • NVDA review: [green]%s[-] • simple review: [green]%s[-] • traversal: [green]%s[-]",
		w.ctrl.PopulationMode(), onOff(cfg.NVDAReviewMode), onOff(cfg.SimpleReviewMode), w.ctrl.TraversalMode())
	if w.message != "" {
		modes += " │ " + tview.Escape(w.message)
	}
	w.status.SetText(modes + "\n" + keyHelp)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (w *Window) cursorMoved(tn *tview.TreeNode) {
	if w.syncing {
		return
	}
	w.ctrl.Select(nodeOf(tn))
}

func (w *Window) toggle(tn *tview.TreeNode) {
	n := nodeOf(tn)
	if n == nil {
		return
	}
	w.ctrl.Select(n)
	w.ctrl.Toggle(n)
}

func (w *Window) submit(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	line := w.input.GetText()
	w.clearInput()
	fmt.Fprintf(w.output, ">>> %s\n", line)
	if err := w.ctrl.Eval(line); err != nil {
		fmt.Fprintln(w.output, err)
	}
	w.output.ScrollToEnd()
}

func (w *Window) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF2:
		next := model.PopulateIterator
		if w.ctrl.PopulationMode() == model.PopulateIterator {
			next = model.PopulateChildren
		}
		w.ctrl.SetPopulationMode(next)
	case tcell.KeyF3:
		w.ctrl.SetHostReviewMode(!w.ctrl.Store().NVDAReviewMode())
	case tcell.KeyF4:
		if err := w.ctrl.SetSimpleReviewMode(!w.ctrl.Store().SimpleReviewMode()); err != nil {
			w.report(err)
		}
	case tcell.KeyCtrlF:
		w.report(w.ctrl.FromFocus())
	case tcell.KeyCtrlO:
		w.report(w.ctrl.FromMouse())
	case tcell.KeyCtrlN:
		w.report(w.ctrl.FromNavigator())
	case tcell.KeyCtrlR:
		w.report(w.ctrl.Show(nil, true))
	case tcell.KeyTab:
		w.cycleFocus()
	default:
		return event
	}
	return nil
}

func (w *Window) newInput() *tview.InputField {
	in := tview.NewInputField()
	in.SetLabel(">>> ")
	in.SetDoneFunc(w.submit)
	return in
}

// clearInput replaces the input line with an empty one. SetText("") only
// clears a field that has been drawn at least once.
func (w *Window) clearInput() {
	old := w.input
	w.input = w.newInput()
	w.console.RemoveItem(old)
	w.console.AddItem(w.input, 1, 0, false)
	for i, p := range w.panes {
		if p == tview.Primitive(old) {
			w.panes[i] = w.input
		}
	}
	if w.app.GetFocus() == tview.Primitive(old) {
		w.app.SetFocus(w.input)
	}
}

func (w *Window) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, session.ErrSimpleReviewLocked) {
		w.Status("Simple review is locked while NVDA review mode is on")
		return
	}
	w.Status(err.Error())
}

func (w *Window) cycleFocus() {
	focused := w.app.GetFocus()
	next := 0
	for i, p := range w.panes {
		if p == focused {
			next = (i + 1) % len(w.panes)
			break
		}
	}
	w.app.SetFocus(w.panes[next])
}
