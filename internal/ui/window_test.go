package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mj1618/object-viewer/internal/config"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
	"github.com/mj1618/object-viewer/internal/platform/fixture"
	"github.com/mj1618/object-viewer/internal/session"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) (*Window, *session.Controller) {
	t.Helper()
	app := tview.NewApplication()
	var win *Window
	ctrl, err := session.New(session.Options{
		Host:  fixture.Demo(),
		Store: config.Load(filepath.Join(t.TempDir(), "config.yaml"), nil),
		Window: func(c *session.Controller) (session.Window, error) {
			win = newWindow(app, c)
			return win, nil
		},
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	require.NoError(t, ctrl.Show(nil, false))
	require.NotNil(t, win)
	return win, ctrl
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestRender_CursorFollowsSelection(t *testing.T) {
	w, ctrl := newTestWindow(t)
	require.Nil(t, w.handleKey(key(tcell.KeyCtrlF)))

	cur := nodeOf(w.tree.GetCurrentNode())
	require.NotNil(t, cur)
	assert.Same(t, ctrl.Tree().Selected(), cur)
	assert.Equal(t, "notepad-edit", cur.Object.ID())
	assert.Equal(t, `editabletext "Text editor"`, w.props.GetTitle())
	assert.Equal(t, "Name", w.props.GetCell(1, 0).Text)
	assert.Equal(t, "Text editor", w.props.GetCell(1, 1).Text)
}

func TestRender_Labels(t *testing.T) {
	w, _ := newTestWindow(t)
	root := w.tree.GetRoot()
	assert.True(t, strings.HasPrefix(root.GetText(), "+ "), root.GetText())

	w.toggle(root)
	root = w.tree.GetRoot()
	assert.True(t, strings.HasPrefix(root.GetText(), "- "), root.GetText())
	require.Len(t, root.GetChildren(), 3)
	assert.Equal(t, `+ toolbar "Taskbar"`, root.GetChildren()[0].GetText())
}

func TestToggle_CollapsesExpandedNode(t *testing.T) {
	w, ctrl := newTestWindow(t)
	w.toggle(w.tree.GetRoot())
	require.Equal(t, 4, ctrl.Tree().Size())

	w.toggle(w.tree.GetRoot())
	assert.Equal(t, 1, ctrl.Tree().Size())
	assert.Empty(t, w.tree.GetRoot().GetChildren())
}

func TestCursorMoved_SelectsNode(t *testing.T) {
	w, ctrl := newTestWindow(t)
	w.toggle(w.tree.GetRoot())
	child := w.tree.GetRoot().GetChildren()[1]

	w.cursorMoved(child)
	require.NotNil(t, ctrl.Tree().Selected())
	assert.Equal(t, "notepad", ctrl.Tree().Selected().Object.ID())
	assert.Equal(t, `window "Untitled - Notepad"`, w.props.GetTitle())
}

func TestHandleKey_ModeToggles(t *testing.T) {
	w, ctrl := newTestWindow(t)

	assert.Nil(t, w.handleKey(key(tcell.KeyF2)))
	assert.Equal(t, model.PopulateIterator, ctrl.PopulationMode())
	assert.Nil(t, w.handleKey(key(tcell.KeyF2)))
	assert.Equal(t, model.PopulateChildren, ctrl.PopulationMode())

	assert.Nil(t, w.handleKey(key(tcell.KeyF4)))
	assert.Contains(t, w.message, "locked")

	assert.Nil(t, w.handleKey(key(tcell.KeyF3)))
	assert.False(t, ctrl.Store().NVDAReviewMode())
	assert.Equal(t, model.PopulateIterator, ctrl.PopulationMode())

	assert.Nil(t, w.handleKey(key(tcell.KeyF4)))
	assert.Equal(t, model.Simplified, ctrl.TraversalMode())
	assert.Contains(t, w.status.GetText(true), "traversal: simplified")
}

func TestHandleKey_Sources(t *testing.T) {
	w, ctrl := newTestWindow(t)

	w.handleKey(key(tcell.KeyCtrlO))
	assert.Equal(t, "calc-7", ctrl.Tree().Selected().Object.ID())

	w.handleKey(key(tcell.KeyCtrlN))
	assert.Equal(t, "notepad-menu-file", ctrl.Tree().Selected().Object.ID())

	w.handleKey(key(tcell.KeyCtrlR))
	assert.Nil(t, ctrl.Tree().Selected())
	assert.Equal(t, 1, ctrl.Tree().Size())
}

func TestHandleKey_PassesThroughOtherKeys(t *testing.T) {
	w, _ := newTestWindow(t)
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Same(t, ev, w.handleKey(ev))
}

func TestHandleKey_TabCyclesPanes(t *testing.T) {
	w, _ := newTestWindow(t)
	w.Raise()
	assert.Equal(t, tview.Primitive(w.tree), w.app.GetFocus())

	w.handleKey(key(tcell.KeyTab))
	assert.Equal(t, tview.Primitive(w.props), w.app.GetFocus())
	w.handleKey(key(tcell.KeyTab))
	assert.Equal(t, tview.Primitive(w.input), w.app.GetFocus())
	w.handleKey(key(tcell.KeyTab))
	assert.Equal(t, tview.Primitive(w.tree), w.app.GetFocus())
}

func TestSubmit_EvaluatesConsoleLine(t *testing.T) {
	w, ctrl := newTestWindow(t)
	require.NoError(t, ctrl.FromFocus())

	w.input.SetText("obj.name")
	w.submit(tcell.KeyEnter)
	w.input.SetText("nope(")
	w.submit(tcell.KeyEnter)

	text := w.output.GetText(true)
	assert.Contains(t, text, ">>> obj.name\nText editor\n")
	assert.Contains(t, text, ">>> nope(\n")
	assert.Contains(t, text, "console:")
	assert.Empty(t, w.input.GetText())
}

func TestSubmit_KeepsFocusOnFreshLine(t *testing.T) {
	w, ctrl := newTestWindow(t)
	require.NoError(t, ctrl.FromFocus())
	w.Raise()
	w.handleKey(key(tcell.KeyTab))
	w.handleKey(key(tcell.KeyTab))
	old := w.input
	require.Equal(t, tview.Primitive(old), w.app.GetFocus())

	w.input.SetText("obj.role")
	w.submit(tcell.KeyEnter)

	assert.NotSame(t, old, w.input)
	assert.Empty(t, w.input.GetText())
	assert.Equal(t, tview.Primitive(w.input), w.app.GetFocus())
	assert.Contains(t, w.panes, tview.Primitive(w.input))
	assert.Equal(t, 2, w.console.GetItemCount())
	assert.Equal(t, tview.Primitive(w.input), w.console.GetItem(1))

	w.input.SetText("1 + 1")
	w.submit(tcell.KeyEnter)
	assert.Contains(t, w.output.GetText(true), ">>> 1 + 1\n2\n")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "  leaf", label(&objtree.Node{Text: "leaf"}))
	assert.Equal(t, "+ branch", label(&objtree.Node{Text: "branch", HasChildren: true}))
}
