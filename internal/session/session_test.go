package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/object-viewer/internal/config"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
	"github.com/mj1618/object-viewer/internal/platform/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	ctrl    *Controller
	win     *Headless
	created int
	path    string
	out     bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{win: &Headless{}, path: filepath.Join(t.TempDir(), "config.yaml")}
	ctrl, err := New(Options{
		Host:    fixture.Demo(),
		Store:   config.Load(h.path, nil),
		Console: &h.out,
		Window: func(*Controller) (Window, error) {
			h.created++
			return h.win, nil
		},
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	h.ctrl = ctrl
	return h
}

func ids(path []*objtree.Node) []string {
	out := make([]string, 0, len(path))
	for _, n := range path {
		out = append(out, n.Object.ID())
	}
	return out
}

func resetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		shared.Close()
	}
	shared = nil
}

func TestNew_RequiresHost(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestShared_ReturnsSameController(t *testing.T) {
	t.Cleanup(resetShared)
	resetShared()

	_, err := Shared(Options{})
	require.Error(t, err, "first construction still validates options")

	store := config.Load(filepath.Join(t.TempDir(), "config.yaml"), nil)
	a, err := Shared(Options{Host: fixture.Demo(), Store: store})
	require.NoError(t, err)
	b, err := Shared(Options{})
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestShow_CreatesWindowOnce(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Show(nil, false))
	require.NoError(t, h.ctrl.Show(nil, false))

	assert.Equal(t, 1, h.created)
	assert.Equal(t, 2, h.win.Raised)
	assert.Nil(t, h.ctrl.Tree().Selected())
	assert.Equal(t, 1, h.ctrl.Tree().Size())
}

func TestShow_SelectsObject(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.FromFocus())

	sel := h.ctrl.Tree().Selected()
	require.NotNil(t, sel)
	assert.Equal(t, []string{"desktop", "notepad", "notepad-client", "notepad-edit"}, ids(objtree.PathTo(sel)))

	assert.Equal(t, `editabletext "Text editor"`, h.ctrl.Panel().Title)
	assert.Equal(t, h.ctrl.Panel(), h.win.Panel)
	assert.Equal(t, `Selected editabletext "Text editor"`, h.ctrl.Status())

	// Selection switches population to iterator mode and persists it.
	assert.Equal(t, model.PopulateIterator, h.ctrl.PopulationMode())
	assert.Equal(t, "iterator", config.Load(h.path, nil).Config().AddTreeNotesMode)
}

func TestShow_SelectionIsBoundInConsole(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.FromMouse())

	require.NoError(t, h.ctrl.Eval("obj.id, focus.id, nav.id, desktop.id"))
	assert.Equal(t, "calc-7\tnotepad-edit\tnotepad-menu-file\tdesktop\n", h.out.String())
}

func TestEval_BindsHostObjectsBeforeShow(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.ctrl.Eval("obj == nil, focus.id, nav.id, desktop.id"))
	assert.Equal(t, "true\tnotepad-edit\tnotepad-menu-file\tdesktop\n", h.out.String())
	assert.Zero(t, h.created, "evaluating does not open the window")
}

func TestShow_UnreachableObjectReportsStatus(t *testing.T) {
	other, err := fixture.New(fixture.Snapshot{Desktop: fixture.NodeSpec{
		ID:       "elsewhere",
		Role:     "pane",
		Children: []fixture.NodeSpec{{ID: "stray", Role: "button", Name: "Stray"}},
	}})
	require.NoError(t, err)

	h := newHarness(t)
	require.NoError(t, h.ctrl.FromFocus())
	require.NoError(t, h.ctrl.Show(other.Lookup("stray"), false))

	assert.Nil(t, h.ctrl.Tree().Selected())
	assert.Empty(t, h.ctrl.Panel().Rows)
	require.NotEmpty(t, h.win.Messages)
	last := h.win.Messages[len(h.win.Messages)-1]
	assert.True(t, strings.HasPrefix(last, "Could not find"), last)
}

func TestShow_RefreshClearsTree(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.FromNavigator())
	require.Greater(t, h.ctrl.Tree().Size(), 1)

	require.NoError(t, h.ctrl.Show(nil, true))
	assert.Equal(t, 1, h.ctrl.Tree().Size())
	assert.Nil(t, h.ctrl.Tree().Selected())
	assert.Empty(t, h.ctrl.Panel().Title)

	require.NoError(t, h.ctrl.Eval("obj"))
	assert.Equal(t, "nil\n", h.out.String())
}

func TestToggle(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Show(nil, false))
	root := h.ctrl.Tree().Root()

	h.ctrl.Toggle(root)
	assert.True(t, root.Expanded())
	assert.Len(t, root.Children(), 3)

	h.ctrl.Toggle(root)
	assert.False(t, root.Expanded())
	assert.Empty(t, root.Children())
}

func TestSetPopulationMode_CollapsesTree(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.FromFocus())

	h.ctrl.SetPopulationMode(model.PopulateChildren)
	assert.Equal(t, model.PopulateChildren, h.ctrl.PopulationMode())
	assert.Equal(t, 1, h.ctrl.Tree().Size())
	assert.Nil(t, h.ctrl.Tree().Selected())
}

func TestSetSimpleReviewMode_LockedByHostReview(t *testing.T) {
	h := newHarness(t)
	err := h.ctrl.SetSimpleReviewMode(true)
	assert.ErrorIs(t, err, ErrSimpleReviewLocked)
	assert.False(t, h.ctrl.Store().SimpleReviewMode())
	assert.Equal(t, model.HostDefault, h.ctrl.TraversalMode())
}

func TestReviewToggles_SwitchTraversal(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Show(nil, false))
	h.ctrl.Expand(h.ctrl.Tree().Root())

	h.ctrl.SetHostReviewMode(false)
	assert.Equal(t, 1, h.ctrl.Tree().Size())
	assert.Equal(t, model.PopulateIterator, h.ctrl.PopulationMode())

	require.NoError(t, h.ctrl.SetSimpleReviewMode(true))
	assert.Equal(t, model.Simplified, h.ctrl.TraversalMode())

	require.NoError(t, h.ctrl.FromFocus())
	sel := h.ctrl.Tree().Selected()
	require.NotNil(t, sel)
	assert.Equal(t, []string{"desktop", "notepad", "notepad-edit"}, ids(objtree.PathTo(sel)))

	require.NoError(t, h.ctrl.Eval("obj.parent.id"))
	assert.Equal(t, "notepad\n", h.out.String())

	saved := config.Load(h.path, nil).Config()
	assert.False(t, saved.NVDAReviewMode)
	assert.True(t, saved.SimpleReviewMode)
}

func TestSetConsoleOutput(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Show(nil, false))

	var pane bytes.Buffer
	h.ctrl.SetConsoleOutput(&pane)
	require.NoError(t, h.ctrl.Eval("desktop.name"))
	assert.Equal(t, "Desktop\n", pane.String())
	assert.Empty(t, h.out.String())
}
