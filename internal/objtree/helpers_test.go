package objtree

import (
	"errors"
	"image"
	"testing"

	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/platform/fixture"
	"github.com/stretchr/testify/require"
)

// memModes keeps modes in memory and counts persisted population changes.
type memModes struct {
	pop       model.PopulationMode
	traversal model.TraversalMode
	saves     int
}

func (m *memModes) PopulationMode() model.PopulationMode { return m.pop }

func (m *memModes) SetPopulationMode(p model.PopulationMode) {
	m.pop = p
	m.saves++
}

func (m *memModes) TraversalMode() model.TraversalMode { return m.traversal }

// stubIcons returns a blank icon for every path in ok and fails otherwise.
type stubIcons struct {
	ok    map[string]bool
	calls []string
}

func (s *stubIcons) SmallIcon(path string) (image.Image, error) {
	s.calls = append(s.calls, path)
	if s.ok[path] {
		return image.NewRGBA(image.Rect(0, 0, 16, 16)), nil
	}
	return nil, errors.New("no icon")
}

// buildHost creates the hierarchy
//
//	R
//	├── A
//	│   ├── C
//	│   └── D
//	└── B
//	    └── E
func buildHost(t *testing.T) *fixture.Host {
	t.Helper()
	h, err := fixture.New(fixture.Snapshot{Desktop: fixture.NodeSpec{
		ID: "R", Role: "pane", Name: "Desktop",
		Children: []fixture.NodeSpec{
			{ID: "A", Role: "window", Name: "A", Children: []fixture.NodeSpec{
				{ID: "C", Role: "button", Name: "C"},
				{ID: "D", Role: "button", Name: "D"},
			}},
			{ID: "B", Role: "window", Name: "B", Children: []fixture.NodeSpec{
				{ID: "E", Role: "button", Name: "E"},
			}},
		},
	}})
	require.NoError(t, err)
	return h
}

// buildHiddenHost creates a hierarchy where G is hidden in simple review
//
//	R
//	└── W
//	    ├── G (hidden)
//	    │   ├── X
//	    │   └── Y
//	    └── Z
func buildHiddenHost(t *testing.T) *fixture.Host {
	t.Helper()
	h, err := fixture.New(fixture.Snapshot{Desktop: fixture.NodeSpec{
		ID: "R", Role: "pane",
		Children: []fixture.NodeSpec{
			{ID: "W", Role: "window", Children: []fixture.NodeSpec{
				{ID: "G", Role: "grouping", Hidden: true, Children: []fixture.NodeSpec{
					{ID: "X", Role: "button"},
					{ID: "Y", Role: "button"},
				}},
				{ID: "Z", Role: "button"},
			}},
		},
	}})
	require.NoError(t, err)
	return h
}

func objectIDs(objs []model.Object) []string {
	var out []string
	for _, o := range objs {
		out = append(out, o.ID())
	}
	return out
}

func nodeIDs(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Object.ID())
	}
	return out
}
