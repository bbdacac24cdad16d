package objtree

import (
	"testing"

	"github.com/mj1618/object-viewer/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIterator_ChildrenMatchesHostChildren(t *testing.T) {
	h := buildHost(t)
	for _, id := range []string{"R", "A", "B", "C"} {
		obj := h.Lookup(id)
		got := Collect(NewIterator(obj, model.RelationChildren, model.HostDefault))
		assert.Equal(t, objectIDs(obj.Children()), objectIDs(got), "children of %s", id)
	}
}

func TestIterator_ParentChain(t *testing.T) {
	h := buildHost(t)
	got := Collect(NewIterator(h.Lookup("D"), model.RelationParent, model.HostDefault))
	assert.Equal(t, []string{"D", "A", "R"}, objectIDs(got))
}

func TestIterator_SimplifiedSkipsHidden(t *testing.T) {
	h := buildHiddenHost(t)

	kids := Collect(NewIterator(h.Lookup("W"), model.RelationChildren, model.Simplified))
	assert.Equal(t, []string{"X", "Y", "Z"}, objectIDs(kids))

	up := Collect(NewIterator(h.Lookup("X"), model.RelationParent, model.Simplified))
	assert.Equal(t, []string{"X", "W", "R"}, objectIDs(up))

	up = Collect(NewIterator(h.Lookup("X"), model.RelationParent, model.HostDefault))
	assert.Equal(t, []string{"X", "G", "W", "R"}, objectIDs(up))
}

func TestIterator_NilStartIsEmpty(t *testing.T) {
	for _, rel := range []model.Relation{model.RelationChildren, model.RelationParent} {
		it := NewIterator(nil, rel, model.HostDefault)
		_, ok := it.Next()
		assert.False(t, ok, "relation %v", rel)
	}
}

func TestIterator_LeafHasNoChildren(t *testing.T) {
	h := buildHost(t)
	assert.Empty(t, Collect(NewIterator(h.Lookup("C"), model.RelationChildren, model.HostDefault)))
}

func TestIterator_NotRestartable(t *testing.T) {
	h := buildHost(t)
	it := NewIterator(h.Lookup("A"), model.RelationChildren, model.HostDefault)
	assert.Len(t, Collect(it), 2)

	_, ok := it.Next()
	assert.False(t, ok)
	assert.Empty(t, Collect(it))
}

func TestIterator_AllStopsEarly(t *testing.T) {
	h := buildHost(t)
	it := NewIterator(h.Lookup("D"), model.RelationParent, model.HostDefault)
	for obj := range it.All() {
		assert.Equal(t, "D", obj.ID())
		break
	}
	// The walk resumes after the consumed element.
	next, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "A", next.ID())
}
