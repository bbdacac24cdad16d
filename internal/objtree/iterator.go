package objtree

import (
	"iter"

	"github.com/mj1618/object-viewer/internal/model"
)

// Iterator walks one relation chain of the object hierarchy.
// It is forward-only and cannot be restarted; build a new one per walk.
type Iterator struct {
	relation model.Relation
	mode     model.TraversalMode
	current  model.Object
}

// NewIterator starts a walk from obj. With RelationChildren the walk yields
// obj's first child and then each next sibling; with RelationParent it yields
// obj itself and then each ancestor up to the top of the hierarchy.
// A nil obj yields nothing.
func NewIterator(obj model.Object, relation model.Relation, mode model.TraversalMode) *Iterator {
	it := &Iterator{relation: relation, mode: mode}
	if obj == nil {
		return it
	}
	switch relation {
	case model.RelationChildren:
		it.current = obj.FirstChild(mode)
	case model.RelationParent:
		it.current = obj
	}
	return it
}

// Next returns the next object, or false once the chain is exhausted.
func (it *Iterator) Next() (model.Object, bool) {
	if it.current == nil {
		return nil, false
	}
	obj := it.current
	switch it.relation {
	case model.RelationChildren:
		it.current = obj.Next(it.mode)
	case model.RelationParent:
		it.current = obj.Parent(it.mode)
	default:
		it.current = nil
	}
	return obj, true
}

// All adapts the remaining walk to a range-over-func sequence.
func (it *Iterator) All() iter.Seq[model.Object] {
	return func(yield func(model.Object) bool) {
		for {
			obj, ok := it.Next()
			if !ok || !yield(obj) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func Collect(it *Iterator) []model.Object {
	var objs []model.Object
	for obj := range it.All() {
		objs = append(objs, obj)
	}
	return objs
}
