package model

import (
	"fmt"
	"strings"
)

// TraversalMode selects which relation variant a traversal follows.
type TraversalMode int

const (
	// HostDefault follows the relations the host exposes to its own
	// object navigation.
	HostDefault TraversalMode = iota
	// Simplified follows the flattened relations that skip elements the
	// host hides in simple review.
	Simplified
)

func (m TraversalMode) String() string {
	switch m {
	case Simplified:
		return "simplified"
	default:
		return "default"
	}
}

// PopulationMode selects how a tree node's children are derived.
type PopulationMode int

const (
	// PopulateChildren enumerates the host's direct children.
	PopulateChildren PopulationMode = iota
	// PopulateIterator walks the first-child / next-sibling chain in the
	// active traversal mode.
	PopulateIterator
)

func (m PopulationMode) String() string {
	switch m {
	case PopulateIterator:
		return "iterator"
	default:
		return "children"
	}
}

// ParsePopulationMode converts a config or flag value to a PopulationMode.
func ParsePopulationMode(s string) (PopulationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "children":
		return PopulateChildren, nil
	case "iterator":
		return PopulateIterator, nil
	default:
		return PopulateChildren, fmt.Errorf("unknown population mode: %q (expected children or iterator)", s)
	}
}

// Relation selects which chain a relation iterator follows.
type Relation int

const (
	// RelationChildren walks an object's children via the next-sibling chain.
	RelationChildren Relation = iota
	// RelationParent walks from an object up through its ancestors.
	RelationParent
)

func (r Relation) String() string {
	switch r {
	case RelationParent:
		return "parent"
	default:
		return "children"
	}
}
