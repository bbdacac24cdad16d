// Package objtree maintains a lazily populated view of the host's
// accessibility object hierarchy.
//
// Nodes are materialized only when their parent is expanded and are released
// again when it collapses, so a collapsed node never has descendants and the
// memory held is bounded by the set of expanded paths. SelectObject reveals an
// arbitrary object by expanding only the nodes on its ancestor chain.
//
// A Tree is not safe for concurrent use; callers drive it from a single
// event loop.
package objtree
