package model

import "fmt"

// Object is a handle to one UI element exposed by the host accessibility
// layer. Relations return nil when the element has no such neighbour.
type Object interface {
	// ID is the host identity of the element. Two handles refer to the same
	// element when their IDs are equal.
	ID() string
	Role() string
	Name() string

	FirstChild(mode TraversalMode) Object
	Next(mode TraversalMode) Object
	Parent(mode TraversalMode) Object

	// Children enumerates the direct children using host-default relations.
	Children() []Object

	// DevInfo returns developer-facing "Name: value" lines.
	DevInfo() []string

	// App is the owning application, or nil when the host does not know it.
	App() *AppModule
}

// AppModule describes the application owning an element.
type AppModule struct {
	Name string `yaml:"name"           json:"name"`
	PID  int    `yaml:"pid,omitempty"  json:"pid,omitempty"`
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

func (a *AppModule) String() string {
	if a == nil {
		return ""
	}
	if a.PID != 0 {
		return fmt.Sprintf("%s (pid %d)", a.Name, a.PID)
	}
	return a.Name
}

// SameObject reports whether a and b refer to the same host element.
// Two absent objects are equal.
func SameObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// SameApp reports whether a and b describe the same running application.
func SameApp(a, b *AppModule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name && a.PID == b.PID
}

// DisplayText is the label used for an element in the tree and inspector.
func DisplayText(obj Object) string {
	if obj == nil {
		return ""
	}
	return fmt.Sprintf("%s %q", obj.Role(), obj.Name())
}
