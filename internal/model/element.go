package model

// NodeView is a serializable projection of one materialized tree node.
type NodeView struct {
	ID          string     `yaml:"id"                 json:"id"`
	Role        string     `yaml:"role"               json:"role"`
	Name        string     `yaml:"name,omitempty"     json:"name,omitempty"`
	App         string     `yaml:"app,omitempty"      json:"app,omitempty"`
	HasChildren bool       `yaml:"expandable,omitempty" json:"expandable,omitempty"` // Expand affordance shown
	Expanded    bool       `yaml:"expanded,omitempty" json:"expanded,omitempty"`
	Icon        bool       `yaml:"icon,omitempty"     json:"icon,omitempty"`     // Decorated with the app icon
	Selected    bool       `yaml:"selected,omitempty" json:"selected,omitempty"` // Current selection
	Children    []NodeView `yaml:"children,omitempty" json:"children,omitempty"`
}
