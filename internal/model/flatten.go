package model

// FlatNode is a node view with a path breadcrumb instead of children.
type FlatNode struct {
	ID       string `yaml:"id"                 json:"id"`
	Role     string `yaml:"role"               json:"role"`
	Name     string `yaml:"name,omitempty"     json:"name,omitempty"`
	App      string `yaml:"app,omitempty"      json:"app,omitempty"`
	Icon     bool   `yaml:"icon,omitempty"     json:"icon,omitempty"`
	Selected bool   `yaml:"selected,omitempty" json:"selected,omitempty"`
	Path     string `yaml:"path"               json:"path"`
}

// FlattenNodes converts a tree of node views into a flat list in depth-first
// order. Each node gets a path string showing its location in the tree
// using roles joined with " > ".
func FlattenNodes(nodes []NodeView) []FlatNode {
	var result []FlatNode
	for _, n := range nodes {
		flattenRecursive(n, "", &result)
	}
	return result
}

func flattenRecursive(n NodeView, parentPath string, result *[]FlatNode) {
	currentPath := n.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + n.Role
	}

	*result = append(*result, FlatNode{
		ID:       n.ID,
		Role:     n.Role,
		Name:     n.Name,
		App:      n.App,
		Icon:     n.Icon,
		Selected: n.Selected,
		Path:     currentPath,
	})

	for _, child := range n.Children {
		flattenRecursive(child, currentPath, result)
	}
}
