package objtree

import "github.com/mj1618/object-viewer/internal/model"

// View projects the materialized tree for serialization.
func (t *Tree) View() model.NodeView {
	return t.view(t.root)
}

func (t *Tree) view(n *Node) model.NodeView {
	v := model.NodeView{
		HasChildren: n.HasChildren,
		Expanded:    n.expanded,
		Icon:        n.Icon != nil,
		Selected:    n == t.selected,
	}
	if obj := n.Object; obj != nil {
		v.ID = obj.ID()
		v.Role = obj.Role()
		v.Name = obj.Name()
		v.App = obj.App().String()
	}
	for _, c := range n.children {
		v.Children = append(v.Children, t.view(c))
	}
	return v
}
