package output

import (
	"github.com/mj1618/object-viewer/internal/inspector"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
)

// Modes reports the population and traversal modes a result was built with.
type Modes struct {
	Population string `yaml:"population" json:"population"`
	Traversal  string `yaml:"traversal"  json:"traversal"`
}

// ModesOf names the given modes.
func ModesOf(pop model.PopulationMode, trav model.TraversalMode) Modes {
	return Modes{Population: pop.String(), Traversal: trav.String()}
}

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	Source   string         `yaml:"source,omitempty"   json:"source,omitempty"`
	Selected string         `yaml:"selected,omitempty" json:"selected,omitempty"`
	Status   string         `yaml:"status,omitempty"   json:"status,omitempty"`
	Modes    Modes          `yaml:"modes"              json:"modes"`
	Nodes    int            `yaml:"nodes"              json:"nodes"`
	Tree     model.NodeView `yaml:"tree"               json:"tree"`
}

// TreeFlatResult is the top-level output when --flat is used.
type TreeFlatResult struct {
	Source   string           `yaml:"source,omitempty"   json:"source,omitempty"`
	Selected string           `yaml:"selected,omitempty" json:"selected,omitempty"`
	Status   string           `yaml:"status,omitempty"   json:"status,omitempty"`
	Modes    Modes            `yaml:"modes"              json:"modes"`
	Nodes    []model.FlatNode `yaml:"nodes"              json:"nodes"`
}

// NewTreeResult projects the materialized part of t.
func NewTreeResult(t *objtree.Tree, modes Modes) TreeResult {
	res := TreeResult{Modes: modes, Nodes: t.Size(), Tree: t.View()}
	if sel := t.Selected(); sel != nil && sel.Object != nil {
		res.Selected = sel.Object.ID()
	}
	return res
}

// Flat converts r to the --flat form.
func (r TreeResult) Flat() TreeFlatResult {
	return TreeFlatResult{
		Source:   r.Source,
		Selected: r.Selected,
		Status:   r.Status,
		Modes:    r.Modes,
		Nodes:    model.FlattenNodes([]model.NodeView{r.Tree}),
	}
}

// InspectResult is the top-level output of the `inspect` command.
type InspectResult struct {
	ID    string          `yaml:"id"             json:"id"`
	Title string          `yaml:"title"          json:"title"`
	App   string          `yaml:"app,omitempty"  json:"app,omitempty"`
	Rows  []inspector.Row `yaml:"rows,omitempty" json:"rows,omitempty"`
}

// NewInspectResult projects obj through the inspector.
func NewInspectResult(obj model.Object) InspectResult {
	if obj == nil {
		return InspectResult{}
	}
	return InspectResult{
		ID:    obj.ID(),
		Title: model.DisplayText(obj),
		App:   obj.App().String(),
		Rows:  inspector.Rows(obj),
	}
}
