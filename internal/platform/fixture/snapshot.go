package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/object-viewer/internal/model"
	"gopkg.in/yaml.v3"
)

// Snapshot is the on-disk description of a desktop object hierarchy.
type Snapshot struct {
	SimpleReviewMode bool     `yaml:"simpleReviewMode,omitempty" json:"simpleReviewMode,omitempty"`
	Focus            string   `yaml:"focus,omitempty"            json:"focus,omitempty"`
	Mouse            string   `yaml:"mouse,omitempty"            json:"mouse,omitempty"`
	Navigator        string   `yaml:"navigator,omitempty"        json:"navigator,omitempty"`
	Desktop          NodeSpec `yaml:"desktop"                    json:"desktop"`
}

// NodeSpec describes one element. App is inherited from the parent when unset.
type NodeSpec struct {
	ID       string           `yaml:"id"                 json:"id"`
	Role     string           `yaml:"role"               json:"role"`
	Name     string           `yaml:"name,omitempty"     json:"name,omitempty"`
	App      *model.AppModule `yaml:"app,omitempty"      json:"app,omitempty"`
	Hidden   bool             `yaml:"hidden,omitempty"   json:"hidden,omitempty"` // Skipped by simplified relations
	States   []string         `yaml:"states,omitempty"   json:"states,omitempty"`
	Bounds   [4]int           `yaml:"bounds,omitempty"   json:"bounds,omitempty"`
	DevInfo  []string         `yaml:"devInfo,omitempty"  json:"devInfo,omitempty"`
	Children []NodeSpec       `yaml:"children,omitempty" json:"children,omitempty"`
}

// LoadSnapshot reads a snapshot from a YAML or JSON file. Relative app paths
// are resolved against the snapshot's directory.
func LoadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("load snapshot: %w", err)
	}
	snap, err = ParseSnapshot(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return snap, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	resolveAppPaths(&snap.Desktop, filepath.Dir(path))
	return snap, nil
}

// ParseSnapshot decodes snapshot data as JSON or YAML.
func ParseSnapshot(data []byte, isJSON bool) (Snapshot, error) {
	var snap Snapshot
	if isJSON {
		if err := json.Unmarshal(data, &snap); err != nil {
			return snap, fmt.Errorf("unmarshal snapshot: %w", err)
		}
		return snap, nil
	}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

func resolveAppPaths(spec *NodeSpec, dir string) {
	if spec.App != nil && spec.App.Path != "" && !filepath.IsAbs(spec.App.Path) {
		spec.App.Path = filepath.Join(dir, spec.App.Path)
	}
	for i := range spec.Children {
		resolveAppPaths(&spec.Children[i], dir)
	}
}
