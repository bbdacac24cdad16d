// Package inspector projects an object's developer attributes into rows.
package inspector

import (
	"strings"

	"github.com/mj1618/object-viewer/internal/model"
)

// Row is one property line of the inspector.
type Row struct {
	Name  string `yaml:"name"            json:"name"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// Rows splits each developer attribute on the first ": ". A line without the
// separator becomes a name with an empty value. A nil obj has no rows.
func Rows(obj model.Object) []Row {
	if obj == nil {
		return nil
	}
	info := obj.DevInfo()
	rows := make([]Row, 0, len(info))
	for _, line := range info {
		name, value, _ := strings.Cut(line, ": ")
		rows = append(rows, Row{Name: name, Value: value})
	}
	return rows
}

// Panel holds what the inspector currently displays.
type Panel struct {
	Title string `yaml:"title"          json:"title"`
	Rows  []Row  `yaml:"rows,omitempty" json:"rows,omitempty"`
}

// Update replaces the panel contents with obj's attributes.
func (p *Panel) Update(obj model.Object) {
	p.Title = model.DisplayText(obj)
	p.Rows = Rows(obj)
}
