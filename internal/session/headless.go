package session

import (
	"github.com/mj1618/object-viewer/internal/inspector"
	"github.com/mj1618/object-viewer/internal/objtree"
)

// Headless is a Window that only records what it was asked to show. It
// backs the command-line and tool-server surfaces.
type Headless struct {
	Renders  int
	Raised   int
	Panel    inspector.Panel
	Messages []string
}

func (h *Headless) Render(*objtree.Tree) { h.Renders++ }

func (h *Headless) Inspect(p inspector.Panel) { h.Panel = p }

func (h *Headless) Status(msg string) { h.Messages = append(h.Messages, msg) }

func (h *Headless) Raise() { h.Raised++ }
