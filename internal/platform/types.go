package platform

import (
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/object-viewer/internal/model"
)

// Options configures how a backend connects to its host.
type Options struct {
	Snapshot     string        // Snapshot file for the fixture backend ("" = built-in demo desktop)
	IconCacheTTL time.Duration // 0 = backend default, negative = no caching
}

// Source names the host query an activation command starts from.
type Source int

const (
	SourceNone Source = iota
	SourceFocus
	SourceMouse
	SourceNavigator
)

func (s Source) String() string {
	switch s {
	case SourceFocus:
		return "focus"
	case SourceMouse:
		return "mouse"
	case SourceNavigator:
		return "navigator"
	default:
		return ""
	}
}

// ParseSource converts a --from flag value to a Source. The empty string
// means no starting object.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "":
		return SourceNone, nil
	case "focus":
		return SourceFocus, nil
	case "mouse", "pointer":
		return SourceMouse, nil
	case "navigator", "nav", "review":
		return SourceNavigator, nil
	default:
		return SourceNone, fmt.Errorf("unknown source: %q (expected focus, mouse, or navigator)", s)
	}
}

// Resolve asks the host for the object named by src at call time.
func Resolve(h Host, src Source) model.Object {
	switch src {
	case SourceFocus:
		return h.Focus()
	case SourceMouse:
		return h.Mouse()
	case SourceNavigator:
		return h.Navigator()
	default:
		return nil
	}
}
