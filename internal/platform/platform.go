package platform

import (
	"image"

	"github.com/mj1618/object-viewer/internal/model"
)

// Host is the accessibility object model of the running screen reader.
// Queries return nil when the host has no such object.
type Host interface {
	// Desktop returns the top of the object hierarchy.
	Desktop() model.Object

	// Focus returns the object with keyboard focus.
	Focus() model.Object

	// Mouse returns the object under the pointer.
	Mouse() model.Object

	// Navigator returns the last object reviewed with object navigation.
	Navigator() model.Object

	// Lookup resolves an object by its host identity.
	Lookup(id string) model.Object

	// SimpleReviewMode reports the host's own simple review preference.
	SimpleReviewMode() bool
}

// IconExtractor extracts small application icons from the platform shell.
type IconExtractor interface {
	SmallIcon(path string) (image.Image, error)
}
