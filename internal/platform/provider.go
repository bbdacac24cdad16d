package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current host.
type Provider struct {
	Host  Host
	Icons IconExtractor
}

// ErrUnsupported is returned when no host backend is registered.
var ErrUnsupported = fmt.Errorf("object-viewer has no accessibility host backend for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init().
// See internal/platform/fixture/init.go for the snapshot backend.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider for the current host.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
