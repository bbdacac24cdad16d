package fixture

import (
	"github.com/mj1618/object-viewer/internal/icon"
	"github.com/mj1618/object-viewer/internal/platform"
)

// demo builds the host used when no snapshot is given.
var demo = Demo

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		host, err := hostFor(opts.Snapshot)
		if err != nil {
			return nil, err
		}
		ttl := opts.IconCacheTTL
		switch {
		case ttl == 0:
			ttl = icon.DefaultCacheTTL
		case ttl < 0:
			ttl = 0
		}
		return &platform.Provider{
			Host:  host,
			Icons: icon.NewExtractor(ttl),
		}, nil
	}
}

func hostFor(snapshot string) (*Host, error) {
	if snapshot == "" {
		return demo(), nil
	}
	snap, err := LoadSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return New(snap)
}
