package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the settings locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
	// FingerprinterNodeID is the unique identifier for the fingerprinter Graft node.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LocatorNodeID},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			locator, err := graft.Dep[ports.SettingsLocator](ctx)
			if err != nil {
				return nil, err
			}
			return NewFingerprinter(locator), nil
		},
	})
}
