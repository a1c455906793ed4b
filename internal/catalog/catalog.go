// Package catalog wires the declared compositions into a sealed registry,
// applying the manifest's overrides on the way.
package catalog

import (
	"fmt"
	"log"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/registry"
	"github.com/ivlev/framekit/internal/scene"
)

// Build registers every enabled composition of scene.Catalog and seals the
// registry. A nil manifest registers the declarations unchanged.
func Build(m *config.Manifest, logger *log.Logger) (*registry.Registry, error) {
	if logger == nil {
		logger = log.Default()
	}
	var settings config.Settings
	if m != nil {
		settings = m.Settings
	}

	reg := registry.New(registry.Strict(settings.StrictDurations), registry.Logger(logger))

	known := make(map[string]bool)
	for _, def := range scene.Catalog() {
		id := def.Config.ID
		known[id] = true
		if !m.Enabled(id) {
			logger.Printf("[*] composition %s disabled by manifest", id)
			continue
		}

		cfg := m.Apply(def.Config)
		ev, err := def.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", id, err)
		}
		if err := reg.Register(cfg, ev); err != nil {
			return nil, err
		}
	}

	if m != nil {
		for _, e := range m.Compositions {
			if !known[e.ID] {
				logger.Printf("[!] manifest lists unknown composition %s", e.ID)
			}
		}
	}

	reg.Seal()
	return reg, nil
}
