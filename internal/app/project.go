package app

import (
	"path/filepath"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// project is a gradle project directory configured from the settings file.
type project struct {
	dir        string
	settings   ports.SettingsSource
	extensions []ports.ExtensionRef
}

func (p *project) Directory() string { return p.dir }

func (p *project) DisplayName() string { return filepath.Base(p.dir) }

// Properties are unavailable while the settings file is broken.
func (p *project) Properties() (domain.ProjectProperties, bool) {
	if p.settings.Err() != nil {
		return domain.ProjectProperties{}, false
	}
	props, _ := p.settings.Settings().PropertiesFor(p.dir)
	return props, true
}

func (p *project) Extensions() []ports.ExtensionRef { return p.extensions }
