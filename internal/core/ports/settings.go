package ports

import "go.trai.ch/gradlemodel/internal/core/domain"

// SettingsSource supplies the global loader settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsSource interface {
	// Settings returns the most recent valid settings.
	Settings() domain.Settings

	// Err returns the error of the last load attempt, or nil.
	Err() error

	// OnChange registers fn to be called with every newly loaded settings value.
	OnChange(fn func(domain.Settings))
}

// SettingsLocator finds the gradle settings file governing a project directory.
type SettingsLocator interface {
	// Locate returns the settings file path, or an error wrapping
	// domain.ErrSettingsFileNotFound.
	Locate(projectDir string) (string, error)
}

// Fingerprinter computes the settings fingerprint of a project directory.
type Fingerprinter interface {
	// Fingerprint returns the fingerprint of the governing settings file.
	// It returns an error wrapping domain.ErrSettingsFileNotFound when there is none.
	Fingerprint(projectDir string) (domain.Fingerprint, error)
}
