package domain

import "go.trai.ch/zerr"

var (
	// ErrTreeAssembly is returned when the raw tooling graph cannot be turned into a project tree.
	ErrTreeAssembly = zerr.New("failed to assemble project tree")

	// ErrBuildFailed is returned when the build tool evaluated the project and reported a failure.
	ErrBuildFailed = zerr.New("gradle build failed")

	// ErrConnectionFailed is returned when the tooling process could not be started or talked to.
	ErrConnectionFailed = zerr.New("failed to connect to gradle")

	// ErrUnknownModel is returned by a connection when the requested model class is not supported.
	ErrUnknownModel = zerr.New("unknown model")

	// ErrSettingsFileNotFound is returned when no settings.gradle file exists above a project directory.
	ErrSettingsFileNotFound = zerr.New("gradle settings file not found")

	// ErrLoaderClosed is returned for tasks submitted after the loader was closed.
	ErrLoaderClosed = zerr.New("model loader is closed")

	// ErrInvalidGradleLocation is returned when a gradle location string cannot be parsed.
	ErrInvalidGradleLocation = zerr.New("invalid gradle location")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrStoreReadFailed is returned when a model snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read model snapshot")

	// ErrStoreUnmarshalFailed is returned when a model snapshot cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal model snapshot")

	// ErrStoreMarshalFailed is returned when a model snapshot cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal model snapshot")

	// ErrStoreCreateFailed is returned when the snapshot directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot directory")

	// ErrStoreWriteFailed is returned when a model snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write model snapshot")

	// ErrFingerprintFailed is returned when the settings file cannot be hashed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint settings file")

	// ErrTaskPanicked is returned when a scheduled task panics.
	ErrTaskPanicked = zerr.New("model task panicked")
)
