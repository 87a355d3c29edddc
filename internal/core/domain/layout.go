package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = "gradlemodel"

	// SettingsFileName is the name of the application settings file.
	SettingsFileName = "gradlemodel.yaml"

	// SnapshotDirName is the name of the model snapshot directory.
	SnapshotDirName = "snapshots"

	// GradleSettingsFile is the name of the groovy gradle settings script.
	GradleSettingsFile = "settings.gradle"

	// GradleSettingsFileKts is the name of the kotlin gradle settings script.
	GradleSettingsFileKts = "settings.gradle.kts"

	// GradleSettingsPattern matches both settings script flavours.
	GradleSettingsPattern = "settings.gradle{,.kts}"

	// DefaultProjectCacheSize is the number of project models kept in memory by default.
	DefaultProjectCacheSize = 100

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigDir returns the per-user configuration directory for gradlemodel.
// It falls back to the working directory when no user config dir is available.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// DefaultSettingsPath returns the default path of the settings file.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultConfigDir(), SettingsFileName)
}

// DefaultSnapshotPath returns the default directory for model snapshots.
// It joins the user cache dir, gradlemodel and snapshots.
func DefaultSnapshotPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join("."+AppDirName, SnapshotDirName)
	}
	return filepath.Join(base, AppDirName, SnapshotDirName)
}
