package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter identifies the state of a project's settings file.
type Fingerprinter struct {
	locator ports.SettingsLocator
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(locator ports.SettingsLocator) *Fingerprinter {
	return &Fingerprinter{locator: locator}
}

// Fingerprint locates the settings file of projectDir and records its
// modification time, size and content hash.
func (f *Fingerprinter) Fingerprint(projectDir string) (domain.Fingerprint, error) {
	path, err := f.locator.Locate(projectDir)
	if err != nil {
		return domain.Fingerprint{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.Fingerprint{}, zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
	}

	hash, err := ComputeFileHash(path)
	if err != nil {
		return domain.Fingerprint{}, err
	}

	return domain.Fingerprint{
		Path:    path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Hash:    hash,
	}, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
