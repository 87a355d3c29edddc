package domain

import "time"

// Fingerprint identifies the state of a project's gradle settings file.
// The zero value means the settings file is unknown and never matches anything.
type Fingerprint struct {
	Path    string    `json:"path"`
	ModTime time.Time `json:"modTime"`
	Size    int64     `json:"size"`
	Hash    uint64    `json:"hash"`
}

// IsZero reports whether the fingerprint is unknown.
func (f Fingerprint) IsZero() bool {
	return f.Path == "" && f.Hash == 0 && f.Size == 0 && f.ModTime.IsZero()
}

// Matches reports whether two fingerprints describe the same settings file state.
// Unknown fingerprints never match, not even each other.
func (f Fingerprint) Matches(other Fingerprint) bool {
	if f.IsZero() || other.IsZero() {
		return false
	}
	return f.Path == other.Path &&
		f.Size == other.Size &&
		f.Hash == other.Hash &&
		f.ModTime.Equal(other.ModTime)
}
