package domain

import "time"

// ModelSnapshot is the on-disk form of a fetched module graph.
// It lets a later session skip the primary fetch while the settings file is unchanged.
type ModelSnapshot struct {
	ProjectDir  string      `json:"projectDir"`
	Fingerprint Fingerprint `json:"fingerprint"`
	Project     IdeaProject `json:"project"`
	StoredAt    time.Time   `json:"storedAt"`
}
