// Package cas implements the on-disk model snapshot store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using a file-per-project strategy.
// File names are the sha256 of the cleaned project directory.
type Store struct {
	mu   sync.RWMutex
	root string
}

// NewStore creates a new SnapshotStore rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: filepath.Clean(dir)}
}

// SetRoot moves the store to dir. Existing snapshots are not copied.
func (s *Store) SetRoot(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = filepath.Clean(dir)
}

// Root returns the directory snapshots are written to.
func (s *Store) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Get retrieves the snapshot for projectDir.
func (s *Store) Get(projectDir string) (*domain.ModelSnapshot, error) {
	filename := s.filename(projectDir)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "project", projectDir)
	}

	var snapshot domain.ModelSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "project", projectDir)
	}

	return &snapshot, nil
}

// Put stores the snapshot, replacing any previous one for the same project.
func (s *Store) Put(snapshot domain.ModelSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	root := s.Root()
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	filename := s.filename(snapshot.ProjectDir)
	tmp, err := os.CreateTemp(root, ".snapshot-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(projectDir string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(projectDir)))
	return filepath.Join(s.Root(), hex.EncodeToString(hash[:])+".json")
}
