package ports

import "go.trai.ch/gradlemodel/internal/core/domain"

// SnapshotStore persists fetched module graphs between sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot for a project directory.
	// Returns nil, nil if not found.
	Get(projectDir string) (*domain.ModelSnapshot, error)

	// Put stores the snapshot.
	Put(snapshot domain.ModelSnapshot) error
}
