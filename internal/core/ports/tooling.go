package ports

import (
	"context"

	"go.trai.ch/gradlemodel/internal/core/domain"
)

// ToolingConnector opens connections to the build tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=tooling.go -destination=mocks/mock_tooling.go -package=mocks
type ToolingConnector interface {
	// Connect opens a connection for cfg.ProjectDir.
	// Failures wrap domain.ErrConnectionFailed.
	Connect(ctx context.Context, cfg domain.ConnectorConfig) (Connection, error)
}

// Connection is an open session with the build tool. It must be closed by the caller.
type Connection interface {
	// Model fetches one model. It returns an error wrapping domain.ErrUnknownModel
	// when the build cannot provide the class, domain.ErrBuildFailed when the build
	// itself fails and domain.ErrConnectionFailed for transport problems.
	Model(ctx context.Context, req domain.ModelRequest) (any, error)

	// Close releases the connection.
	Close() error
}
