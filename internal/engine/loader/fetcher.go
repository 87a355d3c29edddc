package loader

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

// FetchStatus tells whether a requested model was available.
type FetchStatus int

const (
	// FetchFound means the build returned the model.
	FetchFound FetchStatus = iota
	// FetchNotApplicable means the build does not offer the model.
	FetchNotApplicable
)

// FetchResult is the outcome of a successful extension model request.
type FetchResult struct {
	Status FetchStatus
	Entry  domain.ModelEntry
}

// Fetcher performs model requests on an open connection.
type Fetcher struct {
	logger ports.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(logger ports.Logger) *Fetcher {
	return &Fetcher{logger: logger}
}

// FetchPrimary requests the idea module graph. Every failure is fatal here,
// including an unknown model.
func (f *Fetcher) FetchPrimary(
	ctx context.Context,
	conn ports.Connection,
	cfg domain.ConnectorConfig,
	progress ports.ProgressHandle,
) (domain.IdeaProject, error) {
	v, err := conn.Model(ctx, request(cfg, domain.IdeaProjectModel, progress))
	if err != nil {
		return domain.IdeaProject{}, err
	}
	project, ok := v.(domain.IdeaProject)
	if !ok {
		return domain.IdeaProject{}, zerr.With(
			zerr.Wrap(domain.ErrConnectionFailed, "unexpected primary model type"),
			"type", fmt.Sprintf("%T", v),
		)
	}
	return project, nil
}

// FetchExtension requests one optional model. A model the build does not know
// yields FetchNotApplicable instead of an error.
func (f *Fetcher) FetchExtension(
	ctx context.Context,
	conn ports.Connection,
	cfg domain.ConnectorConfig,
	progress ports.ProgressHandle,
	class domain.ModelClass,
) (FetchResult, error) {
	v, err := conn.Model(ctx, request(cfg, class, progress))
	if errors.Is(err, domain.ErrUnknownModel) {
		f.logger.Debug(fmt.Sprintf("model %s is not available for %s", class, cfg.ProjectDir))
		return FetchResult{Status: FetchNotApplicable}, nil
	}
	if err != nil {
		return FetchResult{}, err
	}
	return FetchResult{Status: FetchFound, Entry: domain.ModelEntry{Class: class, Value: v}}, nil
}

func request(cfg domain.ConnectorConfig, class domain.ModelClass, progress ports.ProgressHandle) domain.ModelRequest {
	return domain.ModelRequest{
		Class:      class,
		JavaHome:   cfg.JavaHome,
		JVMArgs:    cfg.JVMArgs,
		OnProgress: progress.Progress,
	}
}
