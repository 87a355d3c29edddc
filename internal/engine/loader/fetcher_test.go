package loader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports/mocks"
	"go.trai.ch/gradlemodel/internal/engine/loader"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var fetchCfg = domain.ConnectorConfig{
	ProjectDir: "/w",
	JVMArgs:    []string{"-Xmx1g"},
	JavaHome:   "/opt/jdk",
}

func TestFetcher_FetchPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	handle := mocks.NewMockProgressHandle(ctrl)
	handle.EXPECT().Progress("> Configure project :").Times(1)

	want := domain.IdeaProject{Name: "w"}
	conn.EXPECT().Model(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.ModelRequest) (any, error) {
			assert.Equal(t, domain.IdeaProjectModel, req.Class)
			assert.Equal(t, "/opt/jdk", req.JavaHome)
			assert.Equal(t, []string{"-Xmx1g"}, req.JVMArgs)
			req.OnProgress("> Configure project :")
			return want, nil
		})

	got, err := loader.NewFetcher(mocks.NewMockLogger(ctrl)).FetchPrimary(context.Background(), conn, fetchCfg, handle)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetcher_FetchPrimaryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	handle := mocks.NewMockProgressHandle(ctrl)
	f := loader.NewFetcher(mocks.NewMockLogger(ctrl))

	conn.EXPECT().Model(gomock.Any(), gomock.Any()).Return(nil, zerr.Wrap(domain.ErrBuildFailed, "boom"))
	_, err := f.FetchPrimary(context.Background(), conn, fetchCfg, handle)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)

	conn.EXPECT().Model(gomock.Any(), gomock.Any()).Return("not a project", nil)
	_, err = f.FetchPrimary(context.Background(), conn, fetchCfg, handle)
	assert.ErrorIs(t, err, domain.ErrConnectionFailed)
}

func TestFetcher_FetchExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	handle := mocks.NewMockProgressHandle(ctrl)
	log := mocks.NewMockLogger(ctrl)
	f := loader.NewFetcher(log)
	ctx := context.Background()

	env := domain.BuildEnvironment{GradleVersion: "8.10"}
	conn.EXPECT().Model(gomock.Any(), gomock.Any()).Return(env, nil)
	res, err := f.FetchExtension(ctx, conn, fetchCfg, handle, domain.BuildEnvironmentModel)
	require.NoError(t, err)
	assert.Equal(t, loader.FetchFound, res.Status)
	assert.Equal(t, domain.ModelEntry{Class: domain.BuildEnvironmentModel, Value: env}, res.Entry)

	conn.EXPECT().Model(gomock.Any(), gomock.Any()).Return(nil, zerr.Wrap(domain.ErrUnknownModel, "nope"))
	log.EXPECT().Debug(gomock.Any()).Times(1)
	res, err = f.FetchExtension(ctx, conn, fetchCfg, handle, domain.EclipseProjectModel)
	require.NoError(t, err)
	assert.Equal(t, loader.FetchNotApplicable, res.Status)

	conn.EXPECT().Model(gomock.Any(), gomock.Any()).Return(nil, zerr.Wrap(domain.ErrConnectionFailed, "gone"))
	_, err = f.FetchExtension(ctx, conn, fetchCfg, handle, domain.BuildEnvironmentModel)
	assert.ErrorIs(t, err, domain.ErrConnectionFailed)
}
