package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gradlemodel/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("loading project /work/app") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("no project properties, using global gradle home") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug hidden at info level",
			log:        func(l *logger.Logger) { l.Debug("model not supported") },
			goldenName: "debug_hidden",
		},
		{
			name:       "debug shown at debug level",
			level:      "debug",
			log:        func(l *logger.Logger) { l.Debug("model not supported") },
			goldenName: "debug_shown",
		},
		{
			name:       "warn level hides info",
			level:      "WARN",
			log:        func(l *logger.Logger) { l.Info("hidden"); l.Warn("shown") },
			goldenName: "warn_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			if tt.level != "" {
				lg.SetLevel(tt.level)
			}
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("connection refused"), "failed to start gradle"), "dir", "/work/app")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
}

func TestLogger_SetLevelUnknownFallsBackToInfo(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel("chatty")
	lg.Debug("hidden")
	lg.Info("shown")
	assert.Equal(t, "shown\n", buf.String())
}
