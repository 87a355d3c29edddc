package app

import (
	"io"

	"go.trai.ch/gradlemodel/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Output   OutputConfigurer
	Progress ports.Progress
}

// OutputConfigurer switches the log output format.
type OutputConfigurer interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}

// Close flushes the progress recorder.
func (c *Components) Close() error {
	if closer, ok := c.Progress.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
