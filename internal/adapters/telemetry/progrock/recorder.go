// Package progrock reports model loading progress through a progrock tape.
package progrock

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

var _ ports.Progress = (*Recorder)(nil)

// Recorder implements ports.Progress using the vito/progrock library.
// Every handle becomes a vertex; progress text is also echoed to the logger at debug level.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger
	seq    atomic.Uint64
}

// New creates a new Recorder with a default tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
	}
}

// Start opens a vertex for caption.
func (r *Recorder) Start(caption string) ports.ProgressHandle {
	// Vertices with equal digests are merged, so every handle gets its own.
	d := digest.FromString(caption + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	r.logger.Debug(caption)
	return &Handle{
		caption: caption,
		vertex:  r.rec.Vertex(d, caption),
		logger:  r.logger,
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Handle implements ports.ProgressHandle wrapping *progrock.VertexRecorder.
type Handle struct {
	caption string
	vertex  *progrock.VertexRecorder
	logger  ports.Logger
	done    atomic.Bool
}

// Progress records a line of progress text on the vertex.
func (h *Handle) Progress(text string) {
	if text == "" || h.done.Load() {
		return
	}
	_, _ = fmt.Fprintln(h.vertex.Stdout(), text)
	h.logger.Debug(h.caption + ": " + text)
}

// Finish completes the vertex. Only the first call has an effect.
func (h *Handle) Finish(err error) {
	if !h.done.CompareAndSwap(false, true) {
		return
	}
	h.vertex.Done(err)
}
