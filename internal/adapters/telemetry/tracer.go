// Package telemetry records model loading as OpenTelemetry spans.
package telemetry

import (
	"context"
	"io"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// InstrumentationName identifies the tracer used for loader spans.
const InstrumentationName = "go.trai.ch/gradlemodel"

var _ ports.Progress = (*TracedProgress)(nil)

// TracedProgress decorates a ports.Progress so that every handle is also an OTel span.
type TracedProgress struct {
	inner    ports.Progress
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// NewTracedProgress wraps inner, recording spans through provider.
func NewTracedProgress(inner ports.Progress, provider *sdktrace.TracerProvider) *TracedProgress {
	return &TracedProgress{
		inner:    inner,
		tracer:   provider.Tracer(InstrumentationName),
		provider: provider,
	}
}

// Start opens a span named caption alongside the wrapped handle.
func (p *TracedProgress) Start(caption string) ports.ProgressHandle {
	_, span := p.tracer.Start(context.Background(), caption)
	return &tracedHandle{
		inner: p.inner.Start(caption),
		span:  span,
	}
}

// Close flushes pending spans and closes the wrapped progress if it is closable.
func (p *TracedProgress) Close() error {
	err := p.provider.Shutdown(context.Background())
	if c, ok := p.inner.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type tracedHandle struct {
	inner ports.ProgressHandle
	span  trace.Span
	done  atomic.Bool
}

func (h *tracedHandle) Progress(text string) {
	h.inner.Progress(text)
	if text == "" || h.done.Load() {
		return
	}
	h.span.AddEvent("progress", trace.WithAttributes(attribute.String("message", text)))
}

func (h *tracedHandle) Finish(err error) {
	h.inner.Finish(err)
	if !h.done.CompareAndSwap(false, true) {
		return
	}
	if err != nil {
		h.span.RecordError(err)
		h.span.SetStatus(codes.Error, err.Error())
	} else {
		h.span.SetStatus(codes.Ok, "")
	}
	h.span.End()
}
