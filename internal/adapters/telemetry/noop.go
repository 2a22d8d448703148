// Package telemetry holds telemetry implementations that record nothing.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
)

var (
	_ ports.Telemetry = (*Noop)(nil)
	_ ports.Vertex    = (*NoopVertex)(nil)
)

// Noop is a ports.Telemetry that discards every vertex.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns ctx carrying a vertex that discards its output.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

// NoopVertex is a ports.Vertex that discards everything.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (v *NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (v *NoopVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (v *NoopVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (v *NoopVertex) Complete(error) {}

// Cached does nothing.
func (v *NoopVertex) Cached() {}
