// Package telemetry holds the telemetry adapters for the incremental engine.
package telemetry

import (
	"context"

	"go.trai.ch/lsproj/internal/core/ports"
)

var _ ports.Telemetry = NoOp{}

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns ctx unchanged and a vertex that ignores every call.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}

func (noopVertex) Cached() {}
