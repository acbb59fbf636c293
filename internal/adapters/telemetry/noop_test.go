package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lsproj/internal/adapters/telemetry"
)

func TestNoOp(t *testing.T) {
	ctx := context.Background()
	got, vertex := telemetry.NoOp{}.Record(ctx, "digest(1)")

	assert.Equal(t, ctx, got)
	vertex.Cached()
	vertex.Complete(nil)
	assert.NoError(t, telemetry.NoOp{}.Close())
}
