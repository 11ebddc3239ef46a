package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickySink struct{}

func (panickySink) ObserveLLMUsage(context.Context, LLMUsage)             { panic("sink exploded") }
func (panickySink) ObserveEmbeddingUsage(context.Context, EmbeddingUsage) { panic("sink exploded") }

func TestEmitLLMUsageNilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		EmitLLMUsage(context.Background(), nil, LLMUsage{Stage: "qa_agent"})
	})
}

func TestEmitLLMUsageRecoversSinkPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		EmitLLMUsage(context.Background(), panickySink{}, LLMUsage{Stage: "qa_agent"})
	})
	assert.NotPanics(t, func() {
		EmitEmbeddingUsage(context.Background(), panickySink{}, EmbeddingUsage{Model: "text-embedding-3-small"})
	})
}

func TestComputeCost(t *testing.T) {
	p := ResolvePricing("gemini-2.5-flash")
	require.Equal(t, 0.30, p.InputPerM)

	in, out, total := ComputeCost(1_000_000, 2_000_000, p)
	assert.InDelta(t, 0.30, in, 1e-9)
	assert.InDelta(t, 5.00, out, 1e-9)
	assert.InDelta(t, 5.30, total, 1e-9)
}

func TestResolvePricingUnknownModel(t *testing.T) {
	p := ResolvePricing("some-future-model")
	assert.Zero(t, p.InputPerM)
	assert.Zero(t, p.OutputPerM)
}
