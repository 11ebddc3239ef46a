package observability

import (
	"context"

	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// LLMUsage is one completion call's token accounting.
type LLMUsage struct {
	Stage            string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// EmbeddingUsage is one embedding call's token accounting.
type EmbeddingUsage struct {
	Model        string
	PromptTokens int
	TotalTokens  int
}

// UsageSink receives best-effort usage telemetry. Implementations must never
// block the caller and must never return or panic on failure.
type UsageSink interface {
	ObserveLLMUsage(ctx context.Context, u LLMUsage)
	ObserveEmbeddingUsage(ctx context.Context, u EmbeddingUsage)
}

// EmitLLMUsage forwards to the sink, tolerating a nil sink and recovering
// from any sink panic so telemetry can never fail the main call.
func EmitLLMUsage(ctx context.Context, sink UsageSink, u LLMUsage) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logx.Warn().Str("stage", u.Stage).Msgf("usage sink panic recovered: %v", r)
		}
	}()
	sink.ObserveLLMUsage(ctx, u)
}

// EmitEmbeddingUsage forwards to the sink with the same guarantees as EmitLLMUsage.
func EmitEmbeddingUsage(ctx context.Context, sink UsageSink, u EmbeddingUsage) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logx.Warn().Str("model", u.Model).Msgf("usage sink panic recovered: %v", r)
		}
	}()
	sink.ObserveEmbeddingUsage(ctx, u)
}

// NopSink discards all usage events.
type NopSink struct{}

func (NopSink) ObserveLLMUsage(context.Context, LLMUsage)             {}
func (NopSink) ObserveEmbeddingUsage(context.Context, EmbeddingUsage) {}

// LogSink writes usage events to the structured log, with per-call cost.
type LogSink struct{}

func (LogSink) ObserveLLMUsage(_ context.Context, u LLMUsage) {
	pricing := ResolvePricing(u.Model)
	inC, outC, totalC := ComputeCost(u.PromptTokens, u.CompletionTokens, pricing)
	logx.Debug().
		Str("stage", u.Stage).
		Str("model", u.Model).
		Int("prompt_tokens", u.PromptTokens).
		Int("completion_tokens", u.CompletionTokens).
		Int("total_tokens", u.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}

func (LogSink) ObserveEmbeddingUsage(_ context.Context, u EmbeddingUsage) {
	logx.Debug().
		Str("model", u.Model).
		Int("prompt_tokens", u.PromptTokens).
		Int("total_tokens", u.TotalTokens).
		Msg("Embedding usage")
}
