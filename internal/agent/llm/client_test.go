package llm

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	errx "github.com/Shoply-rag-poc-v1/server/internal/core/error"
	"github.com/Shoply-rag-poc-v1/server/internal/observability"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"answer":"x"}`, `{"answer":"x"}`},
		{"json fence", "```json\n{\"answer\":\"x\"}\n```", `{"answer":"x"}`},
		{"plain fence", "```\n{\"answer\":\"x\"}\n```", `{"answer":"x"}`},
		{"surrounding whitespace", "  \n{\"answer\":\"x\"}\n  ", `{"answer":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

type fakeChatModel struct {
	content string
	err     error
	seen    []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, msgs []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.seen = msgs
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: f.content,
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		},
	}, nil
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

type captureSink struct {
	llm []observability.LLMUsage
}

func (c *captureSink) ObserveLLMUsage(_ context.Context, u observability.LLMUsage) {
	c.llm = append(c.llm, u)
}

func (c *captureSink) ObserveEmbeddingUsage(context.Context, observability.EmbeddingUsage) {}

func TestStructuredCallDecodesAndEmitsUsage(t *testing.T) {
	sink := &captureSink{}
	c := &GeminiClient{sink: sink}
	cm := &fakeChatModel{content: "```json\n{\"question_relevant\":true,\"answer\":\"hi\"}\n```"}

	out, err := structuredCall[model.IntentRouterResponse](context.Background(), c, "intent_router", "gemini-2.5-flash-lite", cm, "system", []*schema.Message{schema.UserMessage("q")})
	require.NoError(t, err)
	assert.True(t, out.QuestionRelevant)
	assert.Equal(t, "hi", out.Answer)

	// system prompt is prepended
	require.Len(t, cm.seen, 2)
	assert.Equal(t, schema.System, cm.seen[0].Role)

	require.Len(t, sink.llm, 1)
	assert.Equal(t, "intent_router", sink.llm[0].Stage)
	assert.Equal(t, 15, sink.llm[0].TotalTokens)
}

func TestStructuredCallSchemaError(t *testing.T) {
	c := &GeminiClient{}
	cm := &fakeChatModel{content: "not json at all"}

	_, err := structuredCall[model.AgentResponse](context.Background(), c, "qa_agent", "gemini-2.5-flash", cm, "system", nil)
	require.Error(t, err)
	assert.True(t, errx.IsKind(err, errx.KindSchemaValidation))
}

func TestStructuredCallCompletionError(t *testing.T) {
	c := &GeminiClient{}
	cm := &fakeChatModel{err: errors.New("deadline exceeded")}

	_, err := structuredCall[model.RAGGenerationResponse](context.Background(), c, "retrieval_generation", "gemini-2.5-flash", cm, "system", nil)
	require.Error(t, err)
	assert.True(t, errx.IsKind(err, errx.KindCompletion))
}
