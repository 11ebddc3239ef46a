package retrieval

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	errx "github.com/Shoply-rag-poc-v1/server/internal/core/error"
	"github.com/Shoply-rag-poc-v1/server/internal/observability"
)

// Embedder computes a dense embedding for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbedderConfig configures the OpenAI embedding client.
type EmbedderConfig struct {
	APIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	Model  string `envconfig:"EMBEDDING_MODEL" default:"text-embedding-3-small"`
}

// OpenAIEmbedder embeds queries via the OpenAI embeddings endpoint.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
	sink   observability.UsageSink
}

// NewOpenAIEmbedder builds an embedder from config. The sink may be nil.
func NewOpenAIEmbedder(cfg EmbedderConfig, sink observability.UsageSink) *OpenAIEmbedder {
	return &OpenAIEmbedder{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
		sink:   sink,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, errx.WrapRetrieval(err)
	}
	if len(resp.Data) == 0 {
		return nil, errx.WrapRetrieval(fmt.Errorf("embedding response contained no data"))
	}

	observability.EmitEmbeddingUsage(ctx, e.sink, observability.EmbeddingUsage{
		Model:        e.model,
		PromptTokens: resp.Usage.PromptTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	})

	return resp.Data[0].Embedding, nil
}
