package retrieval

import (
	"context"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/prompts"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// GroundedGenerator answers a fully rendered retrieval prompt with an
// answer plus citations.
type GroundedGenerator interface {
	GenerateGrounded(ctx context.Context, systemPrompt string) (*model.RAGGenerationResponse, error)
}

// PipelineResult is the single-shot pipeline's output.
type PipelineResult struct {
	Answer      string
	References  []model.Citation
	UsedContext []model.DisplayContext
}

// Pipeline is the non-agentic path: retrieve once, generate once, resolve
// citations. No tool loop, no intent gate.
type Pipeline struct {
	retriever *Retriever
	generator GroundedGenerator
	resolver  *Resolver
	topK      int
}

func NewPipeline(retriever *Retriever, generator GroundedGenerator, resolver *Resolver, topK int) *Pipeline {
	if topK <= 0 {
		topK = 5
	}
	return &Pipeline{retriever: retriever, generator: generator, resolver: resolver, topK: topK}
}

func (p *Pipeline) Run(ctx context.Context, question string) (*PipelineResult, error) {
	items, err := p.retriever.Retrieve(ctx, question, p.topK)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := prompts.RenderGenerationSystem(ctx, FormatContext(items), question)
	if err != nil {
		return nil, err
	}

	resp, err := p.generator.GenerateGrounded(ctx, systemPrompt)
	if err != nil {
		return nil, err
	}

	used, err := p.resolver.Resolve(ctx, resp.References)
	if err != nil {
		return nil, err
	}

	logx.Debug().
		Int("retrieved", len(items)).
		Int("references", len(resp.References)).
		Int("resolved", len(used)).
		Msg("Single-shot pipeline complete")

	return &PipelineResult{
		Answer:      resp.Answer,
		References:  resp.References,
		UsedContext: used,
	}, nil
}
