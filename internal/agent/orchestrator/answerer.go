package orchestrator

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/llm"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/prompts"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// ToolCatalog exposes the fixed tool declarations of a run, both as Eino
// tool infos and as the rendered block embedded in the agent prompt.
type ToolCatalog interface {
	Infos() []*schema.ToolInfo
	Describe() (string, error)
}

// AnsweringAgent produces one structured turn: an answer, citations, the
// tool calls it wants executed and a continuation flag. It does not execute
// tools itself.
type AnsweringAgent struct {
	llm     llm.Client
	catalog string
}

// NewAnsweringAgent renders the tool catalog once; the set of tools is fixed
// per run, so the system prompt parameters never change between turns.
func NewAnsweringAgent(client llm.Client, catalog ToolCatalog) (*AnsweringAgent, error) {
	rendered, err := catalog.Describe()
	if err != nil {
		return nil, err
	}
	return &AnsweringAgent{llm: client, catalog: rendered}, nil
}

func (a *AnsweringAgent) Answer(ctx context.Context, conversation []*schema.Message) (*model.AgentResponse, error) {
	systemPrompt, err := prompts.RenderAgentSystem(ctx, a.catalog)
	if err != nil {
		return nil, err
	}

	resp, err := a.llm.AgentTurn(ctx, systemPrompt, conversation)
	if err != nil {
		return nil, err
	}

	logx.Debug().
		Bool("final_answer", resp.FinalAnswer).
		Int("tool_calls", len(resp.ToolCalls)).
		Int("references", len(resp.References)).
		Msg("Agent turn complete")

	return resp, nil
}
