package orchestrator

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/llm"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/prompts"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// IntentRouter is the single-shot gate in front of the answering agent. It
// never loops and never calls tools.
type IntentRouter struct {
	llm llm.Client
}

func NewIntentRouter(client llm.Client) *IntentRouter {
	return &IntentRouter{llm: client}
}

// Route classifies whether the conversation's question is in-domain. The
// returned answer is a decline/redirect message when it is not.
func (r *IntentRouter) Route(ctx context.Context, conversation []*schema.Message) (*model.IntentRouterResponse, error) {
	systemPrompt, err := prompts.RenderIntentRouterSystem(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.llm.RouteIntent(ctx, systemPrompt, conversation)
	if err != nil {
		return nil, err
	}

	logx.Debug().
		Bool("question_relevant", resp.QuestionRelevant).
		Msg("Intent routed")

	return resp, nil
}
