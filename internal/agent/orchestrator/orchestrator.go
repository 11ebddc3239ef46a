package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// maxAgentTurns caps completed answering-agent invocations per run so the
// tool-call loop can never run unbounded.
const maxAgentTurns = 3

// Router gates whether a conversation reaches the answering agent.
type Router interface {
	Route(ctx context.Context, conversation []*schema.Message) (*model.IntentRouterResponse, error)
}

// Answerer runs one agent turn over the accumulated conversation.
type Answerer interface {
	Answer(ctx context.Context, conversation []*schema.Message) (*model.AgentResponse, error)
}

// ToolExecutor dispatches one requested tool call and declares the catalog.
type ToolExecutor interface {
	Infos() []*schema.ToolInfo
	Execute(ctx context.Context, call model.ToolCall) (string, error)
}

// step names the orchestration loop's states.
type step string

const (
	stepIntentCheck step = "intent_check"
	stepAnswering   step = "answering"
	stepToolExec    step = "tool_exec"
	stepEnd         step = "end"
)

// Orchestrator drives the route -> answer <-> tool-exec state machine for a
// single request. All state lives in a per-run RunState; an Orchestrator is
// safe for concurrent use across requests.
type Orchestrator struct {
	router   Router
	answerer Answerer
	tools    ToolExecutor
}

func New(router Router, answerer Answerer, tools ToolExecutor) *Orchestrator {
	return &Orchestrator{router: router, answerer: answerer, tools: tools}
}

// Run executes one request through the state machine and returns the
// accumulated answer and references. Transport errors at any stage propagate
// unrecovered; the request boundary translates them.
func (o *Orchestrator) Run(ctx context.Context, question string) (*model.RunResult, error) {
	st := model.NewRunState(question, o.tools.Infos())

	// tool-call ids for the latest agent turn; synthesized because the
	// structured JSON contract carries no provider-native call ids
	var pendingIDs []string
	idSeq := 0

	current := stepIntentCheck
	for current != stepEnd {
		switch current {
		case stepIntentCheck:
			route, err := o.router.Route(ctx, st.Messages)
			if err != nil {
				return nil, err
			}
			st.QuestionRelevant = route.QuestionRelevant
			st.Answer = route.Answer
			if !route.QuestionRelevant {
				logx.Debug().Msg("Question out of domain - ending run")
				current = stepEnd
				break
			}
			current = stepAnswering

		case stepAnswering:
			resp, err := o.answerer.Answer(ctx, st.Messages)
			if err != nil {
				return nil, err
			}
			st.Iteration++

			assistant, ids := assistantMessage(resp, &idSeq)
			st.Messages = append(st.Messages, assistant)
			st.Answer = resp.Answer
			st.FinalAnswer = resp.FinalAnswer
			st.References = append(st.References, resp.References...)
			st.PendingToolCalls = resp.ToolCalls
			pendingIDs = ids

			switch {
			case resp.FinalAnswer:
				current = stepEnd
			case st.Iteration >= maxAgentTurns:
				logx.Debug().Int("iteration", st.Iteration).Msg("Agent turn cap reached - ending run")
				current = stepEnd
			case len(resp.ToolCalls) == 0:
				current = stepEnd
			default:
				current = stepToolExec
			}

		case stepToolExec:
			// execute in the order returned and append results in that
			// same order before the next agent turn
			for i, call := range st.PendingToolCalls {
				out, err := o.tools.Execute(ctx, call)
				if err != nil {
					return nil, err
				}
				st.Messages = append(st.Messages, &schema.Message{
					Role:       schema.Tool,
					Content:    out,
					ToolCallID: pendingIDs[i],
				})
			}
			st.PendingToolCalls = nil
			pendingIDs = nil
			current = stepAnswering
		}
	}

	return &model.RunResult{Answer: st.Answer, References: st.References}, nil
}

// assistantMessage converts a structured agent turn into the assistant
// message appended to the conversation, synthesizing call ids for any
// requested tool calls.
func assistantMessage(resp *model.AgentResponse, idSeq *int) (*schema.Message, []string) {
	toolCalls := make([]schema.ToolCall, 0, len(resp.ToolCalls))
	ids := make([]string, 0, len(resp.ToolCalls))
	for _, call := range resp.ToolCalls {
		*idSeq++
		id := fmt.Sprintf("call_%d", *idSeq)
		ids = append(ids, id)

		args, err := json.Marshal(call.Arguments)
		if err != nil {
			args = []byte("{}")
		}
		toolCalls = append(toolCalls, schema.ToolCall{
			ID: id,
			Function: schema.FunctionCall{
				Name:      call.Name,
				Arguments: string(args),
			},
		})
	}
	return schema.AssistantMessage(resp.Answer, toolCalls), ids
}
