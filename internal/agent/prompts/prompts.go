package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/intent_router_prompt.txt
var intentRouterPrompt string

//go:embed template/qa_agent_prompt.txt
var qaAgentPrompt string

//go:embed template/retrieval_generation_prompt.txt
var retrievalGenerationPrompt string

// RenderIntentRouterSystem returns the static intent router system prompt.
// Routed through the Eino prompt component so prompt callbacks still fire.
func RenderIntentRouterSystem(ctx context.Context) (string, error) {
	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("system_messages", false),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"system_messages": []*schema.Message{schema.SystemMessage(intentRouterPrompt)},
	})
	if err != nil {
		return "", fmt.Errorf("intent router prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("intent router prompt render: empty result")
	}
	return msgs[0].Content, nil
}

// RenderAgentSystem renders the answering agent system prompt parameterized
// by the rendered tool catalog (names plus JSON schemas).
func RenderAgentSystem(ctx context.Context, availableTools string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(qaAgentPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"AvailableTools": availableTools,
	})
	if err != nil {
		return "", fmt.Errorf("qa agent prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("qa agent prompt render: empty result")
	}
	return msgs[0].Content, nil
}

// RenderGenerationSystem renders the single-shot generation prompt from the
// formatted retrieval context and the user question.
func RenderGenerationSystem(ctx context.Context, preprocessedContext, question string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(retrievalGenerationPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"PreprocessedContext": preprocessedContext,
		"Question":            question,
	})
	if err != nil {
		return "", fmt.Errorf("retrieval generation prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("retrieval generation prompt render: empty result")
	}
	return msgs[0].Content, nil
}
