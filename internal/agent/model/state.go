package model

import (
	"github.com/cloudwego/eino/schema"
)

// RunState is the orchestration loop's state for the lifetime of one request.
// Merge semantics per field:
//   - Messages and References are append-only; nothing prunes them mid-run.
//   - Iteration only increases, bumped after each completed agent turn.
//   - QuestionRelevant is written once by the intent router.
//   - AvailableTools is fixed at construction.
//   - PendingToolCalls and FinalAnswer are overwritten each agent turn;
//     PendingToolCalls is cleared once the calls have executed.
//   - Answer is overwritten each agent turn (and once by the router).
//
// A RunState is owned by a single request; nothing is shared across requests.
type RunState struct {
	Messages         []*schema.Message
	Iteration        int
	QuestionRelevant bool
	AvailableTools   []*schema.ToolInfo
	PendingToolCalls []ToolCall
	FinalAnswer      bool
	Answer           string
	References       []Citation
}

// NewRunState seeds the state with the user's question and the fixed tool catalog.
func NewRunState(question string, tools []*schema.ToolInfo) *RunState {
	return &RunState{
		Messages:       []*schema.Message{schema.UserMessage(question)},
		AvailableTools: tools,
	}
}

// RunResult is what the loop yields on END.
type RunResult struct {
	Answer     string
	References []Citation
}
