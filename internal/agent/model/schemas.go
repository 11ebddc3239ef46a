package model

// ToolCall is a tool invocation requested by the answering agent. Arguments
// arrive as loosely typed JSON and are sanitized before dispatch.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Citation points at the catalog item used to ground part of an answer.
type Citation struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// IntentRouterResponse is the intent router's structured output.
type IntentRouterResponse struct {
	QuestionRelevant bool   `json:"question_relevant"`
	Answer           string `json:"answer"`
}

// AgentResponse is the answering agent's structured output for one turn.
type AgentResponse struct {
	Answer      string     `json:"answer"`
	References  []Citation `json:"references"`
	FinalAnswer bool       `json:"final_answer"`
	ToolCalls   []ToolCall `json:"tool_calls"`
}

// RAGGenerationResponse is the single-shot pipeline's structured output.
type RAGGenerationResponse struct {
	Answer     string     `json:"answer"`
	References []Citation `json:"references"`
}

// DisplayContext is the resolved, user-facing form of a Citation. Discarded
// after the response is sent.
type DisplayContext struct {
	ImageURL    string   `json:"image_url"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}
