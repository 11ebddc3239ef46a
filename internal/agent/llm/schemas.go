package llm

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Response schemas declared per call site. Each gemini model is constructed
// with exactly one of these so its raw output is coerced server-side into the
// declared shape.

func citationSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema())
	s.Required = []string{"id", "description"}
	return s
}

func toolCallSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("arguments", openapi3.NewObjectSchema())
	s.Required = []string{"name"}
	return s
}

// IntentRouterSchema constrains the router's {question_relevant, answer} reply.
func IntentRouterSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("question_relevant", openapi3.NewBoolSchema()).
		WithProperty("answer", openapi3.NewStringSchema())
	s.Required = []string{"question_relevant", "answer"}
	return s
}

// AgentResponseSchema constrains the answering agent's turn output.
func AgentResponseSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("answer", openapi3.NewStringSchema()).
		WithProperty("references", openapi3.NewArraySchema().WithItems(citationSchema())).
		WithProperty("final_answer", openapi3.NewBoolSchema()).
		WithProperty("tool_calls", openapi3.NewArraySchema().WithItems(toolCallSchema()))
	s.Required = []string{"answer", "references"}
	return s
}

// GenerationSchema constrains the single-shot pipeline's {answer, references} reply.
func GenerationSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("answer", openapi3.NewStringSchema()).
		WithProperty("references", openapi3.NewArraySchema().WithItems(citationSchema()))
	s.Required = []string{"answer", "references"}
	return s
}
