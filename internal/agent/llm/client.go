package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/getkin/kin-openapi/openapi3"
	"google.golang.org/genai"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	errx "github.com/Shoply-rag-poc-v1/server/internal/core/error"
	"github.com/Shoply-rag-poc-v1/server/internal/observability"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// Client is the structured completion contract: one method per distinct
// response shape, all backed by the same schema-constrained call primitive.
type Client interface {
	// RouteIntent classifies whether the conversation is in-domain.
	RouteIntent(ctx context.Context, systemPrompt string, conversation []*schema.Message) (*model.IntentRouterResponse, error)

	// AgentTurn runs one answering-agent turn over the conversation.
	AgentTurn(ctx context.Context, systemPrompt string, conversation []*schema.Message) (*model.AgentResponse, error)

	// GenerateGrounded answers a fully rendered single-shot prompt.
	GenerateGrounded(ctx context.Context, systemPrompt string) (*model.RAGGenerationResponse, error)
}

// Config holds everything needed to build the per-shape Gemini chat models.
type Config struct {
	APIKey  string
	BaseURL string

	Router     model.RouterModelConfig
	Agent      model.AgentModelConfig
	Generation model.GenerationModelConfig
}

// GeminiClient implements Client with one gemini chat model per response
// shape, each constructed with its declared response schema.
type GeminiClient struct {
	router     *gemini.ChatModel
	agent      *gemini.ChatModel
	generation *gemini.ChatModel

	routerModelName     string
	agentModelName      string
	generationModelName string

	sink observability.UsageSink
}

// NewGeminiClient builds the shared genai client and the three structured
// chat models. The sink may be nil; usage emission is then a no-op.
func NewGeminiClient(ctx context.Context, cfg Config, sink observability.UsageSink) (*GeminiClient, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	router, err := newStructuredModel(ctx, client, cfg.Router.Model, cfg.Router.Temperature, cfg.Router.MaxTokens, IntentRouterSchema())
	if err != nil {
		return nil, fmt.Errorf("error creating router model: %w", err)
	}
	agent, err := newStructuredModel(ctx, client, cfg.Agent.Model, cfg.Agent.Temperature, cfg.Agent.MaxTokens, AgentResponseSchema())
	if err != nil {
		return nil, fmt.Errorf("error creating agent model: %w", err)
	}
	generation, err := newStructuredModel(ctx, client, cfg.Generation.Model, cfg.Generation.Temperature, cfg.Generation.MaxTokens, GenerationSchema())
	if err != nil {
		return nil, fmt.Errorf("error creating generation model: %w", err)
	}

	return &GeminiClient{
		router:              router,
		agent:               agent,
		generation:          generation,
		routerModelName:     cfg.Router.Model,
		agentModelName:      cfg.Agent.Model,
		generationModelName: cfg.Generation.Model,
		sink:                sink,
	}, nil
}

func newStructuredModel(ctx context.Context, client *genai.Client, modelName string, temperature float32, maxTokens int, responseSchema *openapi3.Schema) (*gemini.ChatModel, error) {
	return gemini.NewChatModel(ctx, &gemini.Config{
		Client:         client,
		Model:          modelName,
		Temperature:    &temperature,
		MaxTokens:      &maxTokens,
		ResponseSchema: responseSchema,
	})
}

func (c *GeminiClient) RouteIntent(ctx context.Context, systemPrompt string, conversation []*schema.Message) (*model.IntentRouterResponse, error) {
	return structuredCall[model.IntentRouterResponse](ctx, c, "intent_router", c.routerModelName, c.router, systemPrompt, conversation)
}

func (c *GeminiClient) AgentTurn(ctx context.Context, systemPrompt string, conversation []*schema.Message) (*model.AgentResponse, error) {
	return structuredCall[model.AgentResponse](ctx, c, "qa_agent", c.agentModelName, c.agent, systemPrompt, conversation)
}

func (c *GeminiClient) GenerateGrounded(ctx context.Context, systemPrompt string) (*model.RAGGenerationResponse, error) {
	return structuredCall[model.RAGGenerationResponse](ctx, c, "retrieval_generation", c.generationModelName, c.generation, systemPrompt, nil)
}

// structuredCall is the generic schema-constrained call primitive: invoke the
// model, emit usage, decode the JSON reply into the declared shape. Decode
// failures surface as schema validation errors; no retry beyond what the
// backend client provides.
func structuredCall[T any](ctx context.Context, c *GeminiClient, stage, modelName string, cm einomodel.BaseChatModel, systemPrompt string, conversation []*schema.Message) (*T, error) {
	msgs := make([]*schema.Message, 0, len(conversation)+1)
	msgs = append(msgs, schema.SystemMessage(systemPrompt))
	msgs = append(msgs, conversation...)

	out, err := cm.Generate(ctx, msgs)
	if err != nil {
		logx.Error().Err(err).Str("stage", stage).Str("model", modelName).Msg("completion call failed")
		return nil, errx.WrapCompletion(err)
	}

	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		observability.EmitLLMUsage(ctx, c.sink, observability.LLMUsage{
			Stage:            stage,
			Model:            modelName,
			PromptTokens:     out.ResponseMeta.Usage.PromptTokens,
			CompletionTokens: out.ResponseMeta.Usage.CompletionTokens,
			TotalTokens:      out.ResponseMeta.Usage.TotalTokens,
		})
	}

	var parsed T
	if err := json.Unmarshal([]byte(stripCodeFence(out.Content)), &parsed); err != nil {
		logx.Error().Err(err).Str("stage", stage).Str("model", modelName).Msg("structured output did not parse")
		return nil, errx.WrapSchema(err)
	}
	return &parsed, nil
}

// stripCodeFence removes a surrounding markdown code fence some models emit
// around JSON despite the declared response schema.
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
