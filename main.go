package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/llm"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/orchestrator"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/repo"
	"github.com/Shoply-rag-poc-v1/server/internal/agent/tools"
	"github.com/Shoply-rag-poc-v1/server/internal/api"
	"github.com/Shoply-rag-poc-v1/server/internal/core"
	"github.com/Shoply-rag-poc-v1/server/internal/index"
	"github.com/Shoply-rag-poc-v1/server/internal/observability"
	"github.com/Shoply-rag-poc-v1/server/internal/retrieval"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
	pkgredis "github.com/Shoply-rag-poc-v1/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8000"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Infrastructure
	Qdrant index.Config

	// Model and pipeline configs
	Embedding    retrieval.EmbedderConfig
	Router       model.RouterModelConfig
	Agent        model.AgentModelConfig
	Generation   model.GenerationModelConfig
	Retrieval    model.RetrievalConfig
	ProductCache model.ProductCacheConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	env := core.ParseEnvironment(envCfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})
	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sink := observability.LogSink{}

	idx, err := envCfg.Qdrant.New()
	if err != nil {
		log.Fatalf("Failed to initialise Qdrant client: %v", err)
	}
	defer idx.Close()

	embedder := retrieval.NewOpenAIEmbedder(envCfg.Embedding, sink)
	retriever := retrieval.NewRetriever(idx, embedder)

	var cache retrieval.PayloadCache
	if envCfg.ProductCache.Enabled {
		var redisCfg pkgredis.Config
		if err := envconfig.Process("redis", &redisCfg); err != nil {
			log.Fatalf("Failed to process redis config: %v", err)
		}
		ttl, err := time.ParseDuration(envCfg.ProductCache.TTL)
		if err != nil {
			log.Fatalf("Invalid PRODUCT_CACHE_TTL '%s': %v", envCfg.ProductCache.TTL, err)
		}
		rdb, err := redisCfg.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		cache = repo.NewRedisProductCache(rdb, ttl)
	}
	resolver := retrieval.NewResolver(idx, cache)

	client, err := llm.NewGeminiClient(ctx, llm.Config{
		APIKey:     envCfg.APIKey,
		BaseURL:    envCfg.BaseURL,
		Router:     envCfg.Router,
		Agent:      envCfg.Agent,
		Generation: envCfg.Generation,
	}, sink)
	if err != nil {
		log.Fatalf("Failed to initialise LLM client: %v", err)
	}

	registry := tools.NewRegistry(tools.NewContextTool(retriever))
	answerer, err := orchestrator.NewAnsweringAgent(client, registry)
	if err != nil {
		log.Fatalf("Failed to build answering agent: %v", err)
	}
	agent := orchestrator.New(orchestrator.NewIntentRouter(client), answerer, registry)

	pipeline := retrieval.NewPipeline(retriever, client, resolver, envCfg.Retrieval.TopK)

	handler := api.NewHandler(agent, resolver, pipeline)
	engine := api.NewRouter(handler)

	logx.Info().Str("addr", envCfg.HTTPAddr).Str("environment", env.String()).Msg("starting server")
	if err := engine.Run(envCfg.HTTPAddr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
