package model

// ================ Config ================

type RouterModelConfig struct {
	Model       string  `envconfig:"ROUTER_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"ROUTER_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"ROUTER_TEMPERATURE" default:"0.5"`
}

type AgentModelConfig struct {
	Model       string  `envconfig:"AGENT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"AGENT_MAX_TOKENS" default:"4000"`
	Temperature float32 `envconfig:"AGENT_TEMPERATURE" default:"0.5"`
}

type GenerationModelConfig struct {
	Model       string  `envconfig:"GENERATION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"GENERATION_MAX_TOKENS" default:"4000"`
	Temperature float32 `envconfig:"GENERATION_TEMPERATURE" default:"0.5"`
}

type RetrievalConfig struct {
	TopK int `envconfig:"RETRIEVAL_TOP_K" default:"5"`
}

type ProductCacheConfig struct {
	Enabled bool   `envconfig:"PRODUCT_CACHE_ENABLED" default:"false"`
	TTL     string `envconfig:"PRODUCT_CACHE_TTL" default:"1h"`
}
