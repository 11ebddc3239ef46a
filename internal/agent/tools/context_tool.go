package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/Shoply-rag-poc-v1/server/internal/retrieval"
)

const ToolGetFormattedContext = "get_formatted_context"

const (
	defaultTopK = 5
	maxTopK     = 20
)

// ContextProvider retrieves ranked catalog context for a query.
type ContextProvider interface {
	Retrieve(ctx context.Context, query string, k int) ([]retrieval.RetrievedItem, error)
}

type getFormattedContextInput struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// NewContextTool builds the retrieval tool: hybrid search over the product
// index, formatted into the compact context block the agent prompt expects.
func NewContextTool(provider ContextProvider) *Tool {
	return &Tool{
		Info: &schema.ToolInfo{
			Name: ToolGetFormattedContext,
			Desc: "Retrieve product catalog context relevant to a search query. Returns one line per item with its ID, average rating and description. Use this tool whenever you need catalog information to answer the question.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Product search keywords built from the user's question. Can include product types, features, brands or use cases.",
					Required: true,
				},
				"top_k": {
					Type: "number",
					Desc: fmt.Sprintf("Number of items to retrieve (default: %d, max: %d)", defaultTopK, maxTopK),
				},
			}),
		},
		Sanitize: sanitizeContextArgs,
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var in getFormattedContextInput
			if err := decodeArgs(args, &in); err != nil {
				return "", err
			}
			if in.Query == "" {
				return "", fmt.Errorf("query is required")
			}
			if in.TopK == 0 {
				in.TopK = defaultTopK
			}

			items, err := provider.Retrieve(ctx, in.Query, in.TopK)
			if err != nil {
				return "", err
			}
			return retrieval.FormatContext(items), nil
		},
	}
}

// decodeArgs round-trips loosely typed tool arguments into a typed input.
func decodeArgs(args map[string]any, out any) error {
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal tool arguments: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode tool arguments: %w", err)
	}
	return nil
}
