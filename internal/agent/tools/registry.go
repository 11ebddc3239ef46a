package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// Tool bundles a declared tool with its handler and argument sanitizer.
type Tool struct {
	Info     *schema.ToolInfo
	Run      func(ctx context.Context, args map[string]any) (string, error)
	Sanitize func(args map[string]any) map[string]any
}

// Registry holds the fixed tool catalog for a run and dispatches calls by name.
type Registry struct {
	tools map[string]*Tool
	order []string
}

func NewRegistry(ts ...*Tool) *Registry {
	r := &Registry{tools: make(map[string]*Tool, len(ts))}
	for _, t := range ts {
		if t == nil || t.Info == nil {
			continue
		}
		if _, exists := r.tools[t.Info.Name]; exists {
			continue
		}
		r.tools[t.Info.Name] = t
		r.order = append(r.order, t.Info.Name)
	}
	return r
}

// Infos returns the tool declarations in registration order.
func (r *Registry) Infos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.tools[name].Info)
	}
	return infos
}

// Describe renders the catalog into the textual form embedded in the agent
// system prompt: one block per tool with name, description and JSON schema.
func (r *Registry) Describe() (string, error) {
	var b strings.Builder
	for _, name := range r.order {
		info := r.tools[name].Info
		params, err := info.ParamsOneOf.ToOpenAPIV3()
		if err != nil {
			return "", fmt.Errorf("tool %s params: %w", name, err)
		}
		schemaJSON, err := json.Marshal(params)
		if err != nil {
			return "", fmt.Errorf("tool %s schema: %w", name, err)
		}
		fmt.Fprintf(&b, "- name: %s\n  description: %s\n  parameters: %s\n", name, info.Desc, schemaJSON)
	}
	return b.String(), nil
}

// Execute dispatches one requested tool call. Unknown or hallucinated tool
// names return a compact structured fallback the model can work with instead
// of failing the run; transport failures inside a tool propagate.
func (r *Registry) Execute(ctx context.Context, call model.ToolCall) (string, error) {
	t, ok := r.tools[call.Name]
	if !ok {
		logx.Warn().
			Str("tool_name", call.Name).
			Msg("Unknown or invalid tool call; returning fallback result")
		return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", call.Name), nil
	}

	args := call.Arguments
	if t.Sanitize != nil {
		args = t.Sanitize(args)
	}

	out, err := t.Run(ctx, args)
	if err != nil {
		return "", err
	}
	return out, nil
}
