package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// sanitizeContextArgs best-effort normalizes the retrieval tool's arguments;
// it never fails hard, malformed optional fields are dropped instead.
func sanitizeContextArgs(args map[string]any) map[string]any {
	if args == nil {
		return map[string]any{}
	}

	// query: string (required)
	if v, ok := args["query"]; ok {
		switch vv := v.(type) {
		case string:
			args["query"] = strings.TrimSpace(vv)
		default:
			// coerce non-string to string
			args["query"] = strings.TrimSpace(fmt.Sprint(v))
		}
	}

	// top_k: number (optional)
	if v, ok := args["top_k"]; ok {
		switch vv := v.(type) {
		case float64:
			// JSON numbers decode as float64
			args["top_k"] = clampInt(int(vv), 1, maxTopK)
		case int:
			args["top_k"] = clampInt(vv, 1, maxTopK)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
				args["top_k"] = clampInt(n, 1, maxTopK)
			} else {
				delete(args, "top_k")
			}
		default:
			delete(args, "top_k")
		}
	}

	return args
}

// clampInt returns v limited to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
