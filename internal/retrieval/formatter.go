package retrieval

import (
	"fmt"
	"strings"
)

// FormatContext renders ranked candidates into the compact block the agent
// prompt consumes, one line per item. Total and deterministic: missing fields
// render as their zero values and an empty input yields an empty string.
func FormatContext(items []RetrievedItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- ID: %s, rating: %g, description: %s\n", item.ID, item.Rating, item.Description)
	}
	return b.String()
}
