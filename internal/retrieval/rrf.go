package retrieval

import (
	"sort"

	"github.com/Shoply-rag-poc-v1/server/internal/index"
)

// rrfConstant is the conventional reciprocal rank fusion damping constant.
const rrfConstant = 60

// rrfFuse merges ranked candidate lists with Reciprocal Rank Fusion: each
// item scores the sum of 1/(rank+c) over the lists it appears in, rank being
// the 1-based position. Item metadata is taken from the first list that
// carries it. Ties break on id so output order is deterministic.
func rrfFuse(lists [][]index.Hit, c int) []index.Hit {
	if c <= 0 {
		c = rrfConstant
	}

	type agg struct {
		hit   index.Hit
		score float64
	}
	scores := map[string]*agg{}

	for _, list := range lists {
		for i, hit := range list {
			if hit.ID == "" {
				continue
			}
			entry, ok := scores[hit.ID]
			if !ok {
				entry = &agg{hit: hit}
				scores[hit.ID] = entry
			}
			rank := float64(i + 1)
			entry.score += 1.0 / (rank + float64(c))
		}
	}

	out := make([]index.Hit, 0, len(scores))
	for _, entry := range scores {
		fused := entry.hit
		fused.Score = float32(entry.score)
		out = append(out, fused)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}
