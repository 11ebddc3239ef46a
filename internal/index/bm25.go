package index

import (
	"hash/fnv"
	"sort"
	"strings"
	"unicode"
)

// LexicalVector converts query text into the sparse query vector of the
// index's bm25 named vector: lowercase word tokens hashed to 32-bit ids with
// term-frequency weights. IDF weighting is applied server side by the index's
// vector modifier, so raw counts are the correct client-side values.
func LexicalVector(text string) (indices []uint32, values []float32) {
	counts := map[uint32]float32{}
	for _, tok := range tokenize(text) {
		counts[hashToken(tok)]++
	}
	indices = make([]uint32, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	values = make([]float32, len(indices))
	for i, idx := range indices {
		values[i] = counts[idx]
	}
	return indices, values
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func hashToken(tok string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(tok))
	return h.Sum32()
}
