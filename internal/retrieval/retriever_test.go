package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoply-rag-poc-v1/server/internal/index"
)

type staticEmbedder struct{ vector []float32 }

func (s staticEmbedder) Embed(context.Context, string) ([]float32, error) {
	return s.vector, nil
}

type hybridFakeIndex struct {
	fakeIndex
	dense   []index.Hit
	lexical []index.Hit

	denseLimit   uint64
	lexicalLimit uint64
}

func (f *hybridFakeIndex) DenseSearch(_ context.Context, _ []float32, limit uint64) ([]index.Hit, error) {
	f.denseLimit = limit
	return f.dense, nil
}

func (f *hybridFakeIndex) LexicalSearch(_ context.Context, _ string, limit uint64) ([]index.Hit, error) {
	f.lexicalLimit = limit
	return f.lexical, nil
}

func TestRetrieveFusesAndTruncates(t *testing.T) {
	idx := &hybridFakeIndex{
		dense:   []index.Hit{{ID: "a", Description: "item a"}, {ID: "b"}, {ID: "c"}},
		lexical: []index.Hit{{ID: "b"}, {ID: "d"}},
	}
	r := NewRetriever(idx, staticEmbedder{vector: []float32{0.1, 0.2}})

	items, err := r.Retrieve(context.Background(), "usb hub", 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// b appears in both lists and wins the fusion
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, uint64(prefetchLimit), idx.denseLimit)
	assert.Equal(t, uint64(prefetchLimit), idx.lexicalLimit)
}

func TestRetrieveKeepsAllWhenUnderK(t *testing.T) {
	idx := &hybridFakeIndex{dense: []index.Hit{{ID: "only"}}}
	r := NewRetriever(idx, staticEmbedder{vector: []float32{1}})

	items, err := r.Retrieve(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
