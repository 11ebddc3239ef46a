package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/index"
)

type fakeIndex struct {
	payloads  map[string]*index.Payload
	lookupErr error
	lookups   []string
}

func (f *fakeIndex) DenseSearch(context.Context, []float32, uint64) ([]index.Hit, error) {
	return nil, nil
}

func (f *fakeIndex) LexicalSearch(context.Context, string, uint64) ([]index.Hit, error) {
	return nil, nil
}

func (f *fakeIndex) Lookup(_ context.Context, id string) (*index.Payload, error) {
	f.lookups = append(f.lookups, id)
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.payloads[id], nil
}

func ptr(v float64) *float64 { return &v }

func TestResolvePreservesOrderAndDuplicates(t *testing.T) {
	idx := &fakeIndex{payloads: map[string]*index.Payload{
		"A": {Image: "https://img/a.jpg", Price: ptr(19.99)},
		"B": {Image: "https://img/b.jpg"},
	}}
	r := NewResolver(idx, nil)

	refs := []model.Citation{
		{ID: "A", Description: "first pick"},
		{ID: "B", Description: "second pick"},
		{ID: "A", Description: "first pick again"},
	}

	out, err := r.Resolve(context.Background(), refs)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "https://img/a.jpg", out[0].ImageURL)
	assert.Equal(t, "https://img/b.jpg", out[1].ImageURL)
	assert.Equal(t, "https://img/a.jpg", out[2].ImageURL)
	// description comes from the citation, not the stored payload
	assert.Equal(t, "first pick", out[0].Description)
	assert.Equal(t, "first pick again", out[2].Description)
	assert.Equal(t, 19.99, *out[0].Price)
	assert.Nil(t, out[1].Price)
}

func TestResolveDropsMissingAndImageless(t *testing.T) {
	idx := &fakeIndex{payloads: map[string]*index.Payload{
		"has-image": {Image: "https://img/x.jpg"},
		"no-image":  {Description: "text only"},
	}}
	r := NewResolver(idx, nil)

	refs := []model.Citation{
		{ID: "no-image", Description: "dropped"},
		{ID: "unknown", Description: "dropped"},
		{ID: "has-image", Description: "kept"},
	}

	out, err := r.Resolve(context.Background(), refs)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].Description)
}

func TestResolveLookupErrorPropagates(t *testing.T) {
	idx := &fakeIndex{lookupErr: errors.New("connection refused")}
	r := NewResolver(idx, nil)

	out, err := r.Resolve(context.Background(), []model.Citation{{ID: "A"}})
	assert.Error(t, err)
	assert.Nil(t, out)
}

type mapCache struct {
	entries map[string]*index.Payload
	sets    []string
}

func (m *mapCache) Get(_ context.Context, id string) (*index.Payload, bool) {
	p, ok := m.entries[id]
	return p, ok
}

func (m *mapCache) Set(_ context.Context, id string, payload *index.Payload) {
	m.entries[id] = payload
	m.sets = append(m.sets, id)
}

func TestResolveReadsThroughCache(t *testing.T) {
	idx := &fakeIndex{payloads: map[string]*index.Payload{
		"cold": {Image: "https://img/cold.jpg"},
	}}
	cache := &mapCache{entries: map[string]*index.Payload{
		"warm": {Image: "https://img/warm.jpg"},
	}}
	r := NewResolver(idx, cache)

	refs := []model.Citation{{ID: "warm"}, {ID: "cold"}}
	out, err := r.Resolve(context.Background(), refs)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// warm never touches the index; cold is fetched once and cached
	assert.Equal(t, []string{"cold"}, idx.lookups)
	assert.Equal(t, []string{"cold"}, cache.sets)
}
