package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoply-rag-poc-v1/server/internal/index"
)

func TestRRFFuseBothListsOutrankOne(t *testing.T) {
	dense := []index.Hit{
		{ID: "only-dense", Description: "dense winner"},
		{ID: "shared", Description: "in both"},
	}
	lexical := []index.Hit{
		{ID: "only-lexical"},
		{ID: "shared"},
	}

	fused := rrfFuse([][]index.Hit{dense, lexical}, rrfConstant)
	require.Len(t, fused, 3)

	// rank 2 in both lists beats rank 1 in a single list:
	// 2/(2+60) > 1/(1+60)
	assert.Equal(t, "shared", fused[0].ID)
}

func TestRRFFuseScores(t *testing.T) {
	lists := [][]index.Hit{
		{{ID: "a"}, {ID: "b"}},
		{{ID: "b"}, {ID: "a"}},
	}

	fused := rrfFuse(lists, 60)
	require.Len(t, fused, 2)

	// both items appear at ranks 1 and 2, so scores tie and order falls
	// back to id
	assert.Equal(t, "a", fused[0].ID)
	assert.Equal(t, "b", fused[1].ID)
	assert.InDelta(t, 1.0/61+1.0/62, float64(fused[0].Score), 1e-6)
	assert.Equal(t, fused[0].Score, fused[1].Score)
}

func TestRRFFuseMetadataFromFirstList(t *testing.T) {
	dense := []index.Hit{{ID: "x", Description: "from dense", Rating: 4.5}}
	lexical := []index.Hit{{ID: "x", Description: "from lexical", Rating: 1.0}}

	fused := rrfFuse([][]index.Hit{dense, lexical}, 60)
	require.Len(t, fused, 1)
	assert.Equal(t, "from dense", fused[0].Description)
	assert.Equal(t, 4.5, fused[0].Rating)
}

func TestRRFFuseEmptyLists(t *testing.T) {
	assert.Empty(t, rrfFuse(nil, 60))
	assert.Empty(t, rrfFuse([][]index.Hit{{}, {}}, 60))
}
