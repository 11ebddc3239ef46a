package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorChain(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	wrapped := WrapRetrieval(base)

	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), RetrievalErrorMessage)
	assert.Contains(t, wrapped.Error(), "connection refused")

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, KindRetrieval, appErr.Kind)
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("agent turn: %w", WrapSchema(errors.New("unexpected token")))

	assert.True(t, IsKind(err, KindSchemaValidation))
	assert.False(t, IsKind(err, KindCompletion))
	assert.False(t, IsKind(errors.New("plain"), KindSchemaValidation))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusOf(WrapCompletion(errors.New("x"))))
	assert.Equal(t, http.StatusNotFound, StatusOf(WrapRedis(redis.Nil)))
	assert.Equal(t, http.StatusBadGateway, StatusOf(WrapRedis(errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("untyped")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(fmt.Errorf("wrapped: %w", errors.New("untyped"))))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, WrapRetrieval(nil))
	assert.Nil(t, WrapCompletion(nil))
	assert.Nil(t, WrapSchema(nil))
	assert.Nil(t, WrapResolution(nil))
	assert.Nil(t, WrapRedis(nil))
}
