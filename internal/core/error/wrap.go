package errx

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRetrieval maps embedding or index transport errors to the unified type.
func WrapRetrieval(err error) *AppError {
	if err == nil {
		return nil
	}
	return NewKind(err, http.StatusBadGateway, RetrievalErrorMessage, KindRetrieval)
}

// WrapCompletion maps completion service transport errors to the unified type.
func WrapCompletion(err error) *AppError {
	if err == nil {
		return nil
	}
	return NewKind(err, http.StatusBadGateway, CompletionErrorMessage, KindCompletion)
}

// WrapSchema marks model output that could not be coerced into the declared schema.
func WrapSchema(err error) *AppError {
	if err == nil {
		return nil
	}
	return NewKind(err, http.StatusBadGateway, SchemaErrorMessage, KindSchemaValidation)
}

// WrapResolution maps citation lookup transport errors to the unified type.
func WrapResolution(err error) *AppError {
	if err == nil {
		return nil
	}
	return NewKind(err, http.StatusBadGateway, ResolutionErrorMessage, KindResolution)
}

// WrapRedis maps Redis errors to the unified type with appropriate status codes.
func WrapRedis(err error) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return NewKind(err, http.StatusNotFound, RedisNotFoundMessage, KindRedis)
	}
	return NewKind(err, http.StatusBadGateway, RedisErrorMessage, KindRedis)
}
