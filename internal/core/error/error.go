package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure by the pipeline stage it came from.
type Kind string

const (
	KindRetrieval        Kind = "retrieval"
	KindCompletion       Kind = "completion"
	KindSchemaValidation Kind = "schema_validation"
	KindResolution       Kind = "resolution"
	KindRedis            Kind = "redis"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RetrievalErrorMessage describes index or embedding transport failures.
	RetrievalErrorMessage = "context retrieval failed"
	// CompletionErrorMessage describes completion service transport failures.
	CompletionErrorMessage = "completion request failed"
	// SchemaErrorMessage describes model output that never matched the declared schema.
	SchemaErrorMessage = "model output did not match expected schema"
	// ResolutionErrorMessage describes citation lookup transport failures.
	ResolutionErrorMessage = "citation resolution failed"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
)

// AppError wraps an underlying error with an HTTP status, a safe message and a kind.
type AppError struct {
	Err     error
	Status  int
	Message string
	Kind    Kind
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// NewKind creates a new AppError tagged with a pipeline kind.
func NewKind(err error, status int, message string, kind Kind) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
		Kind:    kind,
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}

// StatusOf extracts the HTTP status of an error chain, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
