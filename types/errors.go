package types

import "errors"

// ErrorKind classifies where in the pipeline an error originated.
type ErrorKind string

const (
	ErrKindUnsupportedFormat ErrorKind = "UNSUPPORTED_FORMAT"
	ErrKindDocumentParse     ErrorKind = "DOCUMENT_PARSE_ERROR"
	ErrKindEmbedding         ErrorKind = "EMBEDDING_ERROR"
	ErrKindIndex             ErrorKind = "INDEX_ERROR"
	ErrKindGeneration        ErrorKind = "GENERATION_ERROR"
	ErrKindSynthesis         ErrorKind = "SYNTHESIS_ERROR"
	ErrKindUnknown           ErrorKind = "UNKNOWN"
)

// AppError is a typed pipeline error carrying its origin kind. Handlers map
// kinds to HTTP status codes at the request boundary.
type AppError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *AppError) WithCause(cause error) *AppError {
	return &AppError{
		Kind:    e.Kind,
		Message: e.Message,
		Cause:   cause,
	}
}

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// KindOf extracts the error kind from err, or ErrKindUnknown if err is not an
// AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrKindUnknown
}
