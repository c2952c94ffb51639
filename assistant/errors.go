package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument is returned by per-document operations invoked before a
	// successful upload.
	ErrNoDocument = errors.New("no document uploaded")
	// ErrEmptyGeneration is returned when the model reply contains no
	// parseable questions at all.
	ErrEmptyGeneration = errors.New("model returned no questions")
)

// ValidationError marks caller mistakes (bad question count, empty inputs,
// unsupported uploads). Handlers translate it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
