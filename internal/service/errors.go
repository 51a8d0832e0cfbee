package service

import (
	"fmt"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/repository"
)

// ErrNotFound reports that a referenced client, credit or payment does
// not exist. Repository lookups already wrap this sentinel, so it crosses
// the service boundary unchanged.
var ErrNotFound = repository.ErrNotFound

// ValidationError reports malformed input at an operation boundary. The
// operation is aborted with no partial write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
