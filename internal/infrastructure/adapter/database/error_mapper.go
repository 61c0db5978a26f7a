package database

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised by transaction control statements to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error, annotated with the failed operation.
// Errors already in the domain taxonomy pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	return fmt.Errorf("%s: %w", operation, m.classifier.ToDomain(err, errs.ErrNotFound))
}

// IsRetryable reports whether a transaction that failed with err can be re-run
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, errs.ErrLockContention) || m.classifier.IsLockError(err)
}
