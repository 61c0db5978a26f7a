package error

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeInvalidState     = 4001
	CodeSignatureInvalid = 4002
	CodeInvalidPayload   = 4003
	CodeUnauthorized     = 4010
	CodeNotFound         = 4040
	CodeListingNotFound  = 4041
	CodeTxnNotFound      = 4042
	CodeProfileNotFound  = 4043
	CodeConflict         = 4090

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeConfiguration     = 5001
	CodeExternalProcessor = 5002
	CodePersistence       = 5003
)

// Kind classifies an error for the transaction error log
type Kind string

// Kind values stored in transaction_error_logs.error_type
const (
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidState      Kind = "INVALID_STATE"
	KindConflict          Kind = "CONFLICT"
	KindConfiguration     Kind = "CONFIGURATION_ERROR"
	KindSignatureInvalid  Kind = "SIGNATURE_INVALID"
	KindInvalidPayload    Kind = "INVALID_PAYLOAD"
	KindExternalProcessor Kind = "EXTERNAL_PROCESSOR_ERROR"
	KindPersistence       Kind = "PERSISTENCE_ERROR"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// Base error types
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrListingNotFound is returned when the referenced listing doesn't exist
	ErrListingNotFound = fmt.Errorf("listing: %w", ErrNotFound)

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = fmt.Errorf("transaction: %w", ErrNotFound)

	// ErrProfileNotFound is returned when a buyer or seller profile doesn't exist
	ErrProfileNotFound = fmt.Errorf("profile: %w", ErrNotFound)

	// ErrInvalidState is returned when an operation is not allowed in the current state
	ErrInvalidState = errors.New("invalid state")

	// ErrListingNotAvailable is returned when a listing is not published
	ErrListingNotAvailable = fmt.Errorf("%w: listing not available", ErrInvalidState)

	// ErrSellerNotPayable is returned when the seller has no connected payout account
	ErrSellerNotPayable = fmt.Errorf("%w: seller cannot accept payments", ErrInvalidState)

	// ErrConflict is returned when the request conflicts with existing data
	ErrConflict = errors.New("conflict")

	// ErrAlreadyPurchased is returned when the buyer already completed a purchase of the listing
	ErrAlreadyPurchased = fmt.Errorf("%w: already purchased", ErrConflict)

	// ErrConfiguration is returned when required business configuration is missing
	ErrConfiguration = errors.New("configuration error")

	// ErrSignatureInvalid is returned when a webhook payload fails authentication
	ErrSignatureInvalid = errors.New("webhook signature invalid")

	// ErrInvalidPayload is returned when an authenticated webhook payload cannot be decoded
	ErrInvalidPayload = errors.New("invalid webhook payload")

	// ErrExternalProcessor is returned when the payment processor rejects or fails a call
	ErrExternalProcessor = errors.New("external processor error")

	// ErrPersistence is returned for database failures
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the caller has no valid identity
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = fmt.Errorf("%w: database connection error", ErrPersistence)

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = fmt.Errorf("%w: database constraint violation", ErrPersistence)

	// ErrDuplicateRecord is returned when a unique index rejects an insert
	ErrDuplicateRecord = fmt.Errorf("%w: duplicate record", ErrPersistence)

	// ErrLockContention is returned on deadlocks and serialization failures
	ErrLockContention = fmt.Errorf("%w: lock contention", ErrPersistence)
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrListingNotFound):
		return CodeListingNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTxnNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrSignatureInvalid):
		return CodeSignatureInvalid
	case errors.Is(err, ErrInvalidPayload):
		return CodeInvalidPayload
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrExternalProcessor):
		return CodeExternalProcessor
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code of synchronous endpoints
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrSignatureInvalid),
		errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrExternalProcessor):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the error-log classification of err
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrSignatureInvalid):
		return KindSignatureInvalid
	case errors.Is(err, ErrInvalidPayload):
		return KindInvalidPayload
	case errors.Is(err, ErrExternalProcessor):
		return KindExternalProcessor
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindInternal
	}
}

// ConfigurationError reports that no fee policy applies to a seller at an instant
type ConfigurationError struct {
	SellerUserID uint64
	At           time.Time
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no take rate configured for seller %d at %s",
		e.SellerUserID, e.At.UTC().Format(time.RFC3339))
}

// Is checks if the target error is an ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// LogFields returns a map of fields for structured logging
func (e *ConfigurationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     string(KindConfiguration),
		"seller_user_id": e.SellerUserID,
		"at":             e.At,
		"error_code":     CodeConfiguration,
	}
}

// NewConfigurationError creates a missing take rate error
func NewConfigurationError(sellerUserID uint64, at time.Time) error {
	return &ConfigurationError{SellerUserID: sellerUserID, At: at}
}

// ProcessorError wraps a failed call to the payment processor
type ProcessorError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrExternalProcessor
func (e *ProcessorError) Is(target error) bool {
	return target == ErrExternalProcessor
}

// LogFields returns a map of fields for structured logging
func (e *ProcessorError) LogFields() map[string]any {
	return map[string]any{
		"error_type": string(KindExternalProcessor),
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeExternalProcessor,
	}
}

// NewProcessorError creates a new payment processor error
func NewProcessorError(operation string, err error) error {
	return &ProcessorError{Operation: operation, Err: err}
}

// PersistenceError wraps a database failure met while mutating a transaction
type PersistenceError struct {
	Operation     string
	TransactionID uint64
	Err           error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s (transaction: %d): %v",
		e.Operation, e.TransactionID, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     string(KindPersistence),
		"operation":      e.Operation,
		"transaction_id": e.TransactionID,
		"error":          e.Err.Error(),
		"error_code":     CodePersistence,
	}
}

// NewPersistenceError creates a detailed persistence error
func NewPersistenceError(operation string, transactionID uint64, err error) error {
	return &PersistenceError{Operation: operation, TransactionID: transactionID, Err: err}
}

// SignatureError explains why a webhook signature was rejected
type SignatureError struct {
	Channel string
	Reason  string
}

// Error implements the error interface
func (e *SignatureError) Error() string {
	return fmt.Sprintf("webhook signature invalid on %s channel: %s", e.Channel, e.Reason)
}

// Is checks if the target error is an ErrSignatureInvalid
func (e *SignatureError) Is(target error) bool {
	return target == ErrSignatureInvalid
}

// LogFields returns a map of fields for structured logging
func (e *SignatureError) LogFields() map[string]any {
	return map[string]any{
		"error_type": string(KindSignatureInvalid),
		"channel":    e.Channel,
		"reason":     e.Reason,
		"error_code": CodeSignatureInvalid,
	}
}

// NewSignatureError creates a new signature verification error
func NewSignatureError(channel, reason string) error {
	return &SignatureError{Channel: channel, Reason: reason}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if the error is a conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsSignatureError checks if the error is a webhook authentication failure
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrSignatureInvalid)
}

// IsProcessorError checks if the error came from the payment processor
func IsProcessorError(err error) bool {
	return errors.Is(err, ErrExternalProcessor)
}

// IsLockContention checks if the error is a retryable locking failure
func IsLockContention(err error) bool {
	return errors.Is(err, ErrLockContention)
}
