package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"ListingNotFound", ErrListingNotFound, CodeListingNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, CodeTxnNotFound},
		{"GenericNotFound", ErrNotFound, CodeNotFound},
		{"ListingNotAvailable", ErrListingNotAvailable, CodeInvalidState},
		{"AlreadyPurchased", ErrAlreadyPurchased, CodeConflict},
		{"Signature", NewSignatureError("payment", "no match"), CodeSignatureInvalid},
		{"Configuration", NewConfigurationError(7, time.Now()), CodeConfiguration},
		{"Processor", NewProcessorError("create session", errors.New("boom")), CodeExternalProcessor},
		{"DatabaseConnection", ErrDatabaseConnection, CodePersistence},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrListingNotFound), CodeListingNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrListingNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrListingNotAvailable))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrAlreadyPurchased))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewSignatureError("connect", "stale")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(NewProcessorError("op", errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewConfigurationError(1, time.Now())))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("other")))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrTransactionNotFound))
	assert.Equal(t, KindConfiguration, KindOf(NewConfigurationError(1, time.Now())))
	assert.Equal(t, KindExternalProcessor, KindOf(NewProcessorError("op", errors.New("x"))))
	assert.Equal(t, KindPersistence, KindOf(NewPersistenceError("apply", 3, errors.New("x"))))
	assert.Equal(t, KindPersistence, KindOf(ErrLockContention))
	assert.Equal(t, KindInternal, KindOf(errors.New("x")))
}

func TestProcessorError(t *testing.T) {
	base := errors.New("card_declined")
	err := NewProcessorError("create checkout session", base)

	assert.Equal(t, "payment processor create checkout session failed: card_declined", err.Error())
	assert.ErrorIs(t, err, ErrExternalProcessor)
	assert.ErrorIs(t, err, base)
	assert.True(t, IsProcessorError(err))

	var perr *ProcessorError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "create checkout session", perr.LogFields()["operation"])
}

func TestPersistenceError(t *testing.T) {
	err := NewPersistenceError("apply changes", 42, ErrLockContention)

	assert.Equal(t, "persistence failure during apply changes (transaction: 42): persistence error: lock contention", err.Error())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.True(t, IsLockContention(err))
}

func TestConfigurationError(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	err := NewConfigurationError(9, at)

	assert.Equal(t, "no take rate configured for seller 9 at 2024-05-01T10:00:00Z", err.Error())
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.False(t, IsNotFoundError(err))
}

func TestSignatureError(t *testing.T) {
	err := NewSignatureError("transfer", "timestamp outside tolerance")

	assert.True(t, IsSignatureError(err))
	assert.Equal(t, "webhook signature invalid on transfer channel: timestamp outside tolerance", err.Error())
}

func TestErrorHelperFunctions(t *testing.T) {
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrProfileNotFound)))
	assert.True(t, IsConflictError(ErrAlreadyPurchased))
	assert.False(t, IsConflictError(ErrListingNotAvailable))
}
