package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransaction(t *testing.T) *Transaction {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	split, err := SplitFee(10000, decimal.NewFromInt(10))
	require.NoError(t, err)

	tx, err := NewTransaction(7, 42, 99, split, mockTime)
	require.NoError(t, err)
	tx.ID = 1
	return tx
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		split := FeeSplit{Total: 10000, PlatformFee: 1000, SellerAmount: 9000}

		tx, err := NewTransaction(7, 42, 99, split, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), tx.ListingID)
		assert.Equal(t, uint64(42), tx.BuyerUserID)
		assert.Equal(t, uint64(99), tx.SellerUserID)
		assert.Equal(t, int64(10000), tx.TotalAmount)
		assert.Equal(t, int64(1000), tx.PlatformFee)
		assert.Equal(t, int64(9000), tx.SellerAmount)
		assert.Equal(t, TransactionPending, tx.TransactionStatus)
		assert.Equal(t, PaymentPending, tx.PaymentStatus)
		assert.Equal(t, TransferPending, tx.TransferStatus)
		assert.Empty(t, tx.ExternalSessionID)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, fixedTime, tx.UpdatedAt)
	})

	t.Run("Missing listing", func(t *testing.T) {
		tx, err := NewTransaction(0, 42, 99, FeeSplit{Total: 100, SellerAmount: 100}, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, tx)
	})

	t.Run("Broken split", func(t *testing.T) {
		tx, err := NewTransaction(7, 42, 99, FeeSplit{Total: 100, PlatformFee: 10, SellerAmount: 80}, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, tx)
	})
}

func TestTransactionApply(t *testing.T) {
	later := time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC)

	t.Run("Checkout completion fills ids and moves status", func(t *testing.T) {
		tx := newPendingTransaction(t)

		applied, skipped := tx.Apply(Changes{
			FieldExternalPaymentIntentID: "pi_1",
			FieldExternalChargeID:        "ch_1",
			FieldTransactionStatus:       string(TransactionCompleted),
		}, later)

		assert.Empty(t, skipped)
		require.Len(t, applied, 3)
		assert.Equal(t, FieldExternalPaymentIntentID, applied[0].Field)
		assert.Equal(t, FieldExternalChargeID, applied[1].Field)
		assert.Equal(t, FieldChange{
			Field: FieldTransactionStatus, OldValue: "PENDING", NewValue: "COMPLETED",
		}, applied[2])
		assert.Equal(t, TransactionCompleted, tx.TransactionStatus)
		assert.Equal(t, later, tx.UpdatedAt)
	})

	t.Run("Replaying the same changes is a no-op", func(t *testing.T) {
		tx := newPendingTransaction(t)
		changes := Changes{
			FieldExternalChargeID: "ch_1",
			FieldPaymentStatus:    string(PaymentSucceeded),
		}
		_, _ = tx.Apply(changes, later)
		snapshot := *tx

		applied, skipped := tx.Apply(changes, later.Add(time.Minute))

		assert.Empty(t, applied)
		assert.Empty(t, skipped)
		assert.Equal(t, snapshot, *tx)
	})

	t.Run("Status regression is skipped", func(t *testing.T) {
		tx := newPendingTransaction(t)
		tx.TransactionStatus = TransactionCompleted

		applied, skipped := tx.Apply(Changes{FieldTransactionStatus: string(TransactionConfirmed)}, later)

		assert.Empty(t, applied)
		require.Len(t, skipped, 1)
		assert.Equal(t, "COMPLETED", skipped[0].Current)
		assert.Equal(t, "CONFIRMED", skipped[0].Requested)
		assert.Equal(t, TransactionCompleted, tx.TransactionStatus)
	})

	t.Run("External identifiers are never overwritten", func(t *testing.T) {
		tx := newPendingTransaction(t)
		tx.ExternalChargeID = "ch_original"

		applied, skipped := tx.Apply(Changes{FieldExternalChargeID: "ch_other"}, later)

		assert.Empty(t, applied)
		require.Len(t, skipped, 1)
		assert.Equal(t, "ch_original", tx.ExternalChargeID)
	})

	t.Run("Empty requested values are ignored", func(t *testing.T) {
		tx := newPendingTransaction(t)
		before := tx.UpdatedAt

		applied, skipped := tx.Apply(Changes{FieldExternalChargeID: ""}, later)

		assert.Empty(t, applied)
		assert.Empty(t, skipped)
		assert.Equal(t, before, tx.UpdatedAt)
	})
}

func TestNewAuditLogs(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC)
	changes := []FieldChange{
		{Field: FieldTransactionStatus, OldValue: "PENDING", NewValue: "COMPLETED"},
		{Field: FieldPaymentStatus, OldValue: "PENDING", NewValue: "SUCCEEDED"},
	}

	logs := NewAuditLogs(5, changes, ActorWebhook, ChannelPayment, at)

	require.Len(t, logs, 2)
	for i, l := range logs {
		assert.Equal(t, uint64(5), l.TransactionID)
		assert.Equal(t, changes[i].Field, l.FieldName)
		assert.Equal(t, changes[i].OldValue, l.OldValue)
		assert.Equal(t, changes[i].NewValue, l.NewValue)
		assert.Equal(t, ActorWebhook, l.ChangedBy)
		assert.Equal(t, ChannelPayment, l.Channel)
		assert.Equal(t, at, l.CreatedAt)
	}
}
