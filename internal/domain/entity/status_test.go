package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		from  string
		to    string
		want  bool
	}{
		{"pending to confirmed", FieldTransactionStatus, "PENDING", "CONFIRMED", true},
		{"pending to completed skips a step", FieldTransactionStatus, "PENDING", "COMPLETED", true},
		{"completed back to pending", FieldTransactionStatus, "COMPLETED", "PENDING", false},
		{"completed to confirmed", FieldTransactionStatus, "COMPLETED", "CONFIRMED", false},
		{"same value", FieldTransactionStatus, "PENDING", "PENDING", false},
		{"pending to cancelled", FieldTransactionStatus, "PENDING", "CANCELLED", true},
		{"completed to refunded", FieldTransactionStatus, "COMPLETED", "REFUNDED", true},
		{"completed to cancelled", FieldTransactionStatus, "COMPLETED", "CANCELLED", false},
		{"cancelled is terminal", FieldTransactionStatus, "CANCELLED", "COMPLETED", false},
		{"refunded is terminal", FieldTransactionStatus, "REFUNDED", "CANCELLED", false},
		{"unknown target", FieldTransactionStatus, "PENDING", "SHIPPED", false},
		{"payment processing to succeeded", FieldPaymentStatus, "PROCESSING", "SUCCEEDED", true},
		{"payment succeeded to failed", FieldPaymentStatus, "SUCCEEDED", "FAILED", false},
		{"payment pending to failed", FieldPaymentStatus, "PENDING", "FAILED", true},
		{"payment succeeded to refunded", FieldPaymentStatus, "SUCCEEDED", "REFUNDED", true},
		{"transfer succeeded to processing", FieldTransferStatus, "SUCCEEDED", "PROCESSING", false},
		{"transfer succeeded to failed", FieldTransferStatus, "SUCCEEDED", "FAILED", true},
		{"transfer failed is terminal", FieldTransferStatus, "FAILED", "SUCCEEDED", false},
		{"not a status field", FieldExternalChargeID, "", "ch_1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.field, tt.from, tt.to))
		})
	}
}

// Any sequence of requested statuses leaves the field at a value reachable
// without ever moving backwards.
func TestStatusNeverRegresses(t *testing.T) {
	rank := map[string]int{"PENDING": 0, "CONFIRMED": 1, "COMPLETED": 2}
	sequences := [][]string{
		{"COMPLETED", "CONFIRMED", "PENDING"},
		{"CONFIRMED", "PENDING", "COMPLETED", "CONFIRMED"},
		{"PENDING", "COMPLETED", "COMPLETED"},
	}

	for _, seq := range sequences {
		tx := &Transaction{TransactionStatus: TransactionPending}
		highest := 0
		for _, next := range seq {
			tx.Apply(Changes{FieldTransactionStatus: next}, tx.UpdatedAt)
			current := rank[string(tx.TransactionStatus)]
			assert.GreaterOrEqual(t, current, highest, "sequence %v", seq)
			highest = current
		}
		assert.Equal(t, TransactionCompleted, tx.TransactionStatus)
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(FieldPaymentStatus, "REFUNDED"))
	assert.False(t, IsValidStatus(FieldTransferStatus, "REFUNDED"))
	assert.False(t, IsValidStatus(FieldExternalSessionID, "PENDING"))
}
