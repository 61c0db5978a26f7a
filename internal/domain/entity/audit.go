package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
)

// TransactionAuditLog is one append-only row per observed field mutation
type TransactionAuditLog struct {
	ID            uint64
	TransactionID uint64
	FieldName     Field
	OldValue      string
	NewValue      string
	ChangedBy     Actor
	Channel       Channel
	CreatedAt     time.Time
}

// NewAuditLogs builds one audit row per effective change
func NewAuditLogs(transactionID uint64, changes []FieldChange, actor Actor, channel Channel, at time.Time) []*TransactionAuditLog {
	logs := make([]*TransactionAuditLog, 0, len(changes))
	for _, c := range changes {
		logs = append(logs, &TransactionAuditLog{
			TransactionID: transactionID,
			FieldName:     c.Field,
			OldValue:      c.OldValue,
			NewValue:      c.NewValue,
			ChangedBy:     actor,
			Channel:       channel,
			CreatedAt:     at,
		})
	}
	return logs
}

// TransactionErrorLog records a processing failure for operational diagnosis
type TransactionErrorLog struct {
	ID            uint64
	TransactionID *uint64 // nil when the failure happened before correlation
	ErrorType     errs.Kind
	Message       string
	Context       map[string]any
	CreatedAt     time.Time
}
