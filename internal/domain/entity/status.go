package entity

// TransactionStatus is the buyer-facing lifecycle of a transaction
type TransactionStatus string

// TransactionStatus values
const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionConfirmed TransactionStatus = "CONFIRMED"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
	TransactionRefunded  TransactionStatus = "REFUNDED"
)

// PaymentStatus tracks the buyer's payment at the processor
type PaymentStatus string

// PaymentStatus values
const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// TransferStatus tracks the seller payout transfer
type TransferStatus string

// TransferStatus values
const (
	TransferPending    TransferStatus = "PENDING"
	TransferProcessing TransferStatus = "PROCESSING"
	TransferSucceeded  TransferStatus = "SUCCEEDED"
	TransferFailed     TransferStatus = "FAILED"
)

// statusMachine describes one field of the status triad: the forward ordering,
// the exception terminals reachable before the final ordered state, and the
// exceptions still reachable once the final ordered state is reached.
type statusMachine struct {
	order      []string
	exceptions []string
	afterFinal []string
}

var machines = map[Field]statusMachine{
	FieldTransactionStatus: {
		order:      []string{string(TransactionPending), string(TransactionConfirmed), string(TransactionCompleted)},
		exceptions: []string{string(TransactionCancelled), string(TransactionRefunded)},
		afterFinal: []string{string(TransactionRefunded)},
	},
	FieldPaymentStatus: {
		order:      []string{string(PaymentPending), string(PaymentProcessing), string(PaymentSucceeded)},
		exceptions: []string{string(PaymentFailed), string(PaymentRefunded)},
		afterFinal: []string{string(PaymentRefunded)},
	},
	FieldTransferStatus: {
		order:      []string{string(TransferPending), string(TransferProcessing), string(TransferSucceeded)},
		exceptions: []string{string(TransferFailed)},
		afterFinal: []string{string(TransferFailed)},
	},
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

// IsValidStatus reports whether value is a known state of the field's machine
func IsValidStatus(f Field, value string) bool {
	m, ok := machines[f]
	if !ok {
		return false
	}
	return indexOf(m.order, value) >= 0 || indexOf(m.exceptions, value) >= 0
}

// CanTransition reports whether a status field may move from -> to.
// Equal values are not a transition and return false.
func CanTransition(f Field, from, to string) bool {
	m, ok := machines[f]
	if !ok || from == to || !IsValidStatus(f, to) {
		return false
	}
	if indexOf(m.exceptions, from) >= 0 {
		return false
	}
	fromIdx := indexOf(m.order, from)
	if fromIdx < 0 {
		return false
	}
	if indexOf(m.exceptions, to) >= 0 {
		if fromIdx == len(m.order)-1 {
			return indexOf(m.afterFinal, to) >= 0
		}
		return true
	}
	return indexOf(m.order, to) > fromIdx
}
