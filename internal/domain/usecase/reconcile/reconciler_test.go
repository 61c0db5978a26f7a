package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	coremocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/persistence"
	publishermocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/publisher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC)

type fixture struct {
	uow       *persistencemocks.MockUnitOfWork
	txnRepo   *persistencemocks.MockTransactionRepository
	auditRepo *persistencemocks.MockAuditLogRepository
	errorRepo *persistencemocks.MockErrorLogRepository
	publisher *publishermocks.MockEventPublisher
	logger    *coremocks.MockLogger
	time      *coremocks.MockTimeProvider
}

func newFixture(t *testing.T) (*Reconciler, *fixture) {
	f := &fixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		txnRepo:   persistencemocks.NewMockTransactionRepository(t),
		auditRepo: persistencemocks.NewMockAuditLogRepository(t),
		errorRepo: persistencemocks.NewMockErrorLogRepository(t),
		publisher: publishermocks.NewMockEventPublisher(t),
		logger:    coremocks.NewMockLogger(t),
		time:      coremocks.NewMockTimeProvider(t),
	}

	f.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txnRepo).Maybe()
	f.uow.EXPECT().GetAuditLogRepository(mock.Anything).Return(f.auditRepo).Maybe()
	f.uow.EXPECT().GetErrorLogRepository(mock.Anything).Return(f.errorRepo).Maybe()
	f.time.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	writer := errorlog.NewWriter(f.uow, f.time, f.logger)
	return NewReconciler(f.uow, writer, f.publisher, f.time, f.logger), f
}

func pendingTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:                1,
		ListingID:         7,
		BuyerUserID:       42,
		SellerUserID:      99,
		TotalAmount:       10000,
		PlatformFee:       1000,
		SellerAmount:      9000,
		ExternalSessionID: "cs_1",
		TransactionStatus: entity.TransactionPending,
		PaymentStatus:     entity.PaymentPending,
		TransferStatus:    entity.TransferPending,
	}
}

func TestApplyWritesChangesAndAuditRows(t *testing.T) {
	reconciler, f := newFixture(t)
	txn := pendingTransaction()

	var audit []*entity.TransactionAuditLog
	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(txn, nil).Once()
	f.txnRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
	f.auditRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, logs []*entity.TransactionAuditLog) { audit = logs }).
		Return(nil).Once()
	f.publisher.EXPECT().PublishTransactionChanged(mock.Anything, mock.MatchedBy(func(e publisher.TransactionChanged) bool {
		return e.TransactionID == 1 && e.TransactionStatus == "COMPLETED" && len(e.Changes) == 2
	})).Return(nil).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 1,
		Changes: entity.Changes{
			entity.FieldExternalPaymentIntentID: "pi_1",
			entity.FieldTransactionStatus:       string(entity.TransactionCompleted),
		},
		Actor:   entity.ActorWebhook,
		Channel: entity.ChannelPayment,
		Source:  "evt_1",
	})

	require.NoError(t, err)
	assert.True(t, result.Changed())
	assert.Equal(t, fixedTime, txn.UpdatedAt)

	// One audit row per changed field
	require.Len(t, audit, 2)
	assert.Equal(t, entity.FieldExternalPaymentIntentID, audit[0].FieldName)
	assert.Equal(t, entity.FieldTransactionStatus, audit[1].FieldName)
	assert.Equal(t, "PENDING", audit[1].OldValue)
	assert.Equal(t, "COMPLETED", audit[1].NewValue)
	assert.Equal(t, entity.ActorWebhook, audit[1].ChangedBy)
	assert.Equal(t, entity.ChannelPayment, audit[1].Channel)
}

func TestApplyAlreadyAtTargetWritesNothing(t *testing.T) {
	reconciler, f := newFixture(t)
	txn := pendingTransaction()
	txn.TransactionStatus = entity.TransactionCompleted
	txn.ExternalPaymentIntentID = "pi_1"

	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(txn, nil).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 1,
		Changes: entity.Changes{
			entity.FieldExternalPaymentIntentID: "pi_1",
			entity.FieldTransactionStatus:       string(entity.TransactionCompleted),
		},
		Actor: entity.ActorWebhook,
	})

	require.NoError(t, err)
	assert.False(t, result.Changed())
	f.txnRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.auditRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishTransactionChanged", mock.Anything, mock.Anything)
}

func TestApplySkipsRegressionWithoutAudit(t *testing.T) {
	reconciler, f := newFixture(t)
	txn := pendingTransaction()
	txn.PaymentStatus = entity.PaymentSucceeded

	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(txn, nil).Once()
	f.logger.EXPECT().Warn("Transaction change skipped", mock.Anything).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 1,
		Changes:       entity.Changes{entity.FieldPaymentStatus: string(entity.PaymentProcessing)},
		Actor:         entity.ActorWebhook,
	})

	require.NoError(t, err)
	assert.False(t, result.Changed())
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, entity.PaymentSucceeded, txn.PaymentStatus)
}

func TestApplyMissingTransaction(t *testing.T) {
	reconciler, f := newFixture(t)

	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(404)).
		Return(nil, errs.ErrTransactionNotFound).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 404,
		Changes:       entity.Changes{entity.FieldPaymentStatus: string(entity.PaymentSucceeded)},
		Actor:         entity.ActorWebhook,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	f.errorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplyRollsBackAndRecordsPersistenceFailure(t *testing.T) {
	reconciler, f := newFixture(t)
	txn := pendingTransaction()
	auditErr := errors.New("relation transaction_audit_logs does not exist")

	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(txn, nil).Once()
	f.txnRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
	f.auditRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(auditErr).Once()
	f.errorRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.ErrorType == errs.KindPersistence &&
			log.TransactionID != nil && *log.TransactionID == 1 &&
			log.Context["source"] == "evt_9"
	})).Return(nil).Once()
	f.logger.EXPECT().Warn("Transaction error recorded", mock.Anything).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 1,
		Changes:       entity.Changes{entity.FieldPaymentStatus: string(entity.PaymentSucceeded)},
		Actor:         entity.ActorWebhook,
		Source:        "evt_9",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	assert.ErrorIs(t, err, auditErr)
	f.publisher.AssertNotCalled(t, "PublishTransactionChanged", mock.Anything, mock.Anything)
}

func TestApplyPublishFailureIsNotFatal(t *testing.T) {
	reconciler, f := newFixture(t)
	txn := pendingTransaction()

	f.txnRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(txn, nil).Once()
	f.txnRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
	f.auditRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishTransactionChanged(mock.Anything, mock.Anything).
		Return(errors.New("channel closed")).Once()
	f.logger.EXPECT().Warn("Failed to publish transaction change", mock.Anything).Once()

	result, err := reconciler.Apply(context.Background(), Request{
		TransactionID: 1,
		Changes:       entity.Changes{entity.FieldTransferStatus: string(entity.TransferSucceeded)},
		Actor:         entity.ActorWebhook,
	})

	require.NoError(t, err)
	assert.True(t, result.Changed())
}
