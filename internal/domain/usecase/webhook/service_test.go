package webhook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/reconcile"
	coremocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/persistence"
	publishermocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/publisher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

const (
	signedHeader = "t=1709287200,v1=5f2b"
	forgedHeader = "t=1709287200,v1=0bad"
)

type fixture struct {
	uow       *persistencemocks.MockUnitOfWork
	txns      *persistencemocks.MockTransactionRepository
	audit     *persistencemocks.MockAuditLogRepository
	errorLogs *persistencemocks.MockErrorLogRepository
	profiles  *persistencemocks.MockProfileRepository
	ledger    *persistencemocks.MockWebhookEventRepository
	verifier  *gatewaymocks.MockSignatureVerifier
	decoder   *gatewaymocks.MockEventDecoder
	gateway   *gatewaymocks.MockPaymentGateway
	publisher *publishermocks.MockEventPublisher
	logger    *coremocks.MockLogger

	// stored mirrors the database row the reconciler locks and updates
	stored     map[uint64]*entity.Transaction
	auditRows  []*entity.TransactionAuditLog
	ledgerRows map[string]*entity.WebhookEvent
	auditErr   error
	readErr    error
}

func newFixture(t *testing.T) (*Service, *fixture) {
	f := &fixture{
		uow:        persistencemocks.NewMockUnitOfWork(t),
		txns:       persistencemocks.NewMockTransactionRepository(t),
		audit:      persistencemocks.NewMockAuditLogRepository(t),
		errorLogs:  persistencemocks.NewMockErrorLogRepository(t),
		profiles:   persistencemocks.NewMockProfileRepository(t),
		ledger:     persistencemocks.NewMockWebhookEventRepository(t),
		verifier:   gatewaymocks.NewMockSignatureVerifier(t),
		decoder:    gatewaymocks.NewMockEventDecoder(t),
		gateway:    gatewaymocks.NewMockPaymentGateway(t),
		publisher:  publishermocks.NewMockEventPublisher(t),
		logger:     coremocks.NewMockLogger(t),
		stored:     map[uint64]*entity.Transaction{},
		ledgerRows: map[string]*entity.WebhookEvent{},
	}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	f.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txns).Maybe()
	f.uow.EXPECT().GetAuditLogRepository(mock.Anything).Return(f.audit).Maybe()
	f.uow.EXPECT().GetErrorLogRepository(mock.Anything).Return(f.errorLogs).Maybe()
	f.uow.EXPECT().GetProfileRepository(mock.Anything).Return(f.profiles).Maybe()
	f.uow.EXPECT().GetWebhookEventRepository(mock.Anything).Return(f.ledger).Maybe()

	f.txns.EXPECT().GetByIDForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uint64) (*entity.Transaction, error) {
			txn, ok := f.stored[id]
			if !ok {
				return nil, errs.ErrTransactionNotFound
			}
			copied := *txn
			return &copied, nil
		}).Maybe()
	f.txns.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uint64) (*entity.Transaction, error) {
			if f.readErr != nil {
				return nil, f.readErr
			}
			txn, ok := f.stored[id]
			if !ok {
				return nil, errs.ErrTransactionNotFound
			}
			copied := *txn
			return &copied, nil
		}).Maybe()
	f.txns.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			copied := *txn
			f.stored[txn.ID] = &copied
			return nil
		}).Maybe()
	f.audit.EXPECT().CreateBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, logs []*entity.TransactionAuditLog) error {
			if f.auditErr != nil {
				return f.auditErr
			}
			f.auditRows = append(f.auditRows, logs...)
			return nil
		}).Maybe()
	f.ledger.EXPECT().GetByEventID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*entity.WebhookEvent, error) {
			if row, ok := f.ledgerRows[id]; ok {
				copied := *row
				return &copied, nil
			}
			return nil, errs.ErrNotFound
		}).Maybe()
	f.ledger.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, row *entity.WebhookEvent) error {
			copied := *row
			f.ledgerRows[row.EventID] = &copied
			return nil
		}).Maybe()
	f.verifier.EXPECT().Verify(mock.Anything, signedHeader, mock.Anything).Return(nil).Maybe()
	f.verifier.EXPECT().Verify(mock.Anything, forgedHeader, mock.Anything).
		RunAndReturn(func(_ []byte, _ string, channel entity.Channel) error {
			return errs.NewSignatureError(string(channel), "no matching signature")
		}).Maybe()
	f.publisher.EXPECT().PublishTransactionChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	writer := errorlog.NewWriter(f.uow, mockTime, f.logger)
	reconciler := reconcile.NewReconciler(f.uow, writer, f.publisher, mockTime, f.logger)
	tracker := onboarding.NewTracker(f.uow, mockTime, f.logger)

	service := NewService(f.verifier, f.decoder, f.gateway, reconciler, tracker, writer, f.uow, mockTime, f.logger)
	return service, f
}

func (f *fixture) seed(txn *entity.Transaction) {
	f.stored[txn.ID] = txn
}

func (f *fixture) deliver(t *testing.T, s *Service, channel entity.Channel, event *gateway.Event) (entity.Outcome, error) {
	t.Helper()
	payload := []byte(`{"id":"` + event.ID + `","type":"` + string(event.Type) + `"}`)
	f.decoder.EXPECT().Decode(payload).Return(event, nil).Once()
	return s.Handle(context.Background(), payload, signedHeader, channel)
}

func (f *fixture) auditFor(field entity.Field) []*entity.TransactionAuditLog {
	var out []*entity.TransactionAuditLog
	for _, row := range f.auditRows {
		if row.FieldName == field {
			out = append(out, row)
		}
	}
	return out
}

func pending(id uint64) *entity.Transaction {
	return &entity.Transaction{
		ID:                id,
		ListingID:         5,
		BuyerUserID:       42,
		SellerUserID:      99,
		TotalAmount:       10000,
		PlatformFee:       1000,
		SellerAmount:      9000,
		ExternalSessionID: "cs_301",
		TransactionStatus: entity.TransactionPending,
		PaymentStatus:     entity.PaymentPending,
		TransferStatus:    entity.TransferPending,
	}
}

func checkoutCompleted(eventID string) *gateway.Event {
	return &gateway.Event{
		ID:   eventID,
		Type: entity.EventCheckoutSessionCompleted,
		Session: &gateway.SessionObject{
			ID:              "cs_301",
			PaymentIntentID: "pi_301",
			Metadata:        map[string]string{gateway.MetadataTransactionID: "301"},
		},
	}
}

func TestCheckoutCompletedCompletesTransaction(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	f.gateway.EXPECT().GetLatestChargeID(mock.Anything, "pi_301").Return("ch_301", nil).Once()

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_1"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)

	txn := f.stored[301]
	assert.Equal(t, entity.TransactionCompleted, txn.TransactionStatus)
	assert.Equal(t, "pi_301", txn.ExternalPaymentIntentID)
	assert.Equal(t, "ch_301", txn.ExternalChargeID)

	statusRows := f.auditFor(entity.FieldTransactionStatus)
	require.Len(t, statusRows, 1)
	assert.Equal(t, "PENDING", statusRows[0].OldValue)
	assert.Equal(t, "COMPLETED", statusRows[0].NewValue)
	assert.Equal(t, entity.ActorWebhook, statusRows[0].ChangedBy)

	require.Contains(t, f.ledgerRows, "evt_1")
	assert.True(t, f.ledgerRows["evt_1"].IsProcessed())
}

func TestCheckoutCompletedRedeliveryIsIdempotent(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	f.gateway.EXPECT().GetLatestChargeID(mock.Anything, "pi_301").Return("ch_301", nil)

	_, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_1"))
	require.NoError(t, err)
	snapshot := *f.stored[301]
	auditCount := len(f.auditRows)

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_1"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Len(t, f.auditRows, auditCount)
	assert.Equal(t, snapshot, *f.stored[301])

	// The processor may resend under a new event id; state comparison alone keeps it a no-op.
	delete(f.ledgerRows, "evt_1")
	outcome, err = f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_1b"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Len(t, f.auditRows, auditCount)
	assert.Equal(t, snapshot, *f.stored[301])
}

func TestPaymentSucceededBeforeCheckoutCompleted(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))

	outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
		ID:   "evt_2",
		Type: entity.EventPaymentIntentSucceeded,
		PaymentIntent: &gateway.PaymentIntentObject{
			ID:             "pi_301",
			LatestChargeID: "ch_301",
			Metadata:       map[string]string{gateway.MetadataTransactionID: "301"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	txn := f.stored[301]
	assert.Equal(t, entity.PaymentSucceeded, txn.PaymentStatus)
	assert.Equal(t, entity.TransferSucceeded, txn.TransferStatus)
	assert.Equal(t, entity.TransactionPending, txn.TransactionStatus)

	// The late checkout completion still completes the transaction without touching payment fields
	outcome, err = f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_3"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	txn = f.stored[301]
	assert.Equal(t, entity.TransactionCompleted, txn.TransactionStatus)
	assert.Equal(t, entity.PaymentSucceeded, txn.PaymentStatus)
	f.gateway.AssertNotCalled(t, "GetLatestChargeID", mock.Anything, mock.Anything)
}

func TestCheckoutCompletedSkipsChargeLookupWhenChargeKnown(t *testing.T) {
	service, f := newFixture(t)
	txn := pending(301)
	txn.ExternalChargeID = "ch_301"
	f.seed(txn)

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_13"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, entity.TransactionCompleted, f.stored[301].TransactionStatus)
	assert.Equal(t, "ch_301", f.stored[301].ExternalChargeID)
	f.gateway.AssertNotCalled(t, "GetLatestChargeID", mock.Anything, mock.Anything)
}

func TestCheckoutCompletedUnknownTransactionSkipsProcessor(t *testing.T) {
	service, f := newFixture(t)

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_14"))

	require.NoError(t, err)
	assert.Equal(t, "transaction not found", outcome.Message)
	f.gateway.AssertNotCalled(t, "GetLatestChargeID", mock.Anything, mock.Anything)
}

func TestHandlerFailureIsRecordedAgainstLocatedTransaction(t *testing.T) {
	service, f := newFixture(t)
	lookupErr := errors.New("read replica unavailable")
	f.seed(pending(301))
	f.readErr = lookupErr
	f.errorLogs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.TransactionID != nil && *log.TransactionID == 301
	})).Return(nil).Once()
	f.logger.EXPECT().Error("Webhook event handling failed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["transaction_id"] == uint64(301)
	})).Once()

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_15"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeError, outcome.Status)
	assert.Equal(t, lookupErr.Error(), outcome.Message)
	f.gateway.AssertNotCalled(t, "GetLatestChargeID", mock.Anything, mock.Anything)
}

func TestSignatureMismatchMutatesNothing(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	payload := []byte(`{"id":"evt_4","type":"checkout.session.completed"}`)

	outcome, err := service.Handle(context.Background(), payload,
		forgedHeader, entity.ChannelPayment)

	assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
	assert.Empty(t, outcome.Status)
	f.decoder.AssertNotCalled(t, "Decode", mock.Anything)
	f.txns.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.errorLogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, entity.TransactionPending, f.stored[301].TransactionStatus)
}

func TestMalformedPayloadIsRejected(t *testing.T) {
	service, f := newFixture(t)
	payload := []byte(`{not json`)
	f.decoder.EXPECT().Decode(payload).Return(nil, errs.ErrInvalidPayload).Once()

	_, err := service.Handle(context.Background(), payload,
		signedHeader, entity.ChannelPayment)

	assert.ErrorIs(t, err, errs.ErrInvalidPayload)
	f.ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUnknownEventTypeIsReceived(t *testing.T) {
	service, f := newFixture(t)

	outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{ID: "evt_5", Type: "invoice.paid"})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeReceived, outcome.Status)
	f.ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEventOnWrongChannelIsReceived(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))

	outcome, err := f.deliver(t, service, entity.ChannelConnect, checkoutCompleted("evt_6"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeReceived, outcome.Status)
	assert.Equal(t, entity.TransactionPending, f.stored[301].TransactionStatus)
}

func TestMissingTransactionIsAcknowledged(t *testing.T) {
	service, f := newFixture(t)
	f.txns.EXPECT().GetByPaymentIntentID(mock.Anything, "pi_unknown").Return(nil, errs.ErrTransactionNotFound).Once()

	outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
		ID:            "evt_7",
		Type:          entity.EventPaymentIntentSucceeded,
		PaymentIntent: &gateway.PaymentIntentObject{ID: "pi_unknown"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, "transaction not found", outcome.Message)
}

func TestCheckoutCompletedFallsBackToSessionID(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	f.txns.EXPECT().GetBySessionID(mock.Anything, "cs_301").Return(f.stored[301], nil).Once()
	f.gateway.EXPECT().GetLatestChargeID(mock.Anything, "pi_301").Return("ch_301", nil).Once()

	event := checkoutCompleted("evt_8")
	event.Session.Metadata = nil

	outcome, err := f.deliver(t, service, entity.ChannelPayment, event)

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, entity.TransactionCompleted, f.stored[301].TransactionStatus)
}

func TestCheckoutCompletedChargeLookupFailureStillCompletes(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	f.gateway.EXPECT().GetLatestChargeID(mock.Anything, "pi_301").Return("", errors.New("rate limited")).Once()
	f.errorLogs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.ErrorType == errs.KindExternalProcessor
	})).Return(nil).Once()

	outcome, err := f.deliver(t, service, entity.ChannelPayment, checkoutCompleted("evt_9"))

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	txn := f.stored[301]
	assert.Equal(t, entity.TransactionCompleted, txn.TransactionStatus)
	assert.Equal(t, "pi_301", txn.ExternalPaymentIntentID)
	assert.Empty(t, txn.ExternalChargeID)
}

func TestReconcileFailureBecomesSoftError(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	f.logger.EXPECT().Error("Webhook event handling failed", mock.Anything).Once()
	f.auditErr = errs.ErrDatabaseConnection
	f.errorLogs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.ErrorType == errs.KindPersistence
	})).Return(nil).Once()

	outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
		ID:   "evt_10",
		Type: entity.EventPaymentIntentPaymentFailed,
		PaymentIntent: &gateway.PaymentIntentObject{
			ID:       "pi_301",
			Metadata: map[string]string{gateway.MetadataTransactionID: "301"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeError, outcome.Status)
	require.Contains(t, f.ledgerRows, "evt_10")
	assert.False(t, f.ledgerRows["evt_10"].IsProcessed())
	assert.NotEmpty(t, f.ledgerRows["evt_10"].ProcessingError)
}

func TestPaymentFailedAfterSuccessIsIgnored(t *testing.T) {
	service, f := newFixture(t)
	txn := pending(301)
	txn.PaymentStatus = entity.PaymentSucceeded
	f.seed(txn)

	outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
		ID:   "evt_11",
		Type: entity.EventPaymentIntentPaymentFailed,
		PaymentIntent: &gateway.PaymentIntentObject{
			Metadata: map[string]string{gateway.MetadataTransactionID: "301"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, entity.PaymentSucceeded, f.stored[301].PaymentStatus)
	assert.Empty(t, f.auditRows)
}

func TestCheckoutExpiredCancels(t *testing.T) {
	service, f := newFixture(t)
	f.seed(pending(301))
	event := checkoutCompleted("evt_12")
	event.Type = entity.EventCheckoutSessionExpired

	_, err := f.deliver(t, service, entity.ChannelPayment, event)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionCancelled, f.stored[301].TransactionStatus)
}

func TestChargeRefunded(t *testing.T) {
	t.Run("Full refund", func(t *testing.T) {
		service, f := newFixture(t)
		txn := pending(301)
		txn.TransactionStatus = entity.TransactionCompleted
		txn.PaymentStatus = entity.PaymentSucceeded
		txn.ExternalChargeID = "ch_301"
		f.seed(txn)
		f.txns.EXPECT().GetByChargeID(mock.Anything, "ch_301").Return(txn, nil).Once()

		outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
			ID:     "evt_13",
			Type:   entity.EventChargeRefunded,
			Charge: &gateway.ChargeObject{ID: "ch_301", PaymentIntentID: "pi_301", Refunded: true},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
		assert.Equal(t, entity.TransactionRefunded, f.stored[301].TransactionStatus)
		assert.Equal(t, entity.PaymentRefunded, f.stored[301].PaymentStatus)
	})

	t.Run("Partial refund", func(t *testing.T) {
		service, f := newFixture(t)

		outcome, err := f.deliver(t, service, entity.ChannelPayment, &gateway.Event{
			ID:     "evt_14",
			Type:   entity.EventChargeRefunded,
			Charge: &gateway.ChargeObject{ID: "ch_301", Refunded: false},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeReceived, outcome.Status)
	})
}

func TestAccountUpdated(t *testing.T) {
	t.Run("Known seller", func(t *testing.T) {
		service, f := newFixture(t)
		profile := &entity.SellerProfile{UserID: 99, ExternalAccountID: "acct_99"}
		f.profiles.EXPECT().GetSellerByAccountID(mock.Anything, "acct_99").Return(profile, nil).Once()
		f.profiles.EXPECT().UpdateSeller(mock.Anything, mock.MatchedBy(func(p *entity.SellerProfile) bool {
			return p.AccountStatus == entity.AccountStatusActive && p.PayoutsEnabled
		})).Return(nil).Once()

		outcome, err := f.deliver(t, service, entity.ChannelConnect, &gateway.Event{
			ID:   "evt_15",
			Type: entity.EventAccountUpdated,
			Account: &entity.AccountState{
				AccountID: "acct_99", DetailsSubmitted: true, ChargesEnabled: true, PayoutsEnabled: true,
			},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
		f.txns.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown seller", func(t *testing.T) {
		service, f := newFixture(t)
		f.profiles.EXPECT().GetSellerByAccountID(mock.Anything, "acct_x").Return(nil, errs.ErrProfileNotFound).Once()

		outcome, err := f.deliver(t, service, entity.ChannelConnect, &gateway.Event{
			ID:      "evt_16",
			Type:    entity.EventAccountUpdated,
			Account: &entity.AccountState{AccountID: "acct_x"},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
		assert.Equal(t, "seller profile not found", outcome.Message)
	})
}

func TestTransferEvents(t *testing.T) {
	service, f := newFixture(t)
	txn := pending(301)
	txn.ExternalChargeID = "ch_301"
	f.seed(txn)
	f.txns.EXPECT().GetByChargeID(mock.Anything, "ch_301").Return(txn, nil)

	outcome, err := f.deliver(t, service, entity.ChannelTransfer, &gateway.Event{
		ID:       "evt_17",
		Type:     entity.EventTransferCreated,
		Transfer: &gateway.TransferObject{ID: "tr_301", SourceTransaction: "ch_301"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, "tr_301", f.stored[301].ExternalTransferID)
	assert.Equal(t, entity.TransferProcessing, f.stored[301].TransferStatus)

	outcome, err = f.deliver(t, service, entity.ChannelTransfer, &gateway.Event{
		ID:       "evt_18",
		Type:     entity.EventTransferReversed,
		Transfer: &gateway.TransferObject{ID: "tr_301", SourceTransaction: "ch_301", Reversed: true},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Equal(t, entity.TransferFailed, f.stored[301].TransferStatus)

	statusRows := f.auditFor(entity.FieldTransferStatus)
	require.Len(t, statusRows, 2)
	assert.Equal(t, entity.ChannelTransfer, statusRows[1].Channel)
}
