package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*database.TestDBManager, *database.UnitOfWork) {
	t.Helper()

	m := database.NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	t.Cleanup(func() { m.Close(t) })
	m.SetupTestDB(t)

	return m, m.Manager.CreateUnitOfWork()
}

func newTransaction(t *testing.T, m *database.TestDBManager, listingID, buyerID uint64) *entity.Transaction {
	t.Helper()

	txn, err := entity.NewTransaction(listingID, buyerID, 50, entity.FeeSplit{
		Total:        10000,
		PlatformFee:  1000,
		SellerAmount: 9000,
	}, m.TimeProvider)
	require.NoError(t, err)
	return txn
}

func TestTransactionRepositoryLifecycle(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	m.CreateTestListing(t, 1, 50, 10000)

	repo := uow.GetTransactionRepository(ctx)
	txn := newTransaction(t, m, 1, 7)
	require.NoError(t, repo.Create(ctx, txn))
	require.NotZero(t, txn.ID)

	require.NoError(t, repo.SetSessionID(ctx, txn.ID, "cs_1"))
	bySession, err := repo.GetBySessionID(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, bySession.ID)

	changes, _ := bySession.Apply(entity.Changes{
		entity.FieldExternalPaymentIntentID: "pi_1",
		entity.FieldExternalChargeID:        "ch_1",
		entity.FieldTransactionStatus:       string(entity.TransactionCompleted),
	}, m.TimeProvider.Now())
	require.Len(t, changes, 3)
	require.NoError(t, repo.Update(ctx, bySession))

	byCharge, err := repo.GetByChargeID(ctx, "ch_1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionCompleted, byCharge.TransactionStatus)
	assert.Equal(t, "pi_1", byCharge.ExternalPaymentIntentID)

	completed, err := repo.FindCompleted(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, completed.ID)

	purchased, err := repo.ListCompletedByBuyer(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, purchased, 1)

	_, err = repo.GetByPaymentIntentID(ctx, "pi_missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	require.NoError(t, repo.Delete(ctx, txn.ID))
	_, err = repo.GetByID(ctx, txn.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestSecondCompletedPurchaseIsRejected(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	m.CreateTestListing(t, 1, 50, 10000)
	repo := uow.GetTransactionRepository(ctx)

	for i := 0; i < 2; i++ {
		txn := newTransaction(t, m, 1, 7)
		require.NoError(t, repo.Create(ctx, txn))
		txn.Apply(entity.Changes{entity.FieldTransactionStatus: string(entity.TransactionCompleted)}, m.TimeProvider.Now())

		err := repo.Update(ctx, txn)
		if i == 0 {
			require.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, errs.ErrDuplicateRecord)
	}
}

func TestWithinTransactionRollsBack(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	m.CreateTestListing(t, 1, 50, 10000)

	txn := newTransaction(t, m, 1, 7)
	boom := errors.New("boom")

	err := uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = uow.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestAuditLogsFollowTransaction(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	m.CreateTestListing(t, 1, 50, 10000)

	txn := newTransaction(t, m, 1, 7)
	require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, txn))

	changes, _ := txn.Apply(entity.Changes{
		entity.FieldPaymentStatus:  string(entity.PaymentSucceeded),
		entity.FieldTransferStatus: string(entity.TransferSucceeded),
	}, m.TimeProvider.Now())
	logs := entity.NewAuditLogs(txn.ID, changes, entity.ActorWebhook, entity.ChannelPayment, m.TimeProvider.Now())

	auditRepo := uow.GetAuditLogRepository(ctx)
	require.NoError(t, auditRepo.CreateBatch(ctx, logs))

	stored, err := auditRepo.ListByTransaction(ctx, txn.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, row := range stored {
		assert.Equal(t, entity.ActorWebhook, row.ChangedBy)
		assert.Equal(t, "PENDING", row.OldValue)
	}
}

func TestTakeRateWindows(t *testing.T) {
	_, uow := setup(t)
	ctx := context.Background()
	repo := uow.GetTakeRateRepository(ctx)

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seller := uint64(50)

	def, err := entity.NewTakeRate(nil, decimal.RequireFromString("10"), jan, time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, def))

	first, err := entity.NewTakeRate(&seller, decimal.RequireFromString("8"), jan, time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	later, err := entity.NewTakeRate(&seller, decimal.RequireFromString("5.5"), jun, time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, later))

	got, err := repo.FindForSeller(ctx, seller, jun.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5.5").Equal(got.Rate))
	assert.True(t, got.IsOpenEnded())

	got, err = repo.FindForSeller(ctx, seller, jan.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("8").Equal(got.Rate))

	_, err = repo.FindForSeller(ctx, 99, jun)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	got, err = repo.FindDefault(ctx, jun)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	_, err = repo.FindDefault(ctx, jan.AddDate(-1, 0, 0))
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSaveBuyerKeepsFirstCustomer(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	repo := uow.GetProfileRepository(ctx)
	now := m.TimeProvider.Now()

	saved, err := repo.SaveBuyer(ctx, &entity.BuyerProfile{UserID: 7, ExternalCustomerID: "cus_first", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "cus_first", saved.ExternalCustomerID)

	saved, err = repo.SaveBuyer(ctx, &entity.BuyerProfile{UserID: 7, ExternalCustomerID: "cus_second", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "cus_first", saved.ExternalCustomerID)
}

func TestSellerProfileSync(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	m.CreateTestSeller(t, 50, "acct_1")
	repo := uow.GetProfileRepository(ctx)

	seller, err := repo.GetSellerByAccountID(ctx, "acct_1")
	require.NoError(t, err)
	assert.False(t, seller.CanReceivePayments())

	seller.ChargesEnabled = true
	seller.PayoutsEnabled = true
	seller.OnboardingCompleted = true
	seller.AccountStatus = entity.AccountStatusActive
	seller.Capabilities = map[string]string{"transfers": "active"}
	require.NoError(t, repo.UpdateSeller(ctx, seller))

	reloaded, err := repo.GetSeller(ctx, 50)
	require.NoError(t, err)
	assert.True(t, reloaded.CanReceivePayments())
	assert.Equal(t, "active", reloaded.Capabilities["transfers"])

	_, err = repo.GetSellerByAccountID(ctx, "acct_missing")
	assert.ErrorIs(t, err, errs.ErrProfileNotFound)
}

func TestWebhookLedgerUpsert(t *testing.T) {
	m, uow := setup(t)
	ctx := context.Background()
	repo := uow.GetWebhookEventRepository(ctx)

	event := &entity.WebhookEvent{
		EventID:   "evt_1",
		Type:      entity.EventCheckoutSessionCompleted,
		Channel:   entity.ChannelPayment,
		Payload:   []byte(`{"id":"evt_1"}`),
		CreatedAt: m.TimeProvider.Now(),
	}
	event.MarkFailed("database unavailable")
	require.NoError(t, repo.Save(ctx, event))

	event.MarkProcessed(m.TimeProvider.Now())
	require.NoError(t, repo.Save(ctx, event))

	stored, err := repo.GetByEventID(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, stored.IsProcessed())
	assert.Empty(t, stored.ProcessingError)

	_, err = repo.GetByEventID(ctx, "evt_missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
