package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/fee"
	coremocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/marketplace-payments/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow       *persistencemocks.MockUnitOfWork
	listings  *persistencemocks.MockListingRepository
	txns      *persistencemocks.MockTransactionRepository
	profiles  *persistencemocks.MockProfileRepository
	rates     *persistencemocks.MockTakeRateRepository
	errorLogs *persistencemocks.MockErrorLogRepository
	gateway   *gatewaymocks.MockPaymentGateway
	logger    *coremocks.MockLogger
}

func newFixture(t *testing.T) (*Service, *fixture) {
	f := &fixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		listings:  persistencemocks.NewMockListingRepository(t),
		txns:      persistencemocks.NewMockTransactionRepository(t),
		profiles:  persistencemocks.NewMockProfileRepository(t),
		rates:     persistencemocks.NewMockTakeRateRepository(t),
		errorLogs: persistencemocks.NewMockErrorLogRepository(t),
		gateway:   gatewaymocks.NewMockPaymentGateway(t),
		logger:    coremocks.NewMockLogger(t),
	}
	mockTime := coremocks.NewMockTimeProvider(t)

	f.uow.EXPECT().GetListingRepository(mock.Anything).Return(f.listings).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txns).Maybe()
	f.uow.EXPECT().GetProfileRepository(mock.Anything).Return(f.profiles).Maybe()
	f.uow.EXPECT().GetTakeRateRepository(mock.Anything).Return(f.rates).Maybe()
	f.uow.EXPECT().GetErrorLogRepository(mock.Anything).Return(f.errorLogs).Maybe()
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	resolver := fee.NewResolver(f.uow, f.logger)
	writer := errorlog.NewWriter(f.uow, mockTime, f.logger)
	return NewService(f.uow, resolver, f.gateway, writer, mockTime, f.logger), f
}

func publishedListing() *entity.Listing {
	return &entity.Listing{
		ID:           5,
		Kind:         entity.ListingProperty,
		Title:        "Sea view flat",
		Price:        10000,
		SellerUserID: 99,
		Status:       entity.ListingPublished,
	}
}

func payableSeller() *entity.SellerProfile {
	return &entity.SellerProfile{UserID: 99, ExternalAccountID: "acct_99"}
}

// expectValidPurchase sets up everything up to and including the fee split
func (f *fixture) expectValidPurchase() {
	f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
	f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)
	f.profiles.EXPECT().GetSeller(mock.Anything, uint64(99)).Return(payableSeller(), nil)
	f.profiles.EXPECT().GetBuyer(mock.Anything, uint64(42)).
		Return(&entity.BuyerProfile{UserID: 42, ExternalCustomerID: "cus_42"}, nil)
	f.rates.EXPECT().FindForSeller(mock.Anything, uint64(99), fixedTime).Return(nil, errs.ErrNotFound)
	f.rates.EXPECT().FindDefault(mock.Anything, fixedTime).
		Return(&entity.TakeRate{ID: 1, Rate: decimal.NewFromInt(10), IsDefault: true}, nil)
}

// Scenario A
func TestStartCheckoutCreatesPendingTransaction(t *testing.T) {
	service, f := newFixture(t)
	f.expectValidPurchase()

	var created *entity.Transaction
	f.txns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) {
			txn.ID = 301
			created = txn
		}).Return(nil).Once()
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(p gateway.CheckoutSessionParams) bool {
		return p.CustomerID == "cus_42" &&
			p.Amount == 10000 &&
			p.ApplicationFee == 1000 &&
			p.DestinationAccountID == "acct_99" &&
			p.Metadata[gateway.MetadataTransactionID] == "301" &&
			p.Metadata[gateway.MetadataBuyerUserID] == "42" &&
			p.Metadata[gateway.MetadataSellerUserID] == "99"
	})).Return(&gateway.CheckoutSession{ID: "cs_301", URL: "https://checkout.test/cs_301"}, nil).Once()
	f.txns.EXPECT().SetSessionID(mock.Anything, uint64(301), "cs_301").Return(nil).Once()

	result, err := service.StartCheckout(context.Background(), 5, 42)

	require.NoError(t, err)
	assert.Equal(t, "cs_301", result.SessionID)
	assert.Equal(t, "https://checkout.test/cs_301", result.RedirectURL)
	assert.Equal(t, uint64(301), result.TransactionID)

	require.NotNil(t, created)
	assert.Equal(t, entity.TransactionPending, created.TransactionStatus)
	assert.Equal(t, entity.PaymentPending, created.PaymentStatus)
	assert.Equal(t, entity.TransferPending, created.TransferStatus)
	assert.Equal(t, int64(1000), created.PlatformFee)
	assert.Equal(t, int64(9000), created.SellerAmount)
	assert.Equal(t, uint64(42), created.BuyerUserID)
	assert.Equal(t, uint64(99), created.SellerUserID)
}

// Scenario F
func TestStartCheckoutWithoutTakeRateCreatesNothing(t *testing.T) {
	service, f := newFixture(t)

	f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
	f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)
	f.profiles.EXPECT().GetSeller(mock.Anything, uint64(99)).Return(payableSeller(), nil)
	f.profiles.EXPECT().GetBuyer(mock.Anything, uint64(42)).
		Return(&entity.BuyerProfile{UserID: 42, ExternalCustomerID: "cus_42"}, nil)
	f.rates.EXPECT().FindForSeller(mock.Anything, uint64(99), fixedTime).Return(nil, errs.ErrNotFound)
	f.rates.EXPECT().FindDefault(mock.Anything, fixedTime).Return(nil, errs.ErrNotFound)
	f.logger.EXPECT().Error("No take rate configured", mock.Anything).Once()

	result, err := service.StartCheckout(context.Background(), 5, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrConfiguration)
	f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestStartCheckoutPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Listing not found", func(t *testing.T) {
		service, f := newFixture(t)
		f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrListingNotFound)

		_, err := service.StartCheckout(ctx, 5, 42)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Listing not published", func(t *testing.T) {
		service, f := newFixture(t)
		listing := publishedListing()
		listing.Status = entity.ListingDraft
		f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(listing, nil)

		_, err := service.StartCheckout(ctx, 5, 42)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.ErrorIs(t, err, errs.ErrListingNotAvailable)
	})

	t.Run("Already purchased", func(t *testing.T) {
		service, f := newFixture(t)
		f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
		f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).
			Return(&entity.Transaction{ID: 1, TransactionStatus: entity.TransactionCompleted}, nil)

		_, err := service.StartCheckout(ctx, 5, 42)

		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("Seller without connected account", func(t *testing.T) {
		service, f := newFixture(t)
		f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
		f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)
		f.profiles.EXPECT().GetSeller(mock.Anything, uint64(99)).Return(&entity.SellerProfile{UserID: 99}, nil)

		_, err := service.StartCheckout(ctx, 5, 42)

		assert.ErrorIs(t, err, errs.ErrSellerNotPayable)
	})

	t.Run("Seller profile missing", func(t *testing.T) {
		service, f := newFixture(t)
		f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
		f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)
		f.profiles.EXPECT().GetSeller(mock.Anything, uint64(99)).Return(nil, errs.ErrProfileNotFound)

		_, err := service.StartCheckout(ctx, 5, 42)

		assert.ErrorIs(t, err, errs.ErrSellerNotPayable)
	})

	t.Run("Missing ids", func(t *testing.T) {
		service, _ := newFixture(t)

		_, err := service.StartCheckout(ctx, 0, 42)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

// Two concurrent attempts against an existing COMPLETED purchase both fail with Conflict
func TestStartCheckoutNoDoublePurchase(t *testing.T) {
	service, f := newFixture(t)
	f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
	f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).
		Return(&entity.Transaction{ID: 1, TransactionStatus: entity.TransactionCompleted}, nil)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.StartCheckout(context.Background(), 5, 42)
		}(i)
	}
	wg.Wait()

	for _, err := range results {
		assert.ErrorIs(t, err, errs.ErrAlreadyPurchased)
	}
	f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStartCheckoutProcessorFailureCompensates(t *testing.T) {
	service, f := newFixture(t)
	f.expectValidPurchase()

	f.txns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { txn.ID = 302 }).
		Return(nil).Once()
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(nil, errors.New("api_connection_error")).Once()
	f.txns.EXPECT().Delete(mock.Anything, uint64(302)).Return(nil).Once()
	f.errorLogs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.ErrorType == errs.KindExternalProcessor && *log.TransactionID == 302
	})).Return(nil).Once()
	f.logger.EXPECT().Warn("Transaction error recorded", mock.Anything).Once()

	result, err := service.StartCheckout(context.Background(), 5, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrExternalProcessor)
	f.txns.AssertNotCalled(t, "SetSessionID", mock.Anything, mock.Anything, mock.Anything)
}

func TestStartCheckoutCompensatesAfterClientDisconnect(t *testing.T) {
	service, f := newFixture(t)
	f.expectValidPurchase()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.txns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { txn.ID = 303 }).
		Return(nil).Once()
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, gateway.CheckoutSessionParams) (*gateway.CheckoutSession, error) {
			cancel()
			return nil, context.Canceled
		}).Once()
	f.txns.EXPECT().Delete(mock.Anything, uint64(303)).
		RunAndReturn(func(deleteCtx context.Context, _ uint64) error {
			assert.NoError(t, deleteCtx.Err())
			_, hasDeadline := deleteCtx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}).Once()
	f.errorLogs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.logger.EXPECT().Warn("Transaction error recorded", mock.Anything).Once()

	result, err := service.StartCheckout(ctx, 5, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrExternalProcessor)
	require.Error(t, ctx.Err())
}

func TestStartCheckoutSessionIDPersistFailureStillReturnsSession(t *testing.T) {
	service, f := newFixture(t)
	f.expectValidPurchase()

	f.txns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { txn.ID = 303 }).
		Return(nil).Once()
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(&gateway.CheckoutSession{ID: "cs_303", URL: "https://checkout.test/cs_303"}, nil).Once()
	f.txns.EXPECT().SetSessionID(mock.Anything, uint64(303), "cs_303").Return(errs.ErrDatabaseConnection).Once()
	f.errorLogs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.TransactionErrorLog) bool {
		return log.ErrorType == errs.KindPersistence && log.Context["session_id"] == "cs_303"
	})).Return(nil).Once()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)

	result, err := service.StartCheckout(context.Background(), 5, 42)

	require.NoError(t, err)
	assert.Equal(t, "cs_303", result.SessionID)
}

func TestStartCheckoutCreatesCustomerOnFirstPurchase(t *testing.T) {
	service, f := newFixture(t)

	f.listings.EXPECT().GetByID(mock.Anything, uint64(5)).Return(publishedListing(), nil)
	f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)
	f.profiles.EXPECT().GetSeller(mock.Anything, uint64(99)).Return(payableSeller(), nil)
	f.profiles.EXPECT().GetBuyer(mock.Anything, uint64(42)).Return(nil, errs.ErrProfileNotFound).Once()
	f.gateway.EXPECT().CreateCustomer(mock.Anything, uint64(42)).Return("cus_new", nil).Once()
	// A concurrent checkout stored a customer first
	f.profiles.EXPECT().SaveBuyer(mock.Anything, mock.MatchedBy(func(p *entity.BuyerProfile) bool {
		return p.UserID == 42 && p.ExternalCustomerID == "cus_new"
	})).Return(&entity.BuyerProfile{UserID: 42, ExternalCustomerID: "cus_first"}, nil).Once()
	f.rates.EXPECT().FindForSeller(mock.Anything, uint64(99), fixedTime).
		Return(&entity.TakeRate{Rate: decimal.NewFromInt(20)}, nil)
	f.txns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { txn.ID = 304 }).
		Return(nil).Once()
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(p gateway.CheckoutSessionParams) bool {
		return p.CustomerID == "cus_first" && p.ApplicationFee == 2000
	})).Return(&gateway.CheckoutSession{ID: "cs_304"}, nil).Once()
	f.txns.EXPECT().SetSessionID(mock.Anything, uint64(304), "cs_304").Return(nil).Once()

	_, err := service.StartCheckout(context.Background(), 5, 42)

	require.NoError(t, err)
}

func TestCheckPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Purchased", func(t *testing.T) {
		service, f := newFixture(t)
		f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).
			Return(&entity.Transaction{ID: 9, TotalAmount: 10000, UpdatedAt: fixedTime}, nil)

		check, err := service.CheckPurchase(ctx, 5, 42)

		require.NoError(t, err)
		assert.True(t, check.IsPurchased)
		require.NotNil(t, check.Info)
		assert.Equal(t, uint64(9), check.Info.TransactionID)
		assert.Equal(t, fixedTime, check.Info.PurchasedAt)
	})

	t.Run("Not purchased", func(t *testing.T) {
		service, f := newFixture(t)
		f.txns.EXPECT().FindCompleted(mock.Anything, uint64(5), uint64(42)).Return(nil, errs.ErrTransactionNotFound)

		check, err := service.CheckPurchase(ctx, 5, 42)

		require.NoError(t, err)
		assert.False(t, check.IsPurchased)
		assert.Nil(t, check.Info)
	})
}

func TestListPurchased(t *testing.T) {
	service, f := newFixture(t)
	txns := []*entity.Transaction{
		{ID: 2, ListingID: 8, TotalAmount: 500, UpdatedAt: fixedTime.Add(time.Hour)},
		{ID: 1, ListingID: 5, TotalAmount: 10000, UpdatedAt: fixedTime},
	}
	f.txns.EXPECT().ListCompletedByBuyer(mock.Anything, uint64(42)).Return(txns, nil)
	f.listings.EXPECT().GetByIDs(mock.Anything, []uint64{8, 5}).
		Return(map[uint64]*entity.Listing{5: publishedListing()}, nil)

	purchases, err := service.ListPurchased(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, uint64(8), purchases[0].ListingID)
	assert.Empty(t, purchases[0].Title)
	assert.Equal(t, "Sea view flat", purchases[1].Title)
	assert.Equal(t, entity.ListingProperty, purchases[1].Kind)
}
