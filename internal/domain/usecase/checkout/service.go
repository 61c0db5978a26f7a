package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/fee"
)

// Service starts hosted checkouts and answers purchase queries
type Service struct {
	uow          persistence.UnitOfWork
	resolver     *fee.Resolver
	gateway      gateway.PaymentGateway
	errorLog     *errorlog.Writer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.CheckoutUseCase = (*Service)(nil)

// NewService creates a new checkout Service
func NewService(
	uow persistence.UnitOfWork,
	resolver *fee.Resolver,
	paymentGateway gateway.PaymentGateway,
	errorLog *errorlog.Writer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		resolver:     resolver,
		gateway:      paymentGateway,
		errorLog:     errorLog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// StartCheckout validates the purchase, commits a PENDING transaction and opens a hosted session.
// The transaction row exists before the processor is called so webhook metadata always resolves;
// if the processor call fails the row is deleted again.
func (s *Service) StartCheckout(ctx context.Context, listingID, buyerUserID uint64) (*usecase.CheckoutResult, error) {
	if listingID == 0 || buyerUserID == 0 {
		return nil, fmt.Errorf("%w: listing and buyer are required", errs.ErrInvalidRequest)
	}

	listing, err := s.uow.GetListingRepository(ctx).GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsPublished() {
		return nil, errs.ErrListingNotAvailable
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)
	if err := s.ensureNotPurchased(ctx, txnRepo, listingID, buyerUserID); err != nil {
		return nil, err
	}

	seller, err := s.uow.GetProfileRepository(ctx).GetSeller(ctx, listing.SellerUserID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrSellerNotPayable
		}
		return nil, err
	}
	if !seller.CanReceivePayments() {
		return nil, errs.ErrSellerNotPayable
	}

	customerID, err := s.ensureCustomer(ctx, buyerUserID)
	if err != nil {
		return nil, err
	}

	split, err := s.resolver.Split(ctx, listing.SellerUserID, listing.Price, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(listing.ID, buyerUserID, listing.SellerUserID, split, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	metadata := map[string]string{
		gateway.MetadataTransactionID: strconv.FormatUint(txn.ID, 10),
		gateway.MetadataBuyerUserID:   strconv.FormatUint(buyerUserID, 10),
		gateway.MetadataSellerUserID:  strconv.FormatUint(listing.SellerUserID, 10),
		gateway.MetadataListingID:     strconv.FormatUint(listing.ID, 10),
	}
	session, err := s.gateway.CreateCheckoutSession(ctx, gateway.CheckoutSessionParams{
		CustomerID:           customerID,
		ProductName:          listing.Title,
		ProductDescription:   listing.Description,
		ImageURL:             listing.ThumbnailURL,
		Amount:               txn.TotalAmount,
		ApplicationFee:       txn.PlatformFee,
		DestinationAccountID: seller.ExternalAccountID,
		Metadata:             metadata,
	})
	if err != nil {
		return nil, s.abortCheckout(ctx, txn, err)
	}

	if err := txnRepo.SetSessionID(ctx, txn.ID, session.ID); err != nil {
		// Metadata still correlates webhooks, so the buyer keeps the session.
		s.errorLog.Record(ctx, txn.ID, errs.NewPersistenceError("store checkout session id", txn.ID, err), map[string]any{
			"session_id": session.ID,
		})
		s.logger.Warn("Checkout session created but not stored", map[string]any{
			"transaction_id": txn.ID,
			"session_id":     session.ID,
			"error":          err.Error(),
		})
	}

	s.logger.Info("Checkout started", map[string]any{
		"transaction_id": txn.ID,
		"listing_id":     listing.ID,
		"buyer_user_id":  buyerUserID,
		"seller_user_id": listing.SellerUserID,
		"total_amount":   txn.TotalAmount,
		"platform_fee":   txn.PlatformFee,
		"session_id":     session.ID,
	})

	return &usecase.CheckoutResult{
		TransactionID: txn.ID,
		SessionID:     session.ID,
		RedirectURL:   session.URL,
	}, nil
}

func (s *Service) ensureNotPurchased(ctx context.Context, txnRepo persistence.TransactionRepository, listingID, buyerUserID uint64) error {
	_, err := txnRepo.FindCompleted(ctx, listingID, buyerUserID)
	switch {
	case err == nil:
		return errs.ErrAlreadyPurchased
	case errs.IsNotFoundError(err):
		return nil
	default:
		return fmt.Errorf("failed to check existing purchase: %w", err)
	}
}

// ensureCustomer returns the buyer's processor customer id, creating it on first checkout
func (s *Service) ensureCustomer(ctx context.Context, buyerUserID uint64) (string, error) {
	profiles := s.uow.GetProfileRepository(ctx)

	profile, err := profiles.GetBuyer(ctx, buyerUserID)
	if err == nil && profile.HasCustomer() {
		return profile.ExternalCustomerID, nil
	}
	if err != nil && !errs.IsNotFoundError(err) {
		return "", fmt.Errorf("failed to load buyer profile: %w", err)
	}

	customerID, err := s.gateway.CreateCustomer(ctx, buyerUserID)
	if err != nil {
		return "", asProcessorError("create customer", err)
	}

	now := s.timeProvider.Now()
	if profile == nil {
		profile = &entity.BuyerProfile{UserID: buyerUserID, CreatedAt: now}
	}
	profile.ExternalCustomerID = customerID
	profile.UpdatedAt = now

	// A concurrent checkout may have stored its customer first; the stored one wins.
	stored, err := profiles.SaveBuyer(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("failed to save buyer profile: %w", err)
	}

	s.logger.Info("Buyer customer created", map[string]any{
		"buyer_user_id": buyerUserID,
		"customer_id":   stored.ExternalCustomerID,
	})
	return stored.ExternalCustomerID, nil
}

// compensationTimeout bounds the delete that runs after the request context is gone
const compensationTimeout = 5 * time.Second

// abortCheckout removes the PENDING transaction after a processor failure and records the failure.
// The delete runs detached from ctx, which is often already cancelled when the processor call fails.
func (s *Service) abortCheckout(ctx context.Context, txn *entity.Transaction, cause error) error {
	procErr := asProcessorError("create checkout session", cause)

	deleteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()
	if err := s.uow.GetTransactionRepository(deleteCtx).Delete(deleteCtx, txn.ID); err != nil {
		s.logger.Error("Failed to delete transaction after checkout failure", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}

	s.errorLog.Record(ctx, txn.ID, procErr, map[string]any{
		"listing_id":    txn.ListingID,
		"buyer_user_id": txn.BuyerUserID,
		"total_amount":  txn.TotalAmount,
	})
	return procErr
}

func asProcessorError(operation string, err error) error {
	var procErr *errs.ProcessorError
	if errors.As(err, &procErr) {
		return err
	}
	return errs.NewProcessorError(operation, err)
}

// CheckPurchase reports whether the buyer has a COMPLETED transaction for the listing
func (s *Service) CheckPurchase(ctx context.Context, listingID, buyerUserID uint64) (*usecase.PurchaseCheck, error) {
	txn, err := s.uow.GetTransactionRepository(ctx).FindCompleted(ctx, listingID, buyerUserID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return &usecase.PurchaseCheck{IsPurchased: false}, nil
		}
		return nil, err
	}

	return &usecase.PurchaseCheck{
		IsPurchased: true,
		Info: &usecase.PurchaseInfo{
			TransactionID: txn.ID,
			TotalAmount:   txn.TotalAmount,
			PurchasedAt:   txn.UpdatedAt,
		},
	}, nil
}

// ListPurchased returns the buyer's completed purchases with their listing summary, newest first
func (s *Service) ListPurchased(ctx context.Context, buyerUserID uint64) ([]usecase.PurchasedListing, error) {
	txns, err := s.uow.GetTransactionRepository(ctx).ListCompletedByBuyer(ctx, buyerUserID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return []usecase.PurchasedListing{}, nil
	}

	ids := make([]uint64, 0, len(txns))
	for _, txn := range txns {
		ids = append(ids, txn.ListingID)
	}
	listings, err := s.uow.GetListingRepository(ctx).GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	purchases := make([]usecase.PurchasedListing, 0, len(txns))
	for _, txn := range txns {
		item := usecase.PurchasedListing{
			PurchaseInfo: usecase.PurchaseInfo{
				TransactionID: txn.ID,
				TotalAmount:   txn.TotalAmount,
				PurchasedAt:   txn.UpdatedAt,
			},
			ListingID: txn.ListingID,
		}
		if listing, ok := listings[txn.ListingID]; ok {
			item.Kind = listing.Kind
			item.Title = listing.Title
			item.PropertyName = listing.PropertyName
			item.ThumbnailURL = listing.ThumbnailURL
		}
		purchases = append(purchases, item)
	}
	return purchases, nil
}
