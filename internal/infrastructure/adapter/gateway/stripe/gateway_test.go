package stripe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

type recordedRequest struct {
	method         string
	path           string
	form           url.Values
	idempotencyKey string
}

func newTestGateway(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Gateway, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		requests = append(requests, recordedRequest{
			method:         r.Method,
			path:           r.URL.Path,
			form:           form,
			idempotencyKey: r.Header.Get("Idempotency-Key"),
		})
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	gw := NewGateway(Config{
		SecretKey:  "sk_test_123",
		Currency:   "usd",
		SuccessURL: "https://example.com/success",
		CancelURL:  "https://example.com/cancel",
	}, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}, logger.NewNoopLogger())

	return gw, &requests
}

func TestCreateCustomer(t *testing.T) {
	gw, requests := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id": "cus_123", "object": "customer"}`)
	})

	id, err := gw.CreateCustomer(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)
	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/v1/customers", req.path)
	assert.Equal(t, "7", req.form.Get("metadata[buyer_user_id]"))
	assert.Equal(t, "customer-7", req.idempotencyKey)
}

func TestCreateCheckoutSession(t *testing.T) {
	gw, requests := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id": "cs_1", "object": "checkout.session", "url": "https://checkout.stripe.com/c/cs_1"}`)
	})

	session, err := gw.CreateCheckoutSession(context.Background(), gateway.CheckoutSessionParams{
		CustomerID:           "cus_123",
		ProductName:          "Sea view room",
		ImageURL:             "https://img.example.com/1.png",
		Amount:               10000,
		ApplicationFee:       1000,
		DestinationAccountID: "acct_1",
		Metadata:             map[string]string{gateway.MetadataTransactionID: "42"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", session.URL)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/v1/checkout/sessions", req.path)
	assert.Equal(t, "checkout-42", req.idempotencyKey)
	assert.Equal(t, "payment", req.form.Get("mode"))
	assert.Equal(t, "cus_123", req.form.Get("customer"))
	assert.Equal(t, "10000", req.form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", req.form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Sea view room", req.form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "1000", req.form.Get("payment_intent_data[application_fee_amount]"))
	assert.Equal(t, "acct_1", req.form.Get("payment_intent_data[transfer_data][destination]"))
	assert.Equal(t, "42", req.form.Get("payment_intent_data[metadata][transaction_id]"))
	assert.Equal(t, "42", req.form.Get("metadata[transaction_id]"))
}

func TestGetLatestChargeID(t *testing.T) {
	gw, requests := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/payment_intents/pi_1" {
			_, _ = io.WriteString(w, `{"id": "pi_1", "object": "payment_intent", "latest_charge": "ch_1"}`)
			return
		}
		_, _ = io.WriteString(w, `{"id": "pi_2", "object": "payment_intent", "latest_charge": null}`)
	})

	chargeID, err := gw.GetLatestChargeID(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "ch_1", chargeID)

	chargeID, err = gw.GetLatestChargeID(context.Background(), "pi_2")
	require.NoError(t, err)
	assert.Empty(t, chargeID)
	assert.Equal(t, http.MethodGet, (*requests)[0].method)
}

func TestProcessorErrorsAreWrapped(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": {"type": "invalid_request_error", "message": "No such destination: acct_x"}}`)
	})

	_, err := gw.CreateCheckoutSession(context.Background(), gateway.CheckoutSessionParams{
		CustomerID:           "cus_123",
		ProductName:          "Room",
		Amount:               500,
		DestinationAccountID: "acct_x",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExternalProcessor)
	var procErr *errs.ProcessorError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "create checkout session", procErr.Operation)

	_, err = gw.CreateCustomer(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrExternalProcessor)
}
