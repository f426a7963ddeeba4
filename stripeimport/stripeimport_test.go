package stripeimport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/stripeimport"
	"github.com/linesmerrill/dispute-evidence-api/stripeimport/mocks"
)

func TestReason(t *testing.T) {
	tests := map[stripe.DisputeReason]models.DisputeReason{
		stripe.DisputeReasonFraudulent:           models.ReasonFraudulent,
		stripe.DisputeReasonUnrecognized:         models.ReasonFraudulent,
		stripe.DisputeReasonProductNotReceived:   models.ReasonProductNotReceived,
		stripe.DisputeReasonProductUnacceptable:  models.ReasonProductUnacceptable,
		stripe.DisputeReasonCreditNotProcessed:   models.ReasonCreditNotProcessed,
		stripe.DisputeReasonDuplicate:            models.ReasonDuplicate,
		stripe.DisputeReasonGeneral:              models.ReasonOther,
		stripe.DisputeReasonSubscriptionCanceled: models.ReasonOther,
		"something_new":                          models.ReasonOther,
	}
	for in, want := range tests {
		assert.Equal(t, want, stripeimport.Reason(in), string(in))
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "49.99", stripeimport.Amount(4999, "usd"))
	assert.Equal(t, "0.05", stripeimport.Amount(5, "EUR"))
	assert.Equal(t, "1500", stripeimport.Amount(1500, "JPY"))
}

func fullDispute() *stripe.Dispute {
	return &stripe.Dispute{
		ID:       "dp_123",
		Amount:   4999,
		Currency: stripe.CurrencyUSD,
		Reason:   stripe.DisputeReasonProductNotReceived,
		Created:  time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC).Unix(),
		Metadata: map[string]string{},
		Evidence: &stripe.DisputeEvidence{
			CustomerPurchaseIP:     "203.0.113.7",
			ShippingTrackingNumber: "1Z999",
			ShippingCarrier:        "ups",
			ShippingDate:           "2024-03-02",
		},
		Charge: &stripe.Charge{
			ID:       "ch_abc",
			Metadata: map[string]string{"order_id": "ORD-77"},
			BillingDetails: &stripe.ChargeBillingDetails{
				Email: "buyer@example.com",
				Address: &stripe.Address{
					Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US",
				},
			},
		},
	}
}

func TestImport(t *testing.T) {
	fetcher := &mocks.DisputeFetcher{}
	fetcher.On("FetchDispute", mock.Anything, "dp_123").Return(fullDispute(), nil)

	base := models.DisputeCase{MerchantName: "Acme", PolicyURL: "https://acme.example/returns"}
	got, err := stripeimport.Importer{Fetcher: fetcher}.Import(context.Background(), "dp_123", base)
	require.NoError(t, err)

	assert.Equal(t, "Acme", got.MerchantName)
	assert.Equal(t, "https://acme.example/returns", got.PolicyURL)
	assert.Equal(t, "ORD-77", got.OrderID)
	assert.Equal(t, "49.99", got.Amount)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, models.ReasonProductNotReceived, got.Reason)
	assert.Equal(t, "buyer@example.com", got.CustomerEmail)
	assert.Equal(t, "1 Main St, Springfield, 12345, US", got.BillingAddress)
	assert.Equal(t, "203.0.113.7", got.IPAddress)
	assert.Equal(t, "1Z999", got.TrackingNumber)
	assert.Equal(t, "ups", got.Carrier)
	assert.Equal(t, []string{
		"2024-03-02 - shipped via ups",
		"2024-03-10 - dispute opened (product_not_received)",
	}, got.Timeline)
	fetcher.AssertExpectations(t)
}

func TestMergeOrderIDFallsBackToCharge(t *testing.T) {
	d := fullDispute()
	d.Charge.Metadata = nil
	assert.Equal(t, "ch_abc", stripeimport.Merge(models.DisputeCase{}, d).OrderID)

	d.Metadata = map[string]string{"order_id": " web-9 "}
	assert.Equal(t, "web-9", stripeimport.Merge(models.DisputeCase{}, d).OrderID)
}

func TestMergeEvidenceWinsOverCharge(t *testing.T) {
	d := fullDispute()
	d.Evidence.CustomerEmailAddress = "evidence@example.com"
	d.Evidence.BillingAddress = "PO Box 1"

	got := stripeimport.Merge(models.DisputeCase{}, d)
	assert.Equal(t, "evidence@example.com", got.CustomerEmail)
	assert.Equal(t, "PO Box 1", got.BillingAddress)
}

func TestMergeTwiceKeepsTimeline(t *testing.T) {
	base := models.DisputeCase{Timeline: []string{"2024-03-01 - order placed"}}

	once := stripeimport.Merge(base, fullDispute())
	twice := stripeimport.Merge(once, fullDispute())

	assert.Equal(t, once.Timeline, twice.Timeline)
	assert.Len(t, twice.Timeline, 3)

	edited := models.DisputeCase{Timeline: []string{" 2024-03-02 - Shipped via UPS "}}
	assert.Equal(t, []string{
		" 2024-03-02 - Shipped via UPS ",
		"2024-03-10 - dispute opened (product_not_received)",
	}, stripeimport.Merge(edited, fullDispute()).Timeline)
}

func TestImportFetchError(t *testing.T) {
	fetcher := &mocks.DisputeFetcher{}
	fetcher.On("FetchDispute", mock.Anything, "dp_x").Return(nil, errors.New("no such dispute"))

	_, err := stripeimport.Importer{Fetcher: fetcher}.Import(context.Background(), "dp_x", models.DisputeCase{})
	assert.ErrorContains(t, err, "no such dispute")
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := stripeimport.NewClient(" ")
	assert.EqualError(t, err, "stripe secret key is not set")
}
