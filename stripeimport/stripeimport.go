// Package stripeimport prefills a dispute case from a Stripe dispute
package stripeimport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/dispute"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// OrderIDMetadataKey is the dispute or charge metadata key read as the
// merchant's order id
const OrderIDMetadataKey = "order_id"

// DisputeFetcher loads a dispute with its charge expanded
type DisputeFetcher interface {
	FetchDispute(ctx context.Context, id string) (*stripe.Dispute, error)
}

// Client fetches disputes from the Stripe API
type Client struct {
	api dispute.Client
}

// NewClient returns a Client authenticated with key
func NewClient(key string) (*Client, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("stripe secret key is not set")
	}
	return &Client{api: dispute.Client{B: stripe.GetBackend(stripe.APIBackend), Key: key}}, nil
}

// FetchDispute retrieves a dispute by id
func (c *Client) FetchDispute(ctx context.Context, id string) (*stripe.Dispute, error) {
	params := &stripe.DisputeParams{}
	params.Context = ctx
	params.AddExpand("charge")
	return c.api.Get(id, params)
}

// Importer builds cases from fetched disputes
type Importer struct {
	Fetcher DisputeFetcher
}

// Import fetches the dispute and merges it over base. Fields the dispute
// does not carry keep their base values.
func (im Importer) Import(ctx context.Context, id string, base models.DisputeCase) (models.DisputeCase, error) {
	d, err := im.Fetcher.FetchDispute(ctx, id)
	if err != nil {
		zap.S().Errorw("failed to fetch stripe dispute", "dispute", id, "error", err)
		return models.DisputeCase{}, fmt.Errorf("fetch dispute %s: %w", id, err)
	}
	return Merge(base, d), nil
}

// reasons maps Stripe dispute reasons onto case reasons. Anything missing
// becomes ReasonOther.
var reasons = map[stripe.DisputeReason]models.DisputeReason{
	stripe.DisputeReasonFraudulent:          models.ReasonFraudulent,
	stripe.DisputeReasonUnrecognized:        models.ReasonFraudulent,
	stripe.DisputeReasonProductNotReceived:  models.ReasonProductNotReceived,
	stripe.DisputeReasonProductUnacceptable: models.ReasonProductUnacceptable,
	stripe.DisputeReasonCreditNotProcessed:  models.ReasonCreditNotProcessed,
	stripe.DisputeReasonDuplicate:           models.ReasonDuplicate,
}

// Reason converts a Stripe dispute reason
func Reason(r stripe.DisputeReason) models.DisputeReason {
	if mapped, ok := reasons[r]; ok {
		return mapped
	}
	return models.ReasonOther
}

// zeroDecimal lists currencies Stripe charges in whole units
var zeroDecimal = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true,
	"KRW": true, "MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// Amount renders a Stripe minor-unit amount as a decimal string
func Amount(minor int64, currency string) string {
	if zeroDecimal[strings.ToUpper(currency)] {
		return decimal.NewFromInt(minor).String()
	}
	return decimal.New(minor, -2).StringFixed(2)
}

// Merge overlays the dispute on base
func Merge(base models.DisputeCase, d *stripe.Dispute) models.DisputeCase {
	c := base.Clone()
	if d == nil {
		return c
	}

	currency := strings.ToUpper(string(d.Currency))
	if currency != "" {
		c.Currency = currency
		c.Amount = Amount(d.Amount, currency)
	}
	c.Reason = Reason(d.Reason)

	if id := orderID(d); id != "" {
		c.OrderID = id
	}

	ev := d.Evidence
	if ev == nil {
		ev = &stripe.DisputeEvidence{}
	}
	set(&c.CustomerEmail, ev.CustomerEmailAddress, chargeEmail(d.Charge))
	set(&c.BillingAddress, ev.BillingAddress, chargeAddress(d.Charge))
	set(&c.IPAddress, ev.CustomerPurchaseIP)
	set(&c.TrackingNumber, ev.ShippingTrackingNumber)
	set(&c.Carrier, ev.ShippingCarrier)
	set(&c.RefundPolicy, ev.RefundPolicyDisclosure)
	set(&c.CommunicationNotes, ev.UncategorizedText)

	if ev.ShippingDate != "" {
		event := ev.ShippingDate + " - shipped"
		if ev.ShippingCarrier != "" {
			event += " via " + ev.ShippingCarrier
		}
		c.Timeline = appendEvent(c.Timeline, event)
	}
	if d.Created > 0 {
		opened := time.Unix(d.Created, 0).UTC().Format("2006-01-02")
		c.Timeline = appendEvent(c.Timeline, opened+" - dispute opened ("+string(d.Reason)+")")
	}
	return c
}

// appendEvent adds event unless the timeline already holds it, so importing
// the same dispute again leaves the timeline as it was
func appendEvent(timeline []string, event string) []string {
	for _, existing := range timeline {
		if strings.EqualFold(strings.TrimSpace(existing), event) {
			return timeline
		}
	}
	return append(timeline, event)
}

// set assigns the first non-blank candidate to dst
func set(dst *string, candidates ...string) {
	for _, v := range candidates {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
			return
		}
	}
}

func orderID(d *stripe.Dispute) string {
	if id := strings.TrimSpace(d.Metadata[OrderIDMetadataKey]); id != "" {
		return id
	}
	if d.Charge == nil {
		return ""
	}
	if id := strings.TrimSpace(d.Charge.Metadata[OrderIDMetadataKey]); id != "" {
		return id
	}
	return d.Charge.ID
}

func chargeEmail(ch *stripe.Charge) string {
	if ch == nil {
		return ""
	}
	if ch.BillingDetails != nil && ch.BillingDetails.Email != "" {
		return ch.BillingDetails.Email
	}
	return ch.ReceiptEmail
}

func chargeAddress(ch *stripe.Charge) string {
	if ch == nil || ch.BillingDetails == nil || ch.BillingDetails.Address == nil {
		return ""
	}
	a := ch.BillingDetails.Address
	var parts []string
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
