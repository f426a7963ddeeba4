package models

import "strings"

// DisputeReason is the cardholder's stated reason for the chargeback
type DisputeReason string

// Dispute reasons accepted on a case. Values follow the card network
// categories used by most processors.
const (
	ReasonFraudulent          DisputeReason = "fraudulent"
	ReasonProductNotReceived  DisputeReason = "product_not_received"
	ReasonProductUnacceptable DisputeReason = "product_unacceptable"
	ReasonCreditNotProcessed  DisputeReason = "credit_not_processed"
	ReasonDuplicate           DisputeReason = "duplicate"
	ReasonOther               DisputeReason = "other"
)

// DisputeReasons lists every reason in display order
var DisputeReasons = []DisputeReason{
	ReasonFraudulent,
	ReasonProductNotReceived,
	ReasonProductUnacceptable,
	ReasonCreditNotProcessed,
	ReasonDuplicate,
	ReasonOther,
}

var reasonLabels = map[DisputeReason]string{
	ReasonFraudulent:          "Fraudulent / unauthorized",
	ReasonProductNotReceived:  "Product not received",
	ReasonProductUnacceptable: "Product unacceptable",
	ReasonCreditNotProcessed:  "Credit not processed",
	ReasonDuplicate:           "Duplicate charge",
	ReasonOther:               "Other",
}

// Valid reports whether r is one of the known reasons
func (r DisputeReason) Valid() bool {
	_, ok := reasonLabels[r]
	return ok
}

// Resolve returns r, or ReasonOther when r is not a known reason
func (r DisputeReason) Resolve() DisputeReason {
	if r.Valid() {
		return r
	}
	return ReasonOther
}

// Label returns the human readable name of the reason
func (r DisputeReason) Label() string {
	return reasonLabels[r.Resolve()]
}

// DisputeCase holds everything the merchant has entered for one dispute
type DisputeCase struct {
	MerchantName       string        `json:"merchantName" yaml:"merchant_name"`
	OrderID            string        `json:"orderId" yaml:"order_id"`
	Amount             string        `json:"amount" yaml:"amount"`
	Currency           string        `json:"currency" yaml:"currency"`
	Reason             DisputeReason `json:"reason" yaml:"reason"`
	Timeline           []string      `json:"timeline" yaml:"timeline"`
	CustomerEmail      string        `json:"customerEmail" yaml:"customer_email"`
	BillingAddress     string        `json:"billingAddress" yaml:"billing_address"`
	IPAddress          string        `json:"ipAddress" yaml:"ip_address"`
	TrackingNumber     string        `json:"trackingNumber" yaml:"tracking_number"`
	Carrier            string        `json:"carrier" yaml:"carrier"`
	DeliveryDate       string        `json:"deliveryDate" yaml:"delivery_date"`
	PolicyURL          string        `json:"policyUrl" yaml:"policy_url"`
	RefundPolicy       string        `json:"refundPolicy" yaml:"refund_policy"`
	CommunicationNotes string        `json:"communicationNotes" yaml:"communication_notes"`
}

// HasOrderID reports whether the order identifier is set. Exports are
// refused without it.
func (c DisputeCase) HasOrderID() bool {
	return strings.TrimSpace(c.OrderID) != ""
}

// Clone returns a copy that shares no memory with c
func (c DisputeCase) Clone() DisputeCase {
	out := c
	if c.Timeline != nil {
		out.Timeline = append([]string(nil), c.Timeline...)
	}
	return out
}
