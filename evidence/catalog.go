// Package evidence decides which evidence categories a dispute case already
// covers and how much each one matters for the selected dispute reason.
package evidence

import (
	"strings"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// Category keys
const (
	ProofOfDelivery        = "proof_of_delivery"
	AuthorizationSignals   = "authorization_signals"
	Policies               = "policies"
	CustomerCommunications = "customer_communications"
	Timeline               = "timeline"
	Attachments            = "attachments"
	TrackingDetails        = "tracking_details"
	CarrierConfirmation    = "carrier_confirmation"
	DeliveryDate           = "delivery_date"
	BillingAddressMatch    = "billing_address_match"
	IPMatch                = "ip_match"
	EmailMatch             = "email_match"
	PolicyExcerpt          = "policy_excerpt"
	PolicyURL              = "policy_url"
)

// Predicate reports whether a case already holds a category's evidence
type Predicate func(c models.DisputeCase, attachments []models.AttachmentItem) bool

// Category is one entry of the static evidence catalog
type Category struct {
	Key       string
	Label     string
	Rationale string
	Present   Predicate
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func field(get func(models.DisputeCase) string) Predicate {
	return func(c models.DisputeCase, _ []models.AttachmentItem) bool {
		return filled(get(c))
	}
}

var catalog = map[string]Category{
	ProofOfDelivery: {
		Key:       ProofOfDelivery,
		Label:     "Proof of delivery",
		Rationale: "Tracking with a named carrier, or a confirmed delivery date, shows the order reached the customer.",
		Present: func(c models.DisputeCase, _ []models.AttachmentItem) bool {
			return (filled(c.TrackingNumber) && filled(c.Carrier)) || filled(c.DeliveryDate)
		},
	},
	AuthorizationSignals: {
		Key:       AuthorizationSignals,
		Label:     "Authorization signals",
		Rationale: "Billing address, IP address or email tie the purchase to the cardholder.",
		Present: func(c models.DisputeCase, _ []models.AttachmentItem) bool {
			return filled(c.BillingAddress) || filled(c.IPAddress) || filled(c.CustomerEmail)
		},
	},
	Policies: {
		Key:       Policies,
		Label:     "Policies",
		Rationale: "The refund or return policy the customer accepted at checkout.",
		Present: func(c models.DisputeCase, _ []models.AttachmentItem) bool {
			return filled(c.PolicyURL) || filled(c.RefundPolicy)
		},
	},
	CustomerCommunications: {
		Key:       CustomerCommunications,
		Label:     "Customer communications",
		Rationale: "Messages with the customer show good faith and what they were told.",
		Present:   field(func(c models.DisputeCase) string { return c.CommunicationNotes }),
	},
	Timeline: {
		Key:       Timeline,
		Label:     "Timeline",
		Rationale: "A dated sequence of events lets the bank follow the order from purchase to dispute.",
		Present: func(c models.DisputeCase, _ []models.AttachmentItem) bool {
			for _, ev := range c.Timeline {
				if filled(ev) {
					return true
				}
			}
			return false
		},
	},
	Attachments: {
		Key:       Attachments,
		Label:     "Attachments",
		Rationale: "Receipts, screenshots and carrier records back up every claim in the summary.",
		Present: func(_ models.DisputeCase, attachments []models.AttachmentItem) bool {
			return len(attachments) > 0
		},
	},
	TrackingDetails: {
		Key:       TrackingDetails,
		Label:     "Tracking details",
		Rationale: "The tracking number lets the issuer look the shipment up directly.",
		Present:   field(func(c models.DisputeCase) string { return c.TrackingNumber }),
	},
	CarrierConfirmation: {
		Key:       CarrierConfirmation,
		Label:     "Carrier confirmation",
		Rationale: "Naming the carrier makes the tracking number verifiable.",
		Present:   field(func(c models.DisputeCase) string { return c.Carrier }),
	},
	DeliveryDate: {
		Key:       DeliveryDate,
		Label:     "Delivery date",
		Rationale: "The delivery date anchors the claim that the goods arrived.",
		Present:   field(func(c models.DisputeCase) string { return c.DeliveryDate }),
	},
	BillingAddressMatch: {
		Key:       BillingAddressMatch,
		Label:     "Billing address match",
		Rationale: "A billing address matching the card on file points to the cardholder.",
		Present:   field(func(c models.DisputeCase) string { return c.BillingAddress }),
	},
	IPMatch: {
		Key:       IPMatch,
		Label:     "IP address match",
		Rationale: "An IP address consistent with earlier orders points to the cardholder.",
		Present:   field(func(c models.DisputeCase) string { return c.IPAddress }),
	},
	EmailMatch: {
		Key:       EmailMatch,
		Label:     "Email match",
		Rationale: "An email address with prior purchase history points to the cardholder.",
		Present:   field(func(c models.DisputeCase) string { return c.CustomerEmail }),
	},
	PolicyExcerpt: {
		Key:       PolicyExcerpt,
		Label:     "Refund policy excerpt",
		Rationale: "Quoting the relevant policy text saves the reviewer a lookup.",
		Present:   field(func(c models.DisputeCase) string { return c.RefundPolicy }),
	},
	PolicyURL: {
		Key:       PolicyURL,
		Label:     "Policy URL",
		Rationale: "A public link shows the policy was available before purchase.",
		Present:   field(func(c models.DisputeCase) string { return c.PolicyURL }),
	},
}

// Lookup returns the catalog entry for key
func Lookup(key string) (Category, bool) {
	c, ok := catalog[key]
	return c, ok
}
