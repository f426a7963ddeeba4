package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

func fullCase(reason models.DisputeReason) models.DisputeCase {
	return models.DisputeCase{
		MerchantName:       "Acme Outfitters",
		OrderID:            "ORD-1001",
		Amount:             "129.99",
		Currency:           "USD",
		Reason:             reason,
		Timeline:           []string{"2026-02-01: order placed"},
		CustomerEmail:      "jordan@example.com",
		BillingAddress:     "1 Main St",
		IPAddress:          "203.0.113.7",
		TrackingNumber:     "1Z999",
		Carrier:            "ups",
		DeliveryDate:       "2026-02-05",
		PolicyURL:          "https://acme.example/refunds",
		RefundPolicy:       "Returns within 30 days.",
		CommunicationNotes: "Customer confirmed receipt by email.",
	}
}

func categories(items []models.EvidenceItem) []Requirement {
	out := make([]Requirement, 0, len(items))
	for _, it := range items {
		out = append(out, Requirement{Category: it.Category, Priority: it.Priority})
	}
	return out
}

func TestEvaluateMatchesReasonMapRegardlessOfContents(t *testing.T) {
	attachments := []models.AttachmentItem{{ID: "a1", Filename: "receipt.pdf"}}
	for _, reason := range models.DisputeReasons {
		t.Run(string(reason), func(t *testing.T) {
			want := Requirements(reason)
			require.NotEmpty(t, want)

			empty := Evaluate(models.DisputeCase{Reason: reason}, nil)
			full := Evaluate(fullCase(reason), attachments)

			assert.Equal(t, want, categories(empty))
			assert.Equal(t, want, categories(full))
			for _, it := range empty {
				assert.False(t, it.Present, it.Category)
			}
			for _, it := range full {
				assert.True(t, it.Present, it.Category)
			}
		})
	}
}

func TestEvaluateUnknownReasonFallsBackToOther(t *testing.T) {
	items := Evaluate(models.DisputeCase{Reason: "chargeback_of_the_century"}, nil)
	assert.Equal(t, Requirements(models.ReasonOther), categories(items))
}

func TestEveryMappedCategoryIsInCatalog(t *testing.T) {
	for reason, reqs := range reasonMap {
		for _, req := range reqs {
			_, ok := Lookup(req.Category)
			assert.True(t, ok, "%s references unknown category %s", reason, req.Category)
		}
	}
}

func TestProofOfDeliveryFromTrackingAndCarrier(t *testing.T) {
	c := models.DisputeCase{
		OrderID:        "ORD-1",
		Reason:         models.ReasonProductNotReceived,
		TrackingNumber: "1Z1",
		Carrier:        "UPS",
	}
	byKey := map[string]models.EvidenceItem{}
	for _, it := range Evaluate(c, nil) {
		byKey[it.Category] = it
	}

	assert.True(t, byKey[ProofOfDelivery].Present)
	assert.True(t, byKey[TrackingDetails].Present)
	assert.True(t, byKey[CarrierConfirmation].Present)
	assert.False(t, byKey[DeliveryDate].Present)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		category string
		c        models.DisputeCase
		attach   []models.AttachmentItem
		want     bool
	}{
		{"delivery tracking without carrier", ProofOfDelivery, models.DisputeCase{TrackingNumber: "1Z"}, nil, false},
		{"delivery carrier without tracking", ProofOfDelivery, models.DisputeCase{Carrier: "DHL"}, nil, false},
		{"delivery date alone", ProofOfDelivery, models.DisputeCase{DeliveryDate: "2026-01-02"}, nil, true},
		{"delivery blank fields", ProofOfDelivery, models.DisputeCase{TrackingNumber: " ", Carrier: " "}, nil, false},
		{"auth from email", AuthorizationSignals, models.DisputeCase{CustomerEmail: "a@b.c"}, nil, true},
		{"auth from ip", AuthorizationSignals, models.DisputeCase{IPAddress: "10.0.0.1"}, nil, true},
		{"auth empty", AuthorizationSignals, models.DisputeCase{}, nil, false},
		{"policies from excerpt", Policies, models.DisputeCase{RefundPolicy: "30 days"}, nil, true},
		{"policies from url", Policies, models.DisputeCase{PolicyURL: "https://x"}, nil, true},
		{"comms", CustomerCommunications, models.DisputeCase{CommunicationNotes: "called"}, nil, true},
		{"timeline empty", Timeline, models.DisputeCase{}, nil, false},
		{"timeline blank events", Timeline, models.DisputeCase{Timeline: []string{"", "  \t"}}, nil, false},
		{"timeline", Timeline, models.DisputeCase{Timeline: []string{"", "x"}}, nil, true},
		{"attachments", Attachments, models.DisputeCase{}, []models.AttachmentItem{{ID: "1"}}, true},
		{"no attachments", Attachments, models.DisputeCase{}, nil, false},
		{"ip match", IPMatch, models.DisputeCase{IPAddress: "10.0.0.1"}, nil, true},
		{"email match blank", EmailMatch, models.DisputeCase{CustomerEmail: "  "}, nil, false},
		{"policy url", PolicyURL, models.DisputeCase{PolicyURL: "https://x"}, nil, true},
		{"policy excerpt", PolicyExcerpt, models.DisputeCase{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := Lookup(tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.want, cat.Present(tt.c, tt.attach))
		})
	}
}

func TestOrderings(t *testing.T) {
	items := []models.EvidenceItem{
		{Category: "b", Label: "Bravo", Priority: models.PriorityRecommended, Present: true},
		{Category: "c", Label: "Charlie", Priority: models.PriorityCritical, Present: false},
		{Category: "a", Label: "Alpha", Priority: models.PriorityRecommended, Present: false},
		{Category: "d", Label: "Delta", Priority: models.PriorityCritical, Present: true},
	}
	original := append([]models.EvidenceItem(nil), items...)

	labels := func(in []models.EvidenceItem) []string {
		var out []string
		for _, it := range in {
			out = append(out, it.Label)
		}
		return out
	}

	assert.Equal(t, []string{"Charlie", "Delta", "Alpha", "Bravo"}, labels(ByPriority(items)))
	assert.Equal(t, []string{"Delta", "Bravo", "Charlie", "Alpha"}, labels(ByStrength(items)))
	assert.Equal(t, original, items, "orderings must not reorder their input")
}

func TestNeedsCompletenessWarning(t *testing.T) {
	rec := func(present bool) models.EvidenceItem {
		return models.EvidenceItem{Priority: models.PriorityRecommended, Present: present}
	}
	crit := models.EvidenceItem{Priority: models.PriorityCritical}

	assert.False(t, NeedsCompletenessWarning(nil))
	assert.False(t, NeedsCompletenessWarning([]models.EvidenceItem{rec(false), crit, crit}))
	assert.True(t, NeedsCompletenessWarning([]models.EvidenceItem{rec(false), rec(false)}))
	assert.False(t, NeedsCompletenessWarning([]models.EvidenceItem{rec(false), rec(true), rec(true)}))
}
