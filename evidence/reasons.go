package evidence

import "github.com/linesmerrill/dispute-evidence-api/models"

// Requirement pairs a catalog category with its priority for one reason
type Requirement struct {
	Category string
	Priority models.Priority
}

func critical(key string) Requirement {
	return Requirement{Category: key, Priority: models.PriorityCritical}
}

func recommended(key string) Requirement {
	return Requirement{Category: key, Priority: models.PriorityRecommended}
}

// reasonMap is the evidence each dispute reason calls for, in checklist
// order. Exports list exactly these rows.
var reasonMap = map[models.DisputeReason][]Requirement{
	models.ReasonFraudulent: {
		critical(AuthorizationSignals),
		critical(BillingAddressMatch),
		recommended(IPMatch),
		recommended(EmailMatch),
		recommended(ProofOfDelivery),
		recommended(CustomerCommunications),
		recommended(Timeline),
		recommended(Attachments),
	},
	models.ReasonProductNotReceived: {
		critical(ProofOfDelivery),
		critical(TrackingDetails),
		critical(CarrierConfirmation),
		recommended(DeliveryDate),
		recommended(CustomerCommunications),
		recommended(Timeline),
		recommended(Attachments),
	},
	models.ReasonProductUnacceptable: {
		critical(Policies),
		critical(CustomerCommunications),
		recommended(PolicyExcerpt),
		recommended(PolicyURL),
		recommended(ProofOfDelivery),
		recommended(Timeline),
		recommended(Attachments),
	},
	models.ReasonCreditNotProcessed: {
		critical(Policies),
		critical(PolicyExcerpt),
		critical(CustomerCommunications),
		recommended(PolicyURL),
		recommended(Timeline),
		recommended(Attachments),
	},
	models.ReasonDuplicate: {
		critical(Timeline),
		critical(Attachments),
		recommended(CustomerCommunications),
		recommended(AuthorizationSignals),
	},
	models.ReasonOther: {
		critical(Timeline),
		recommended(Attachments),
		recommended(CustomerCommunications),
		recommended(Policies),
		recommended(AuthorizationSignals),
		recommended(ProofOfDelivery),
	},
}

// Requirements returns the checklist definition for reason. Unknown reasons
// fall back to the "other" list.
func Requirements(reason models.DisputeReason) []Requirement {
	reqs := reasonMap[reason.Resolve()]
	return append([]Requirement(nil), reqs...)
}
