package evidence

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// MaxRecommendedPages is the document length above which issuers tend to
// skim or truncate a submission
const MaxRecommendedPages = 10

// Guardrails returns the warnings shown before an export is handed to the
// merchant. pageCount is the composed document's page count, or 0 when no
// document has been composed yet.
func Guardrails(c models.DisputeCase, items []models.EvidenceItem, pageCount int) []string {
	var warnings []string

	for _, it := range MissingCritical(items) {
		warnings = append(warnings, fmt.Sprintf("Missing critical evidence: %s.", it.Label))
	}
	if NeedsCompletenessWarning(items) {
		warnings = append(warnings, fmt.Sprintf("%d recommended evidence items are missing; the packet may be weak.", MissingRecommended(items)))
	}

	if amount := strings.TrimSpace(c.Amount); amount != "" {
		if _, ok := ParseAmount(amount); !ok {
			warnings = append(warnings, fmt.Sprintf("Amount %q is not a positive number.", amount))
		}
	}
	if code := strings.TrimSpace(c.Currency); code != "" {
		if _, err := currency.ParseISO(strings.ToUpper(code)); err != nil {
			warnings = append(warnings, fmt.Sprintf("Currency %q is not an ISO 4217 code.", code))
		}
	}
	if pageCount > MaxRecommendedPages {
		warnings = append(warnings, fmt.Sprintf("The document runs to %d pages; issuers may truncate long submissions.", pageCount))
	}
	return warnings
}

// ParseAmount reads a free-text amount such as "1,249.90". It reports false
// unless the value is a positive decimal.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
