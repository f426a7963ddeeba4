// Package normalize turns free-text timeline and attachment entries into the
// canonical form used in every export.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type fixup struct {
	pattern *regexp.Regexp
	replace string
}

// carrier names keep their brand casing no matter what sentence casing did
var carrierFixups = []fixup{
	{regexp.MustCompile(`(?i)\bups\b`), "UPS"},
	{regexp.MustCompile(`(?i)\busps\b`), "USPS"},
	{regexp.MustCompile(`(?i)\bfedex\b`), "FedEx"},
	{regexp.MustCompile(`(?i)\bdhl\b`), "DHL"},
}

var datedEvent = regexp.MustCompile(`(?s)^(\d{4}-\d{2}-\d{2}\s*[-:]\s*)(.+)$`)

// SentenceCase lower-cases text, upper-cases its first character and then
// restores known carrier names. Blank input yields "".
func SentenceCase(text string) string {
	t := strings.TrimSpace(norm.NFC.String(text))
	if t == "" {
		return ""
	}
	lower := strings.ToLower(t)
	first, size := utf8.DecodeRuneInString(lower)
	return CarrierNames(string(unicode.ToUpper(first)) + lower[size:])
}

// CarrierNames restores the brand casing of known carriers ("ups" becomes
// "UPS") and leaves the rest of text untouched
func CarrierNames(text string) string {
	for _, f := range carrierFixups {
		text = f.pattern.ReplaceAllString(text, f.replace)
	}
	return text
}

// TimelineEvent sentence-cases a timeline entry. A leading ISO date and its
// separator ("2026-02-10: ", "2026-02-10 - ") are kept verbatim and only the
// description after them is cased.
func TimelineEvent(text string) string {
	t := strings.TrimSpace(norm.NFC.String(text))
	if t == "" {
		return ""
	}
	if m := datedEvent.FindStringSubmatch(t); m != nil {
		return m[1] + SentenceCase(m[2])
	}
	return SentenceCase(t)
}

// WrapText greedily wraps text into lines of at most maxLineLength
// characters. Words are never split, so a word longer than the limit sits
// alone on its own line. The result always has at least one line.
func WrapText(text string, maxLineLength int) []string {
	words := strings.Fields(norm.NFC.String(text))
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	current := ""
	currentLen := 0
	for _, w := range words {
		wLen := utf8.RuneCountInString(w)
		if current == "" {
			current, currentLen = w, wLen
			continue
		}
		if currentLen+1+wLen <= maxLineLength {
			current += " " + w
			currentLen += 1 + wLen
			continue
		}
		lines = append(lines, current)
		current, currentLen = w, wLen
	}
	return append(lines, current)
}
