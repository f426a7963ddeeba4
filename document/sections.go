package document

import (
	"fmt"
	"strings"

	"github.com/linesmerrill/dispute-evidence-api/evidence"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/normalize"
)

const (
	titleSize   = 18
	headingSize = 13
	bodySize    = 11

	// wrapWidth is the character budget for wrapped body text at bodySize
	wrapWidth = 86
	indent    = 14

	// Placeholder marks a case field that was left empty
	Placeholder = "—"

	noTimeline    = "No timeline events recorded."
	noAttachments = "No attachments added."
)

// Title is the cover line of every packet document
const Title = "Chargeback Evidence Packet"

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return strings.TrimSpace(s)
}

// AmountLine renders amount and currency as they appear in the header
func AmountLine(c models.DisputeCase) string {
	amount := strings.TrimSpace(c.Amount)
	currency := strings.ToUpper(strings.TrimSpace(c.Currency))
	switch {
	case amount == "" && currency == "":
		return Placeholder
	case currency == "":
		return amount
	case amount == "":
		return Placeholder + " " + currency
	}
	return amount + " " + currency
}

// AttachmentLine is the display form of an attachment in indexes and notes
func AttachmentLine(a models.AttachmentItem) string {
	note := strings.TrimSpace(a.Note)
	if note == "" {
		return a.Filename
	}
	return a.Filename + " — " + note
}

// compose lays out all sections in their fixed order
func compose(l *layout, c models.DisputeCase, attachments []models.AttachmentItem, items []models.EvidenceItem) {
	left := l.geo.MarginLeft

	l.draw(left, titleSize, Title)
	l.skip(6)
	l.draw(left, bodySize,
		"Merchant: "+orPlaceholder(c.MerchantName),
		"Order ID: "+orPlaceholder(c.OrderID),
		"Amount: "+AmountLine(c),
		"Dispute reason: "+c.Reason.Resolve().Label(),
	)

	heading(l, "Evidence summary")
	for _, it := range evidence.ByStrength(items) {
		l.drawHanging(left, left+indent, bodySize, "",
			normalize.WrapText(fmt.Sprintf("[%s] %s: %s", it.Status(), it.Label, it.Rationale), wrapWidth))
	}

	heading(l, "Evidence checklist")
	for _, it := range evidence.ByPriority(items) {
		l.draw(left, bodySize, fmt.Sprintf("[%s] %s (%s)", it.Status(), it.Label, it.Priority))
	}

	heading(l, "Timeline")
	events := 0
	for _, ev := range c.Timeline {
		text := normalize.TimelineEvent(ev)
		if text == "" {
			continue
		}
		events++
		l.drawHanging(left, left+indent, bodySize, "• ", normalize.WrapText(text, wrapWidth))
	}
	if events == 0 {
		l.draw(left, bodySize, noTimeline)
	}

	heading(l, "Attachments")
	for _, a := range attachments {
		l.drawHanging(left, left+indent, bodySize, "• ", normalize.WrapText(AttachmentLine(a), wrapWidth))
	}
	if len(attachments) == 0 {
		l.draw(left, bodySize, noAttachments)
	}
}

func heading(l *layout, text string) {
	l.skip(10)
	// keep a heading with at least its first body line
	l.ensure(2, headingSize)
	l.draw(l.geo.MarginLeft, headingSize, text)
	l.skip(2)
}
