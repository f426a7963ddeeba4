// Package packet bundles a composed evidence document and the case data
// derived from it into a ZIP archive ready for submission.
package packet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/document"
	"github.com/linesmerrill/dispute-evidence-api/evidence"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/normalize"
	"github.com/linesmerrill/dispute-evidence-api/templates"
)

// Archive entry paths
const (
	EntryDocument        = "evidence.pdf"
	EntrySummary         = "summary.txt"
	EntryTimeline        = "timeline.csv"
	EntryAttachmentsDir  = "attachments/"
	EntryAttachmentsNote = "attachments/README.txt"
	EntryAttachmentIndex = "attachments/index.csv"
	EntrySubmissionNotes = "submission-notes.txt"

	timelineHeader = "index,event"
	indexHeader    = "filename,size_bytes,note"
)

// ErrAssemblyFailed is returned when the archive cannot be written
var ErrAssemblyFailed = errors.New("packet assembly failed")

// Options controls archive metadata
type Options struct {
	// Now stamps every entry. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	name string
	body []byte
}

// Assemble builds the ZIP packet. The document bytes are stored verbatim and
// inputs are never modified.
func Assemble(c models.DisputeCase, attachments []models.AttachmentItem, doc []byte, items []models.EvidenceItem, opts Options) ([]byte, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	modified := now().UTC()

	events := TimelineEvents(c)
	names := make([]string, len(attachments))
	for i, a := range attachments {
		names[i] = a.Filename
	}
	stored := entryNames(names)

	notes, err := SubmissionNotes(c, attachments, stored, events)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
	}

	entries := []entry{
		{EntryDocument, doc},
		{EntrySummary, []byte(Summary(c, items))},
		{EntryTimeline, []byte(TimelineCSV(events))},
		{EntryAttachmentsNote, []byte(templates.RenderAttachmentsReadme())},
		{EntryAttachmentIndex, []byte(IndexCSV(attachments, stored))},
	}
	for i, a := range attachments {
		entries = append(entries, entry{EntryAttachmentsDir + stored[i], a.Content})
	}
	entries = append(entries, entry{EntrySubmissionNotes, []byte(notes)})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			zap.S().Errorw("zip entry header failed", "entry", e.name, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
		}
		if _, err := w.Write(e.body); err != nil {
			zap.S().Errorw("zip entry write failed", "entry", e.name, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
		}
	}
	if err := zw.Close(); err != nil {
		zap.S().Errorw("zip close failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
	}
	return buf.Bytes(), nil
}

// TimelineEvents normalizes the case timeline, dropping events that are
// empty after trimming
func TimelineEvents(c models.DisputeCase) []string {
	events := make([]string, 0, len(c.Timeline))
	for _, ev := range c.Timeline {
		if text := normalize.TimelineEvent(ev); text != "" {
			events = append(events, text)
		}
	}
	return events
}

// summaryFields is the fixed field order of summary.txt
func summaryFields(c models.DisputeCase) [][2]string {
	return [][2]string{
		{"Merchant", c.MerchantName},
		{"Order ID", c.OrderID},
		{"Amount", c.Amount},
		{"Currency", c.Currency},
		{"Dispute reason", c.Reason.Resolve().Label()},
		{"Customer email", c.CustomerEmail},
		{"Billing address", c.BillingAddress},
		{"IP address", c.IPAddress},
		{"Tracking number", c.TrackingNumber},
		{"Carrier", normalize.CarrierNames(c.Carrier)},
		{"Delivery date", c.DeliveryDate},
		{"Policy URL", c.PolicyURL},
		{"Refund policy excerpt", c.RefundPolicy},
		{"Communication notes", c.CommunicationNotes},
	}
}

// Summary renders summary.txt: one line per case field followed by the
// checklist in priority order
func Summary(c models.DisputeCase, items []models.EvidenceItem) string {
	lines := make([]string, 0, 16+len(items))
	for _, f := range summaryFields(c) {
		// multi-line values collapse so each field keeps to one line
		value := strings.Join(strings.Fields(f[1]), " ")
		if value == "" {
			value = document.Placeholder
		}
		lines = append(lines, f[0]+": "+value)
	}
	lines = append(lines, "", "Checklist:")
	for _, it := range evidence.ByPriority(items) {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", it.Label, it.Priority, it.Status()))
	}
	return strings.Join(lines, "\n")
}

// TimelineCSV renders timeline.csv from normalized events
func TimelineCSV(events []string) string {
	rows := make([]string, len(events))
	for i, ev := range events {
		rows[i] = strconv.Itoa(i+1) + "," + quote(ev)
	}
	return csvLines(timelineHeader, rows)
}

// IndexCSV renders attachments/index.csv. stored holds the archive name of
// each attachment.
func IndexCSV(attachments []models.AttachmentItem, stored []string) string {
	rows := make([]string, len(attachments))
	for i, a := range attachments {
		size := a.Size
		if size == 0 {
			size = int64(len(a.Content))
		}
		rows[i] = quote(stored[i]) + "," + strconv.FormatInt(size, 10) + "," + quote(strings.TrimSpace(a.Note))
	}
	return csvLines(indexHeader, rows)
}

// SubmissionNotes renders submission-notes.txt. stored holds the archive
// name of each attachment, as in IndexCSV.
func SubmissionNotes(c models.DisputeCase, attachments []models.AttachmentItem, stored []string, events []string) (string, error) {
	lines := make([]string, len(attachments))
	for i, a := range attachments {
		a.Filename = stored[i]
		lines[i] = document.AttachmentLine(a)
	}
	orderID := strings.TrimSpace(c.OrderID)
	if orderID == "" {
		orderID = document.Placeholder
	}
	return templates.RenderSubmissionNotes(templates.SubmissionNotesData{
		ReasonLabel: c.Reason.Resolve().Label(),
		OrderID:     orderID,
		Amount:      document.AmountLine(c),
		Attachments: lines,
		Timeline:    events,
		PolicyURL:   c.PolicyURL,
	})
}
