package templates

import (
	"bytes"
	"strings"
	"text/template"
)

const attachmentsReadme = `Place proof files for this dispute in this folder.

Useful files include receipts, carrier tracking pages, delivery photos,
signed proof of delivery, screenshots of customer messages and the policy
page the customer accepted at checkout.

index.csv lists every file already included, with its size in bytes and
any note you added.`

const submissionNotes = `Submission notes
================

Dispute reason: {{.ReasonLabel}}
Order ID: {{.OrderID}}
Amount: {{.Amount}}

Attachments:
{{- range .Attachments}}
- {{.}}
{{- else}}
- None
{{- end}}

Timeline:
{{- range .Timeline}}
- {{.}}
{{- else}}
- None
{{- end}}
{{- if .PolicyURL}}

Policy URL: {{.PolicyURL}}
{{- end}}

Review every statement against the attached proof before submitting to the
card issuer or payment processor.`

var (
	submissionNotesTmpl = template.Must(template.New("submission-notes").Parse(submissionNotes))
)

// SubmissionNotesData feeds RenderSubmissionNotes. Every value is rendered
// verbatim; callers normalize text first.
type SubmissionNotesData struct {
	ReasonLabel string
	OrderID     string
	Amount      string
	Attachments []string
	Timeline    []string
	PolicyURL   string
}

// RenderAttachmentsReadme returns the static instructions stored in the
// archive's attachments folder
func RenderAttachmentsReadme() string {
	return attachmentsReadme
}

// RenderSubmissionNotes generates the narrative that accompanies a packet
func RenderSubmissionNotes(data SubmissionNotesData) (string, error) {
	data.PolicyURL = strings.TrimSpace(data.PolicyURL)

	var buf bytes.Buffer
	if err := submissionNotesTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
