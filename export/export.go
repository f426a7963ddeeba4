// Package export runs a whole export for a session: validate, verify,
// evaluate, compose and assemble. An export either returns a finished
// artifact or an error, never partial output.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/document"
	"github.com/linesmerrill/dispute-evidence-api/evidence"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/packet"
	"github.com/linesmerrill/dispute-evidence-api/session"
	"github.com/linesmerrill/dispute-evidence-api/verification"
)

// Format is an export output type
type Format string

// Export formats
const (
	FormatPDF Format = "pdf"
	FormatZIP Format = "zip"
)

// Artifact is a finished export
type Artifact struct {
	Format    Format
	Filename  string
	Bytes     []byte
	PageCount int
	Warnings  []string
}

var errNoGate = errors.New("no verification gate configured")

// Exporter turns a session into downloadable files
type Exporter struct {
	Gate     verification.Strategy
	Now      func() time.Time
	Branding string

	compose  func(models.DisputeCase, []models.AttachmentItem, []models.EvidenceItem, document.Options) (document.Result, error)
	assemble func(models.DisputeCase, []models.AttachmentItem, []byte, []models.EvidenceItem, packet.Options) ([]byte, error)
}

// New returns an Exporter guarded by gate
func New(gate verification.Strategy, branding string) *Exporter {
	return &Exporter{
		Gate:     gate,
		Now:      time.Now,
		Branding: branding,
		compose:  document.Compose,
		assemble: packet.Assemble,
	}
}

// PDF exports the evidence document alone
func (e *Exporter) PDF(ctx context.Context, sess *session.Session, token string) (Artifact, error) {
	return e.run(ctx, sess, token, FormatPDF)
}

// ZIP exports the full evidence packet
func (e *Exporter) ZIP(ctx context.Context, sess *session.Session, token string) (Artifact, error) {
	return e.run(ctx, sess, token, FormatZIP)
}

func (e *Exporter) clock() func() time.Time {
	if e.Now != nil {
		return e.Now
	}
	return time.Now
}

func (e *Exporter) run(ctx context.Context, sess *session.Session, token string, format Format) (Artifact, error) {
	c, attachments := sess.Snapshot()
	if !c.HasOrderID() {
		return Artifact{}, &ValidationError{Message: MsgOrderIDRequired}
	}

	if err := e.verify(ctx, sess, strings.TrimSpace(token)); err != nil {
		return Artifact{}, err
	}

	// one clock reading so the PDF footer and the ZIP entries agree
	generated := e.clock()()
	now := func() time.Time { return generated }

	items := evidence.Evaluate(c, attachments)
	compose := e.compose
	if compose == nil {
		compose = document.Compose
	}
	doc, err := compose(c, attachments, items, document.Options{Now: now, Branding: e.Branding})
	if err != nil {
		zap.S().Errorw("export failed", "format", format, "stage", "compose", "error", err)
		return Artifact{}, &GenerationError{Format: format, Err: err}
	}

	art := Artifact{
		Format:    format,
		PageCount: doc.PageCount,
		Warnings:  evidence.Guardrails(c, items, doc.PageCount),
	}
	if len(doc.MissingGlyphs) > 0 {
		art.Warnings = append(art.Warnings, fmt.Sprintf(
			"The PDF font cannot draw these characters and shows them as blank boxes: %s", string(doc.MissingGlyphs)))
	}
	switch format {
	case FormatZIP:
		assemble := e.assemble
		if assemble == nil {
			assemble = packet.Assemble
		}
		data, err := assemble(c, attachments, doc.Bytes, items, packet.Options{Now: now})
		if err != nil {
			zap.S().Errorw("export failed", "format", format, "stage", "assemble", "error", err)
			return Artifact{}, &GenerationError{Format: format, Err: err}
		}
		art.Filename = packet.Filename(c.OrderID)
		art.Bytes = data
	default:
		art.Filename = packet.PDFFilename(c.OrderID)
		art.Bytes = doc.Bytes
	}

	zap.S().Infow("export complete",
		"format", format,
		"file", art.Filename,
		"bytes", len(art.Bytes),
		"pages", art.PageCount,
		"attachments", len(attachments))
	return art, nil
}

// verify passes the gate. A token the session already verified is not sent
// again; any failure discards the cached token.
func (e *Exporter) verify(ctx context.Context, sess *session.Session, token string) error {
	switch e.Gate.(type) {
	case verification.AlwaysAllow, *verification.AlwaysAllow:
		return nil
	}
	if token == "" {
		return &ValidationError{Message: MsgVerificationMissing}
	}
	if token == sess.VerifiedToken() {
		return nil
	}
	if e.Gate == nil {
		sess.ForgetVerification()
		zap.S().Errorw("human verification failed", "error", errNoGate)
		return &VerificationError{Err: errNoGate}
	}

	ok, err := e.Gate.VerifyHuman(ctx, token)
	if err != nil || !ok {
		sess.ForgetVerification()
		zap.S().Warnw("human verification failed", "error", err)
		return &VerificationError{Err: err}
	}
	sess.RememberVerification(token)
	return nil
}

// Checklist evaluates the session's case without exporting
func Checklist(sess *session.Session) (models.DisputeCase, []models.EvidenceItem) {
	c, attachments := sess.Snapshot()
	return c, evidence.Evaluate(c, attachments)
}
