// Package document renders a dispute case into a paginated PDF evidence
// document.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// ErrGenerationFailed is returned for any rendering failure. No partial
// output accompanies it.
var ErrGenerationFailed = errors.New("document generation failed")

const (
	footerSize = 8

	// footer baselines, measured up from the bottom edge
	footerOffset   = 36
	brandingOffset = 24
)

// Options controls the parts of the document that do not come from the case
type Options struct {
	// Now is the generation clock. Defaults to time.Now.
	Now func() time.Time
	// Branding is an optional line printed under the footer of every page
	Branding string
}

// Result is a finished document
type Result struct {
	Bytes     []byte
	PageCount int
	// MissingGlyphs lists characters of the case the embedded font cannot
	// draw. They are kept in the text but render as blank boxes.
	MissingGlyphs []rune
}

func a4Geometry() geometry {
	return geometry{
		Width:        595.28,
		Height:       841.89,
		MarginLeft:   48,
		MarginTop:    56,
		MarginBottom: 64,
		LineGap:      4,
	}
}

// Compose renders the case, its attachments and its evaluated evidence.
// Inputs are read only.
func Compose(c models.DisputeCase, attachments []models.AttachmentItem, items []models.EvidenceItem, opts Options) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("pdf render panicked", "panic", r)
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, r)
		}
	}()

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generated := now().UTC()

	pdf := fpdf.New("P", "pt", "", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularTTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldTTF)
	if pdf.Err() {
		zap.S().Errorw("pdf font load failed", "error", pdf.Error())
		return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, pdf.Error())
	}
	w, h := pdf.GetPageSize()
	geo := a4Geometry()
	geo.Width, geo.Height = w, h

	l := newLayout(geo)
	compose(l, c, attachments, items)

	pdf.SetCompression(true)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("dispute-evidence-api", true)
	pdf.SetProducer("dispute-evidence-api", true)
	pdf.SetMargins(geo.MarginLeft, geo.MarginTop, geo.MarginLeft)
	pdf.SetAutoPageBreak(false, geo.MarginBottom)
	pdf.AliasNbPages("")

	footer := fmt.Sprintf("Generated %s · Page %%d of {nb}", generated.Format("2006-01-02 15:04 UTC"))
	pdf.SetFooterFunc(func() {
		pdf.SetFont(fontFamily, "", footerSize)
		pdf.Text(geo.MarginLeft, h-footerOffset, fmt.Sprintf(footer, pdf.PageNo()))
		if opts.Branding != "" {
			pdf.Text(geo.MarginLeft, h-brandingOffset, opts.Branding)
		}
	})

	texts := []string{opts.Branding}
	for i, p := range l.pages {
		pdf.AddPage()
		for _, ln := range p.Lines {
			texts = append(texts, ln.Text)
			style := ""
			if ln.Size > bodySize {
				style = "B"
			}
			pdf.SetFont(fontFamily, style, ln.Size)
			pdf.Text(ln.X, ln.Y, ln.Text)
		}
		if pdf.Err() {
			zap.S().Errorw("pdf render failed", "page", i+1, "error", pdf.Error())
			return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		zap.S().Errorw("pdf output failed", "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	res = Result{Bytes: buf.Bytes(), PageCount: len(l.pages), MissingGlyphs: missingGlyphs(texts...)}
	if len(res.MissingGlyphs) > 0 {
		zap.S().Warnw("pdf text has characters without glyphs", "characters", string(res.MissingGlyphs))
	}
	return res, nil
}
