package document

import (
	"unicode"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// fontFamily is the embedded UTF-8 family every page is set in
const fontFamily = "Go"

var (
	regularTTF = goregular.TTF
	boldTTF    = gobold.TTF

	coverage = mustParseFont(regularTTF)
)

func mustParseFont(src []byte) *sfnt.Font {
	f, err := sfnt.Parse(src)
	if err != nil {
		panic(err)
	}
	return f
}

// missingGlyphs returns the runes of texts the embedded font has no glyph
// for, once each, in order of first appearance
func missingGlyphs(texts ...string) []rune {
	var (
		buf     sfnt.Buffer
		missing []rune
		seen    = map[rune]bool{}
	)
	for _, t := range texts {
		for _, r := range t {
			if seen[r] || unicode.IsSpace(r) || unicode.IsControl(r) {
				continue
			}
			seen[r] = true
			if idx, err := coverage.GlyphIndex(&buf, r); err != nil || idx == 0 {
				missing = append(missing, r)
			}
		}
	}
	return missing
}
