package document

// geometry is the fixed page frame the layout fills, in points
type geometry struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginTop    float64
	MarginBottom float64
	LineGap      float64
}

// line is one positioned run of text. Y is the baseline.
type line struct {
	X    float64
	Y    float64
	Size float64
	Text string
}

type page struct {
	Lines []line
}

// layout places text top to bottom and opens a new page whenever the next
// draw does not fit. Committed lines never move.
type layout struct {
	geo   geometry
	pages []page
	y     float64
}

func newLayout(geo geometry) *layout {
	l := &layout{geo: geo}
	l.newPage()
	return l
}

func (l *layout) newPage() {
	l.pages = append(l.pages, page{})
	l.y = l.geo.MarginTop
}

func (l *layout) lineHeight(size float64) float64 {
	return size + l.geo.LineGap
}

func (l *layout) remaining() float64 {
	return l.geo.Height - l.geo.MarginBottom - l.y
}

// ensure opens a new page unless count lines of the given size fit below
// the cursor
func (l *layout) ensure(count int, size float64) {
	required := float64(count) * l.lineHeight(size)
	if required > l.remaining() {
		l.newPage()
	}
}

// draw commits a block of lines at x, keeping the block on one page when a
// fresh page can hold it
func (l *layout) draw(x, size float64, texts ...string) {
	capacity := int((l.geo.Height - l.geo.MarginBottom - l.geo.MarginTop) / l.lineHeight(size))
	if len(texts) > capacity {
		for _, t := range texts {
			l.draw(x, size, t)
		}
		return
	}

	l.ensure(len(texts), size)
	cur := &l.pages[len(l.pages)-1]
	for _, t := range texts {
		cur.Lines = append(cur.Lines, line{X: x, Y: l.y + size, Size: size, Text: t})
		l.y += l.lineHeight(size)
	}
}

// drawHanging draws a wrapped entry: the first line at x with a prefix, the
// continuation lines at indent
func (l *layout) drawHanging(x, indent, size float64, prefix string, wrapped []string) {
	if len(wrapped) == 0 {
		return
	}
	capacity := int((l.geo.Height - l.geo.MarginBottom - l.geo.MarginTop) / l.lineHeight(size))
	if len(wrapped) > capacity {
		l.draw(x, size, prefix+wrapped[0])
		for _, t := range wrapped[1:] {
			l.draw(indent, size, t)
		}
		return
	}

	l.ensure(len(wrapped), size)
	cur := &l.pages[len(l.pages)-1]
	for i, t := range wrapped {
		lx, text := indent, t
		if i == 0 {
			lx, text = x, prefix+t
		}
		cur.Lines = append(cur.Lines, line{X: lx, Y: l.y + size, Size: size, Text: text})
		l.y += l.lineHeight(size)
	}
}

// skip moves the cursor down by h without drawing. Running past the bottom
// is fine; the next draw opens a new page.
func (l *layout) skip(h float64) {
	l.y += h
}
