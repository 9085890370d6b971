package layout

import (
	"strings"

	"github.com/inkfold/docgen/api"
)

// builder accumulates blocks page by page with a vertical cursor. It exists
// only for the duration of one Build call; plans never share state.
type builder struct {
	page    api.PageSize
	measure api.Measurer
	pages   []Page
}

func newBuilder(page api.PageSize, m api.Measurer) *builder {
	return &builder{
		page:    page,
		measure: m,
		pages:   []Page{{}},
	}
}

func (b *builder) cur() *Page {
	return &b.pages[len(b.pages)-1]
}

func (b *builder) newPage() {
	b.pages = append(b.pages, Page{})
}

func (b *builder) add(blk Block) {
	b.cur().Blocks = append(b.cur().Blocks, blk)
}

// text places a line with its left baseline end at (x, y).
func (b *builder) text(x, y float64, content string, font api.FontSpec, color api.Color) {
	if content == "" {
		return
	}
	b.add(Text{Pos: api.Point{X: x, Y: y}, Content: content, Font: font, Color: color})
}

// textRight places a line so its right edge sits at anchorX.
func (b *builder) textRight(anchorX, y float64, content string, font api.FontSpec, color api.Color) {
	b.text(anchorX-b.measure.MeasureWidth(content, font), y, content, font, color)
}

// textCenter places a line centred on centerX.
func (b *builder) textCenter(centerX, y float64, content string, font api.FontSpec, color api.Color) {
	b.text(centerX-b.measure.MeasureWidth(content, font)/2, y, content, font, color)
}

func (b *builder) line(x1, y1, x2, y2 float64, color api.Color, width float64) {
	b.add(Line{
		From:  api.Point{X: x1, Y: y1},
		To:    api.Point{X: x2, Y: y2},
		Color: color,
		Width: width,
	})
}

func (b *builder) image(r api.Rect, data []byte, format string) {
	b.add(Image{R: r, Data: data, Format: format})
}

func (b *builder) plan() *Plan {
	return &Plan{Size: b.page, Pages: b.pages}
}

// lineHeight is the vertical advance for a font, sized so 10pt text steps
// roughly 5mm, matching the print templates.
func lineHeight(font api.FontSpec) float64 {
	return api.PtToMM(font.Size * 1.4)
}

// wrap breaks text at word boundaries so each line fits maxWidth. A single
// word wider than the column stays unbroken and overflows; the templates
// never hyphenate.
func (b *builder) wrap(text string, font api.FontSpec, maxWidth float64) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		cur := words[0]
		for _, w := range words[1:] {
			candidate := cur + " " + w
			if b.measure.MeasureWidth(candidate, font) > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = candidate
		}
		lines = append(lines, cur)
	}

	return lines
}

// headerLine is one label/value pair of the top-right header stack.
type headerLine struct {
	label      string
	value      string
	labelColor api.Color
	valueColor api.Color
}

// headerStack lays out the right-anchored header block: each line renders
// label and value as one right-flush unit, the label ending exactly where
// the measured value begins. Lines with empty values are skipped, no blank
// line reserved. Returns the Y below the last line.
func (b *builder) headerStack(lines []headerLine, anchorX, startY float64) float64 {
	labelFont := api.FontSpec{Size: 10, Bold: true}
	valueFont := api.FontSpec{Size: 10}

	y := startY
	for _, l := range lines {
		if l.value == "" {
			continue
		}

		value := " " + l.value
		valueWidth := b.measure.MeasureWidth(value, valueFont)

		b.textRight(anchorX-valueWidth, y, l.label, labelFont, l.labelColor)
		b.textRight(anchorX, y, value, valueFont, l.valueColor)
		y += 6
	}

	return y
}

// partyStack lays out a left-anchored party block: optional headline, the
// name emphasized (optionally underlined), wrapped address lines, then the
// contact line. Returns the Y below the last line.
func (b *builder) partyStack(p partyLayout, x, y, colWidth float64) float64 {
	bodyFont := api.FontSpec{Size: 10}

	if p.headline != "" {
		b.text(x, y, p.headline, bodyFont, api.Ink)
		y += 5
	}

	if p.name != "" {
		nameFont := api.FontSpec{Size: p.nameSize, Bold: true}
		b.text(x, y, p.name, nameFont, p.nameColor)
		if p.underlineName {
			w := b.measure.MeasureWidth(p.name, nameFont)
			b.line(x, y+1, x+w, y+1, api.Ink, 0.3)
		}
		y += lineHeight(nameFont) + 1
	}

	for _, raw := range p.lines {
		for _, ln := range b.wrap(raw, bodyFont, colWidth) {
			b.text(x, y, ln, bodyFont, api.Ink)
			y += 5
		}
	}

	if p.contact != "" {
		b.text(x, y, p.contact, bodyFont, api.Ink)
		y += 5
	}

	return y
}

type partyLayout struct {
	headline      string
	name          string
	nameSize      float64
	nameColor     api.Color
	underlineName bool
	lines         []string
	contact       string
}
