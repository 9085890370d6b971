// Package layout turns a document model into a renderer-agnostic plan: a
// flat, per-page list of positioned draw instructions. Building a plan is a
// pure function of the model, the page geometry and the text measurer; every
// renderer consumes the same plan instead of re-deriving positions.
package layout

import "github.com/inkfold/docgen/api"

// Plan is the complete positioned description of a document.
type Plan struct {
	Size  api.PageSize
	Pages []Page
}

// Page holds the draw instructions of one output page, in draw order.
type Page struct {
	Blocks []Block
}

// Block is one draw instruction. All coordinates are absolute millimetres;
// horizontal alignment is already resolved, so renderers draw blocks as-is.
type Block interface {
	block()
}

// Text draws a single line of text. Pos is the left end of the baseline.
type Text struct {
	Pos     api.Point
	Content string
	Font    api.FontSpec
	Color   api.Color
}

// Line draws a straight rule.
type Line struct {
	From   api.Point
	To     api.Point
	Color  api.Color
	Width  float64
	Dashed bool
}

// Rect draws a rectangle, filled and/or stroked depending on which colors
// are set.
type Rect struct {
	R           api.Rect
	Fill        api.Color
	Stroke      api.Color
	StrokeWidth float64
}

// Image draws a decoded raster image into a fixed slot. Format is the
// encoding of Data ("png", "jpeg", "gif").
type Image struct {
	R      api.Rect
	Data   []byte
	Format string
}

func (Text) block()  {}
func (Line) block()  {}
func (Rect) block()  {}
func (Image) block() {}

// PageCount returns the number of pages in the plan.
func (p *Plan) PageCount() int {
	return len(p.Pages)
}

// Texts returns the text blocks of one page in draw order, a convenience for
// renderers and tests.
func (p *Plan) Texts(page int) []Text {
	if page < 0 || page >= len(p.Pages) {
		return nil
	}
	var out []Text
	for _, b := range p.Pages[page].Blocks {
		if t, ok := b.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}
