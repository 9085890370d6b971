// Package svg interprets a layout plan as vector markup and as fixed-size
// raster images. The slip form duplicates the plan into side-by-side panels
// meant to be printed once and cut into copies.
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"

	svgo "github.com/ajstarks/svgo"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/layout"
)

// Coordinates are emitted in tenths of a millimetre so svgo's integer API
// keeps sub-millimetre placement.
const unitsPerMM = 10

// Renderer serializes plans to SVG markup. Stateless across calls.
type Renderer struct{}

// NewRenderer creates an SVG renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render serializes the plan's pages stacked vertically into one SVG
// document. The plan is not mutated.
func (r *Renderer) Render(plan *layout.Plan) ([]byte, error) {
	w := mm(plan.Size.Width)
	h := mm(plan.Size.Height) * len(plan.Pages)

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.StartviewUnit(float2int(plan.Size.Width), float2int(plan.Size.Height)*len(plan.Pages), "mm", 0, 0, w, h)
	canvas.Rect(0, 0, w, h, "fill:white")

	for i, page := range plan.Pages {
		canvas.Gtransform(fmt.Sprintf("translate(0,%d)", i*mm(plan.Size.Height)))
		drawPage(canvas, page)
		canvas.Gend()
	}

	canvas.End()
	return buf.Bytes(), nil
}

// RenderSlip serializes the plan's first page once per copy label, panels
// side by side separated by dashed cut lines, each panel captioned with its
// copy name.
func (r *Renderer) RenderSlip(plan *layout.Plan, copies []string) ([]byte, error) {
	if len(copies) == 0 {
		copies = []string{""}
	}
	if len(plan.Pages) == 0 {
		return nil, fmt.Errorf("empty plan")
	}

	panelW := mm(plan.Size.Width)
	h := mm(plan.Size.Height)
	w := panelW * len(copies)

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.StartviewUnit(float2int(plan.Size.Width)*len(copies), float2int(plan.Size.Height), "mm", 0, 0, w, h)
	canvas.Rect(0, 0, w, h, "fill:white")

	for i, label := range copies {
		canvas.Gtransform(fmt.Sprintf("translate(%d,0)", i*panelW))
		drawPage(canvas, plan.Pages[0])
		if label != "" {
			style := textStyle(api.FontSpec{Size: 7, Italic: true}, api.Muted) + ";text-anchor:middle"
			canvas.Text(panelW/2, mm(plan.Size.Height-3), label, style)
		}
		canvas.Gend()

		if i > 0 {
			x := i * panelW
			canvas.Line(x, 0, x, h, "stroke:#969696;stroke-width:3;stroke-dasharray:30,20")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawPage(canvas *svgo.SVG, page layout.Page) {
	for _, blk := range page.Blocks {
		switch t := blk.(type) {
		case layout.Text:
			canvas.Text(mm(t.Pos.X), mm(t.Pos.Y), t.Content, textStyle(t.Font, t.Color))

		case layout.Line:
			style := fmt.Sprintf("stroke:%s;stroke-width:%d", hex(t.Color), mm(t.Width))
			if t.Dashed {
				style += ";stroke-dasharray:30,20"
			}
			canvas.Line(mm(t.From.X), mm(t.From.Y), mm(t.To.X), mm(t.To.Y), style)

		case layout.Rect:
			style := "fill:none"
			if !t.Fill.IsZero() {
				style = "fill:" + hex(t.Fill)
			}
			if !t.Stroke.IsZero() {
				style += fmt.Sprintf(";stroke:%s;stroke-width:%d", hex(t.Stroke), mm(t.StrokeWidth))
			}
			canvas.Rect(mm(t.R.X), mm(t.R.Y), mm(t.R.Width), mm(t.R.Height), style)

		case layout.Image:
			href := "data:image/" + mediaType(t.Format) + ";base64," +
				base64.StdEncoding.EncodeToString(t.Data)
			canvas.Image(mm(t.R.X), mm(t.R.Y), mm(t.R.Width), mm(t.R.Height), href,
				"preserveAspectRatio=\"xMidYMid meet\"")
		}
	}
}

func textStyle(font api.FontSpec, color api.Color) string {
	// Font size in viewBox units: points converted to mm, scaled.
	size := api.PtToMM(font.Size) * unitsPerMM
	style := fmt.Sprintf("font-family:Helvetica,Arial,sans-serif;font-size:%.1fpx;fill:%s", size, hex(color))
	if font.Bold {
		style += ";font-weight:bold"
	}
	if font.Italic {
		style += ";font-style:italic"
	}
	return style
}

func mediaType(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "jpeg"
	case "gif":
		return "gif"
	case "svg":
		return "svg+xml"
	default:
		return "png"
	}
}

func hex(c api.Color) string {
	if c.IsZero() {
		return "#000000"
	}
	return c.Hex
}

func mm(v float64) int {
	return int(v*unitsPerMM + 0.5)
}

func float2int(v float64) int {
	return int(v + 0.5)
}
