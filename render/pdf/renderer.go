// Package pdf interprets a layout plan as a paginated PDF using absolute
// millimetre coordinates.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"  // stamp decode support
	_ "image/jpeg" // stamp decode support
	_ "image/png"  // stamp decode support

	"github.com/flanksource/commons/logger"
	"github.com/jung-kurt/gofpdf"

	"github.com/inkfold/docgen/layout"
)

const fontFamily = "Helvetica"

// Renderer converts plans to PDF bytes. It holds no state across calls;
// each Render is a pure mapping from plan to artifact.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render walks the plan's pages in order and emits one PDF page per plan
// page. The plan is never mutated. A stamp image that cannot be decoded is
// skipped; the rest of the document still renders.
func (r *Renderer) Render(plan *layout.Plan) ([]byte, error) {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: plan.Size.Width, Ht: plan.Size.Height},
	})
	// The plan owns pagination; never let the library break pages.
	doc.SetAutoPageBreak(false, 0)

	if len(plan.Pages) == 0 {
		doc.AddPage()
	}

	images := 0
	for _, page := range plan.Pages {
		doc.AddPage()
		for _, blk := range page.Blocks {
			switch t := blk.(type) {
			case layout.Text:
				doc.SetFont(fontFamily, fontStyle(t.Font.Bold, t.Font.Italic), t.Font.Size)
				doc.SetTextColor(t.Color.RGB())
				doc.Text(t.Pos.X, t.Pos.Y, t.Content)

			case layout.Line:
				doc.SetDrawColor(t.Color.RGB())
				doc.SetLineWidth(t.Width)
				if t.Dashed {
					doc.SetDashPattern([]float64{1, 1}, 0)
				}
				doc.Line(t.From.X, t.From.Y, t.To.X, t.To.Y)
				if t.Dashed {
					doc.SetDashPattern(nil, 0)
				}

			case layout.Rect:
				style := ""
				if !t.Fill.IsZero() {
					doc.SetFillColor(t.Fill.RGB())
					style += "F"
				}
				if !t.Stroke.IsZero() {
					doc.SetDrawColor(t.Stroke.RGB())
					doc.SetLineWidth(t.StrokeWidth)
					style += "D"
				}
				if style != "" {
					doc.Rect(t.R.X, t.R.Y, t.R.Width, t.R.Height, style)
				}

			case layout.Image:
				images++
				r.drawImage(doc, t, images)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawImage embeds a raster image. Undecodable payloads are skipped so a
// corrupt stamp never aborts the export.
func (r *Renderer) drawImage(doc *gofpdf.Fpdf, img layout.Image, seq int) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(img.Data)); err != nil {
		logger.Debugf("skipping undecodable image block: %v", err)
		return
	}

	name := fmt.Sprintf("img-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: imageType(img.Format)}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	doc.ImageOptions(name, img.R.X, img.R.Y, img.R.Width, img.R.Height, false, opts, 0, "")
}

func fontStyle(bold, italic bool) string {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	return style
}

func imageType(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return "PNG"
	}
}
