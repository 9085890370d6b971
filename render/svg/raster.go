package svg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // stamp decode support
	"image/jpeg"
	"image/png"

	"github.com/flanksource/commons/logger"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/layout"
)

// DefaultDPI gives slip panels crisp print-quality output.
const DefaultDPI = 150

// Rasterizer draws plans onto a pixel canvas and encodes the result. The
// same drawn surface backs every raster format; PNG and JPEG differ only in
// the final encode.
type Rasterizer struct {
	DPI float64

	regular, bold, italic, boldItalic *sfnt.Font
}

// NewRasterizer parses the embedded font faces once and returns a
// rasterizer at the default DPI.
func NewRasterizer() (*Rasterizer, error) {
	r := &Rasterizer{DPI: DefaultDPI}

	var err error
	if r.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	if r.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	if r.italic, err = opentype.Parse(goitalic.TTF); err != nil {
		return nil, fmt.Errorf("parsing italic font: %w", err)
	}
	if r.boldItalic, err = opentype.Parse(gobolditalic.TTF); err != nil {
		return nil, fmt.Errorf("parsing bold-italic font: %w", err)
	}

	return r, nil
}

// RenderImage rasterizes the plan's first page, duplicated once per copy
// label when labels are given, into a white-backed RGBA canvas.
func (r *Rasterizer) RenderImage(plan *layout.Plan, copies []string) (image.Image, error) {
	if len(plan.Pages) == 0 {
		return nil, fmt.Errorf("empty plan")
	}
	if len(copies) == 0 {
		copies = []string{""}
	}

	scale := r.DPI / 25.4
	panelW := int(plan.Size.Width*scale + 0.5)
	height := int(plan.Size.Height*scale + 0.5)
	width := panelW * len(copies)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, label := range copies {
		offset := float64(i * panelW)
		r.drawPage(img, plan.Pages[0], offset, scale)

		if label != "" {
			capFont := api.FontSpec{Size: 7, Italic: true}
			x := offset + (plan.Size.Width/2)*scale
			y := (plan.Size.Height - 3) * scale
			r.drawTextCentered(img, label, capFont, api.Muted, x, y, scale)
		}
		if i > 0 {
			r.drawDashedVertical(img, i*panelW, height)
		}
	}

	return img, nil
}

// Encode re-encodes a drawn surface into the requested raster format.
func (r *Rasterizer) Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding PNG: %w", err)
		}
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 92}); err != nil {
			return nil, fmt.Errorf("encoding JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported raster format %q", format)
	}
	return buf.Bytes(), nil
}

func (r *Rasterizer) drawPage(img *image.RGBA, page layout.Page, offsetX, scale float64) {
	for _, blk := range page.Blocks {
		switch t := blk.(type) {
		case layout.Text:
			r.drawText(img, t.Content, t.Font, t.Color, offsetX+t.Pos.X*scale, t.Pos.Y*scale, scale)

		case layout.Line:
			r.drawLine(img, t, offsetX, scale)

		case layout.Rect:
			if !t.Fill.IsZero() {
				fillRect(img,
					int(offsetX+t.R.X*scale), int(t.R.Y*scale),
					int(t.R.Width*scale), int(t.R.Height*scale), rgba(t.Fill))
			}

		case layout.Image:
			r.drawEmbedded(img, t, offsetX, scale)
		}
	}
}

func (r *Rasterizer) face(spec api.FontSpec, scale float64) (font.Face, error) {
	f := r.regular
	switch {
	case spec.Bold && spec.Italic:
		f = r.boldItalic
	case spec.Bold:
		f = r.bold
	case spec.Italic:
		f = r.italic
	}
	// Scale is px per mm; face sizes are points.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    api.PtToMM(spec.Size) * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (r *Rasterizer) drawText(img *image.RGBA, s string, spec api.FontSpec, col api.Color, x, y, scale float64) {
	face, err := r.face(spec, scale)
	if err != nil {
		logger.Debugf("skipping text run, font face unavailable: %v", err)
		return
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rgba(col)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

func (r *Rasterizer) drawTextCentered(img *image.RGBA, s string, spec api.FontSpec, col api.Color, centerX, y, scale float64) {
	face, err := r.face(spec, scale)
	if err != nil {
		return
	}
	defer face.Close()

	d := font.Drawer{Dst: img, Src: image.NewUniform(rgba(col)), Face: face}
	w := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(centerX*64) - w/2,
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(s)
}

// drawLine handles the axis-aligned rules the layout produces; plans contain
// no diagonals.
func (r *Rasterizer) drawLine(img *image.RGBA, l layout.Line, offsetX, scale float64) {
	thickness := int(l.Width*scale + 0.5)
	if thickness < 1 {
		thickness = 1
	}
	col := rgba(l.Color)

	x1 := int(offsetX + l.From.X*scale)
	x2 := int(offsetX + l.To.X*scale)
	y1 := int(l.From.Y * scale)
	y2 := int(l.To.Y * scale)

	if y1 == y2 {
		fillRect(img, min(x1, x2), y1-thickness/2, abs(x2-x1), thickness, col)
	} else {
		fillRect(img, x1-thickness/2, min(y1, y2), thickness, abs(y2-y1), col)
	}
}

func (r *Rasterizer) drawDashedVertical(img *image.RGBA, x, height int) {
	col := rgba(api.SignGray)
	const dash, gap = 12, 8
	for y := 0; y < height; y += dash + gap {
		fillRect(img, x-1, y, 2, dash, col)
	}
}

// drawEmbedded places a stamp image. Raster payloads decode through the
// stdlib; SVG payloads rasterize through oksvg. Either failing skips the
// stamp and keeps the rest of the panel.
func (r *Rasterizer) drawEmbedded(img *image.RGBA, blk layout.Image, offsetX, scale float64) {
	dst := image.Rect(
		int(offsetX+blk.R.X*scale), int(blk.R.Y*scale),
		int(offsetX+(blk.R.X+blk.R.Width)*scale), int((blk.R.Y+blk.R.Height)*scale),
	)

	if blk.Format == "svg" {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(blk.Data))
		if err != nil {
			logger.Debugf("skipping unparseable SVG stamp: %v", err)
			return
		}
		icon.SetTarget(float64(dst.Min.X), float64(dst.Min.Y), float64(dst.Dx()), float64(dst.Dy()))
		scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
		icon.Draw(rasterx.NewDasher(img.Bounds().Dx(), img.Bounds().Dy(), scanner), 1.0)
		return
	}

	decoded, _, err := image.Decode(bytes.NewReader(blk.Data))
	if err != nil {
		logger.Debugf("skipping undecodable stamp image: %v", err)
		return
	}
	drawScaled(img, dst, decoded)
}

// drawScaled maps src into dst with nearest-neighbour sampling; stamps are
// small enough that resampling quality is irrelevant.
func drawScaled(img *image.RGBA, dst image.Rectangle, src image.Image) {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || dst.Dx() == 0 || dst.Dy() == 0 {
		return
	}
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		sy := sb.Min.Y + (y-dst.Min.Y)*sb.Dy()/dst.Dy()
		for x := dst.Min.X; x < dst.Max.X; x++ {
			sx := sb.Min.X + (x-dst.Min.X)*sb.Dx()/dst.Dx()
			img.Set(x, y, src.At(sx, sy))
		}
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Over)
}

func rgba(c api.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
