package api

// Measurer is the text-measurement primitive the layout planner depends on.
// MeasureWidth returns the rendered width in millimetres of text drawn with
// the given font.
type Measurer interface {
	MeasureWidth(text string, font FontSpec) float64
}

// CoreMeasurer measures text against the Helvetica core-font metrics, the
// same AFM widths embedded in every PDF viewer. It needs no font file, so
// plans built with it are deterministic across machines.
type CoreMeasurer struct{}

// NewCoreMeasurer returns the default measurer.
func NewCoreMeasurer() *CoreMeasurer {
	return &CoreMeasurer{}
}

// MeasureWidth implements Measurer.
func (m *CoreMeasurer) MeasureWidth(text string, font FontSpec) float64 {
	widths := &helveticaWidths
	if font.Bold {
		widths = &helveticaBoldWidths
	}

	var units int
	for _, r := range text {
		if r >= 0x20 && r <= 0x7E {
			units += int(widths[r-0x20])
		} else {
			// Non-ASCII falls back to the average glyph width.
			units += 556
		}
	}

	// Widths are in 1/1000 of the font size; font size is in points.
	return PtToMM(float64(units) / 1000.0 * font.Size)
}

// Helvetica character widths for 0x20..0x7E in 1/1000 em units.
var helveticaWidths = [95]int16{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278,
	584, 584, 584, 556, 1015, 667, 667, 722, 722, 667, 611, 778, 722, 278,
	500, 667, 556, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 278, 278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556, 556, 556, 333, 500,
	278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

// Helvetica-Bold character widths for 0x20..0x7E in 1/1000 em units.
var helveticaBoldWidths = [95]int16{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333,
	584, 584, 584, 611, 975, 722, 722, 722, 722, 667, 611, 778, 722, 278,
	556, 722, 611, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 333, 278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
	333, 611, 611, 278, 278, 556, 278, 889, 611, 611, 611, 611, 389, 556,
	333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}
