// Package api holds the geometry and style primitives shared by the layout
// planner and every renderer. Lengths are millimetres, font sizes are points.
package api

import (
	"strconv"
	"strings"
)

// Point is an absolute position on a page.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an absolute rectangle on a page.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Margins describes the non-printable border of a page.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// PageSize is the physical drawing surface a plan is built for.
type PageSize struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Margins Margins `json:"margins"`
}

// PrintableWidth returns the width between the left and right margins.
func (p PageSize) PrintableWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

// PrintableBottom returns the lowest Y a block may occupy.
func (p PageSize) PrintableBottom() float64 {
	return p.Height - p.Margins.Bottom
}

// A4 is the default page for invoices and delivery challans.
var A4 = PageSize{
	Width:   210,
	Height:  297,
	Margins: Margins{Top: 10, Right: 15, Bottom: 10, Left: 14},
}

// SlipPanel is one panel of a multi-copy fee slip: an A4 landscape sheet cut
// into three vertical strips.
var SlipPanel = PageSize{
	Width:   99,
	Height:  210,
	Margins: Margins{Top: 8, Right: 6, Bottom: 8, Left: 6},
}

// Color is an RGB color in #RRGGBB (or #RGB) hex notation.
type Color struct {
	Hex string `json:"hex"`
}

// Document palette, matching the blue/gray scheme of the templates.
var (
	Accent   = Color{Hex: "#3B82F6"} // headings, labels, grand total
	Ink      = Color{Hex: "#000000"}
	Muted    = Color{Hex: "#505050"} // secondary text
	RuleBlue = Color{Hex: "#C8DCFF"} // table header rules
	RuleGray = Color{Hex: "#C8C8C8"} // totals separator
	SignGray = Color{Hex: "#969696"} // signature rule
	PanelBG  = Color{Hex: "#FFFFFF"}
)

// RGB parses the hex notation into 0-255 channels. Malformed values come
// back black rather than failing; color is never worth aborting a render.
func (c Color) RGB() (r, g, b int) {
	hex := strings.TrimPrefix(c.Hex, "#")

	if len(hex) == 6 {
		if val, err := strconv.ParseInt(hex[0:2], 16, 0); err == nil {
			r = int(val)
		}
		if val, err := strconv.ParseInt(hex[2:4], 16, 0); err == nil {
			g = int(val)
		}
		if val, err := strconv.ParseInt(hex[4:6], 16, 0); err == nil {
			b = int(val)
		}
	} else if len(hex) == 3 {
		if val, err := strconv.ParseInt(string(hex[0])+string(hex[0]), 16, 0); err == nil {
			r = int(val)
		}
		if val, err := strconv.ParseInt(string(hex[1])+string(hex[1]), 16, 0); err == nil {
			g = int(val)
		}
		if val, err := strconv.ParseInt(string(hex[2])+string(hex[2]), 16, 0); err == nil {
			b = int(val)
		}
	}

	return r, g, b
}

// IsZero reports whether the color was left unset.
func (c Color) IsZero() bool {
	return c.Hex == ""
}

// FontSpec selects a face from the built-in family. Size is in points.
type FontSpec struct {
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// PtToMM converts a length in points to millimetres.
func PtToMM(pt float64) float64 {
	return pt * 25.4 / 72.0
}
