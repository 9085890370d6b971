package layout

import "github.com/inkfold/docgen/api"

type cellAlign int

const (
	alignLeft cellAlign = iota
	alignCenter
	alignRight
)

// tableColumn describes one column. Width 0 marks the flex column, which
// absorbs whatever width the fixed columns leave over.
type tableColumn struct {
	title string
	width float64
	align cellAlign
	bold  bool
}

// tableCell is one rendered cell value.
type tableCell struct {
	text   string
	bold   bool
	italic bool
	color  api.Color
}

const (
	tableHeaderHeight = 8
	cellPadX          = 1.5
	cellPadY          = 1.8
)

// table lays out a header row plus one row per item, wrapping the flex
// column and breaking to a new page when a row would cross the printable
// bottom. Every new page starts with a repeated header row. Returns the Y
// below the last row.
func (b *builder) table(cols []tableColumn, rows [][]tableCell, x, startY, width float64) float64 {
	headerFont := api.FontSpec{Size: 9, Bold: true}
	rowFont := api.FontSpec{Size: 9}
	rowLine := lineHeight(rowFont)

	// Resolve the flex column width.
	fixed := 0.0
	flexIdx := -1
	for i, c := range cols {
		if c.width == 0 {
			flexIdx = i
			continue
		}
		fixed += c.width
	}
	widths := make([]float64, len(cols))
	for i, c := range cols {
		widths[i] = c.width
	}
	if flexIdx >= 0 {
		widths[flexIdx] = width - fixed
	}

	drawHeader := func(y float64) float64 {
		b.line(x, y, x+width, y, api.RuleBlue, 0.3)
		colX := x
		for i, c := range cols {
			b.cellText(c.title, headerFont, api.Accent, colX, y+5.5, widths[i], c.align)
			colX += widths[i]
		}
		b.line(x, y+tableHeaderHeight, x+width, y+tableHeaderHeight, api.RuleBlue, 0.3)
		return y + tableHeaderHeight
	}

	y := drawHeader(startY)

	for _, row := range rows {
		// Wrap every cell to its column and take the tallest.
		wrapped := make([][]string, len(cols))
		maxLines := 1
		for i := range cols {
			if i >= len(row) {
				continue
			}
			wrapped[i] = b.wrap(row[i].text, rowFont, widths[i]-2*cellPadX)
			if len(wrapped[i]) > maxLines {
				maxLines = len(wrapped[i])
			}
		}
		rowHeight := float64(maxLines)*rowLine + 2*cellPadY

		if y+rowHeight > b.page.PrintableBottom() {
			b.newPage()
			y = drawHeader(b.page.Margins.Top + 5)
		}

		colX := x
		for i := range cols {
			if i >= len(row) {
				colX += widths[i]
				continue
			}
			cell := row[i]
			font := rowFont
			font.Bold = cell.bold || cols[i].bold
			font.Italic = cell.italic
			color := cell.color
			if color.IsZero() {
				color = api.Ink
			}

			lineY := y + cellPadY + rowLine*0.8
			for _, ln := range wrapped[i] {
				b.cellText(ln, font, color, colX, lineY, widths[i], cols[i].align)
				lineY += rowLine
			}
			colX += widths[i]
		}

		y += rowHeight
		b.line(x, y, x+width, y, api.Color{Hex: "#EEEEEE"}, 0.2)
	}

	return y
}

// cellText places text inside a column box honouring the column alignment.
func (b *builder) cellText(s string, font api.FontSpec, color api.Color, colX, y, colWidth float64, align cellAlign) {
	switch align {
	case alignRight:
		b.textRight(colX+colWidth-cellPadX, y, s, font, color)
	case alignCenter:
		b.textCenter(colX+colWidth/2, y, s, font, color)
	default:
		b.text(colX+cellPadX, y, s, font, color)
	}
}
