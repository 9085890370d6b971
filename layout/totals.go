package layout

import (
	"fmt"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

// totalsBlock lays out the right-anchored totals stack below the table.
// Conditional lines (tax, advance) are omitted entirely when zero; the lines
// below shift up rather than rendering a zero row. Returns the Y below the
// grand total.
func (b *builder) totalsBlock(t model.Totals, symbol string, labelX, anchorX, startY float64) float64 {
	labelFont := api.FontSpec{Size: 10}
	valueFont := api.FontSpec{Size: 10}

	y := startY

	b.text(labelX, y, "Subtotal:", labelFont, api.Muted)
	b.textRight(anchorX, y, model.FormatMoney(t.Subtotal, symbol), valueFont, api.Muted)
	y += 6

	if !t.TaxAmount.IsZero() {
		label := fmt.Sprintf("Tax (%s%%):", t.TaxRate.String())
		b.text(labelX, y, label, labelFont, api.Muted)
		b.textRight(anchorX, y, model.FormatMoney(t.TaxAmount, symbol), valueFont, api.Muted)
		y += 6
	}

	if !t.Advance.IsZero() {
		b.text(labelX, y, "Advance:", labelFont, api.Muted)
		b.textRight(anchorX, y, model.FormatMoney(t.Advance.Neg(), symbol), valueFont, api.Muted)
		y += 6
	}

	y += 2
	totalFont := api.FontSpec{Size: 11, Bold: true}
	b.text(labelX, y, "Total:", totalFont, api.Accent)
	b.textRight(anchorX, y, model.FormatMoney(t.GrandTotal, symbol), totalFont, api.Accent)
	y += 6

	return y
}

// totalsHeight is the vertical room totalsBlock will take for t, counting
// only the conditional lines that will actually render.
func totalsHeight(t model.Totals) float64 {
	h := 6.0 + 2 + 6 // subtotal, gap, grand total
	if !t.TaxAmount.IsZero() {
		h += 6
	}
	if !t.Advance.IsZero() {
		h += 6
	}
	return h
}

// signatureHeight is the vertical room the stamp-and-sign block needs.
const signatureHeight = 40.0

// signatureBlock lays out the stamp slot, the signature rule and its
// caption, anchored at (x, y). A stamp that fails to decode is skipped and
// the rest of the block still renders.
func (b *builder) signatureBlock(stamp, caption string, x, y float64) float64 {
	if stamp != "" {
		if data, format, err := model.DecodeStamp(stamp); err == nil {
			b.image(api.Rect{X: x, Y: y, Width: 40, Height: 25}, data, format)
		}
	}

	b.line(x, y+30, x+50, y+30, api.SignGray, 0.3)
	b.text(x+10, y+36, caption, api.FontSpec{Size: 10}, api.Muted)

	return y + signatureHeight
}
