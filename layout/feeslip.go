package layout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

// buildFeeSlip lays out a single slip panel. The slip renderer duplicates
// the panel side by side, one copy per configured label, so everything here
// must fit one fixed-size panel; fee slips never paginate.
func buildFeeSlip(f *model.FeeSlip, page api.PageSize, m api.Measurer) *Plan {
	b := newBuilder(page, m)

	leftX := page.Margins.Left
	rightX := page.Width - page.Margins.Right
	centerX := page.Width / 2
	width := page.PrintableWidth()

	// Institution banner.
	y := page.Margins.Top + 6.0
	b.textCenter(centerX, y, f.Institution.Name, api.FontSpec{Size: 12, Bold: true}, api.Accent)
	y += 5
	for _, ln := range f.Institution.Lines {
		b.textCenter(centerX, y, ln, api.FontSpec{Size: 7}, api.Muted)
		y += 3.5
	}
	y += 1.5
	b.textCenter(centerX, y, f.Header.Title, api.FontSpec{Size: 10, Bold: true}, api.Ink)
	y += 2.5
	b.line(leftX, y, rightX, y, api.RuleBlue, 0.3)
	y += 6

	// Slip fields, label left, value right-flush.
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.text(leftX, y, label, api.FontSpec{Size: 8, Bold: true}, api.Muted)
		b.textRight(rightX, y, value, api.FontSpec{Size: 8}, api.Ink)
		y += 5
	}
	field("Slip #", f.Header.Number)
	field("Date", f.Header.Date)
	field("Due Date", f.DueDate)
	field("Student", f.StudentName)
	field("Class / Roll", f.ClassRoll)
	y += 2

	// Fee table: description plus amount. A slip is one fixed panel and the
	// renderers print only that panel, so rows past its capacity fold into
	// a single aggregate line instead of spilling onto pages nobody prints.
	// The printed charges always add up to the total.
	const amountColW = 26.0
	cols := []tableColumn{
		{title: "Particulars"},
		{title: "Amount", width: amountColW, align: alignRight},
	}

	rowFont := api.FontSpec{Size: 9}
	rowLine := lineHeight(rowFont)
	rowHeight := func(desc string) float64 {
		lines := len(b.wrap(desc, rowFont, width-amountColW-2*cellPadX))
		if lines < 1 {
			lines = 1
		}
		return float64(lines)*rowLine + 2*cellPadY
	}
	row := func(desc string, amount decimal.Decimal) []tableCell {
		return []tableCell{
			{text: desc},
			{text: model.FormatMoney(amount, f.CurrencySymbol)},
		}
	}

	maxY := page.PrintableBottom() - 28 // room for the totals lines and cashier rule
	aggH := rowLine + 2*cellPadY
	rowY := y + tableHeaderHeight
	rows := make([][]tableCell, 0, len(f.Items))
	folded := 0
	foldedSum := decimal.Zero
	for i, item := range f.Items {
		h := rowHeight(item.Description)
		last := i == len(f.Items)-1
		if folded == 0 && rowY+h <= maxY && (last || rowY+h+aggH <= maxY) {
			rows = append(rows, row(item.Description, item.EffectiveAmount()))
			rowY += h
			continue
		}
		folded++
		foldedSum = foldedSum.Add(item.EffectiveAmount())
	}
	if folded > 0 {
		rows = append(rows, row(fmt.Sprintf("Other charges (%d items)", folded), foldedSum))
	}
	y = b.table(cols, rows, leftX, y, width)

	// Payable line; fee slips have no tax, only an optional advance.
	t := f.ComputeTotals()
	y += 5
	if !t.Advance.IsZero() {
		b.text(leftX, y, "Advance:", api.FontSpec{Size: 8}, api.Muted)
		b.textRight(rightX, y, model.FormatMoney(t.Advance.Neg(), f.CurrencySymbol), api.FontSpec{Size: 8}, api.Muted)
		y += 5
	}
	totalFont := api.FontSpec{Size: 10, Bold: true}
	b.text(leftX, y, "Total Payable:", totalFont, api.Accent)
	b.textRight(rightX, y, model.FormatMoney(t.GrandTotal, f.CurrencySymbol), totalFont, api.Accent)

	// Cashier rule pinned to the panel bottom.
	ruleY := page.PrintableBottom() - 10
	b.line(leftX+8, ruleY, rightX-8, ruleY, api.SignGray, 0.3)
	b.textCenter(centerX, ruleY+5, "Cashier / Bank Officer", api.FontSpec{Size: 8}, api.Muted)

	return b.plan()
}
