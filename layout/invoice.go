package layout

import (
	"strconv"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

// buildInvoice lays out the invoice template: title and header stack top
// right, sender and recipient top left, the item table, the totals stack and
// the stamp-and-sign block.
func buildInvoice(inv *model.Invoice, page api.PageSize, m api.Measurer) *Plan {
	b := newBuilder(page, m)

	leftX := page.Margins.Left
	rightX := page.Width - page.Margins.Right

	// Title and header stack, right-anchored.
	b.textRight(rightX, 20, inv.Header.Title, api.FontSpec{Size: 24, Bold: true}, api.Accent)
	headerBottom := b.headerStack([]headerLine{
		{label: "INVOICE", value: prefix("#", inv.Header.Number), labelColor: api.Accent, valueColor: api.Muted},
		{label: "DATE", value: inv.Header.Date, labelColor: api.Accent, valueColor: api.Muted},
		{label: "NTN", value: inv.Header.TaxID, labelColor: api.Ink, valueColor: api.Muted},
		{label: "FOR", value: inv.Header.Reference, labelColor: api.Accent, valueColor: api.Ink},
		{label: "P.O.#", value: inv.Header.PONumber, labelColor: api.Accent, valueColor: api.Accent},
	}, rightX, 30)

	// Sender, then recipient, stacked on the left.
	leftY := b.partyStack(partyLayout{
		name:      inv.Sender.Name,
		nameSize:  14,
		nameColor: api.Muted,
		lines:     inv.Sender.Lines,
		contact:   prefix("Phone ", inv.Sender.Contact),
	}, leftX, 46, 100)

	leftY = b.partyStack(partyLayout{
		headline:      inv.Recipient.Headline,
		name:          inv.Recipient.Name,
		nameSize:      10,
		nameColor:     api.Ink,
		underlineName: true,
		lines:         inv.Recipient.Lines,
		contact:       inv.Recipient.Contact,
	}, leftX, leftY+5, 100)

	// Item table below whichever column reaches further down.
	tableTop := max(leftY+10, headerBottom+10)
	tableWidth := page.PrintableWidth()

	cols := []tableColumn{
		{title: "S. No", width: 15, align: alignCenter},
		{title: "Item Code", width: 25, bold: true},
		{title: "Description"},
		{title: "Qty", width: 15, align: alignCenter},
		{title: "Unit Price", width: 25, align: alignRight},
		{title: "Amount", width: 25, align: alignRight, bold: true},
		{title: "Total Amount", width: 26, align: alignRight},
	}

	rows := make([][]tableCell, 0, len(inv.Items))
	for i, item := range inv.Items {
		amount := model.FormatMoney(item.EffectiveAmount(), inv.CurrencySymbol)
		rows = append(rows, []tableCell{
			{text: strconv.Itoa(i + 1)},
			{text: item.Code},
			{text: item.Description, color: api.Muted},
			{text: item.Quantity.String()},
			{text: model.FormatMoney(item.UnitRate, inv.CurrencySymbol)},
			{text: amount},
			{text: amount},
		})
	}

	tableEnd := b.table(cols, rows, leftX, tableTop, tableWidth)
	b.line(leftX, tableEnd, leftX+tableWidth, tableEnd, api.RuleGray, 0.3)

	// Totals, right-anchored below the table, moved whole to a fresh page
	// when they would cross the printable bottom.
	t := inv.ComputeTotals()
	totalsY := tableEnd + 10
	if totalsY+totalsHeight(t) > page.PrintableBottom() {
		b.newPage()
		totalsY = page.Margins.Top + 10
	}
	totalsEnd := b.totalsBlock(t, inv.CurrencySymbol, rightX-55, rightX, totalsY)

	// Stamp and sign, moved whole to a fresh page when it would overflow.
	signY := totalsEnd + 10
	if signY+signatureHeight > page.PrintableBottom() {
		b.newPage()
		signY = 30
	}
	b.signatureBlock(inv.StampImage, "Stamp & Sign", rightX-55, signY)

	return b.plan()
}

// prefix prepends pre to s unless s is empty, keeping the empty-skip
// behaviour of header lines intact.
func prefix(pre, s string) string {
	if s == "" {
		return ""
	}
	return pre + s
}
