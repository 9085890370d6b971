package layout

import (
	"strconv"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

// buildChallan lays out the delivery challan template: header stack, From
// and To blocks, the unpriced item table and the twin signature rules.
func buildChallan(c *model.DeliveryChallan, page api.PageSize, m api.Measurer) *Plan {
	b := newBuilder(page, m)

	leftX := page.Margins.Left
	rightX := page.Width - page.Margins.Right

	b.textRight(rightX, 20, c.Header.Title, api.FontSpec{Size: 22, Bold: true}, api.Accent)
	headerBottom := b.headerStack([]headerLine{
		{label: "Challan #", value: c.Header.Number, labelColor: api.Ink, valueColor: api.Muted},
		{label: "Date", value: c.Header.Date, labelColor: api.Ink, valueColor: api.Muted},
		{label: "Vehicle #", value: c.Header.VehicleNumber, labelColor: api.Ink, valueColor: api.Muted},
		{label: "Ref / PO #", value: c.Header.PONumber, labelColor: api.Ink, valueColor: api.Muted},
	}, rightX, 30)

	leftY := b.partyStack(partyLayout{
		name:      c.Sender.Name,
		nameSize:  14,
		nameColor: api.Ink,
		lines:     c.Sender.Lines,
		contact:   c.Sender.Contact,
	}, leftX, 40, 100)

	b.text(leftX, leftY+5, "To:", api.FontSpec{Size: 10, Bold: true}, api.Ink)
	leftY = b.partyStack(partyLayout{
		name:      c.Recipient.Name,
		nameSize:  10,
		nameColor: api.Ink,
		lines:     c.Recipient.Lines,
		contact:   c.Recipient.Contact,
	}, leftX, leftY+10, 100)

	tableTop := max(leftY+10, headerBottom+10)
	tableWidth := page.PrintableWidth()

	cols := []tableColumn{
		{title: "S.No", width: 12, align: alignCenter},
		{title: "Code", width: 24, bold: true},
		{title: "Description"},
		{title: "Unit", width: 18, align: alignCenter},
		{title: "Qty", width: 16, align: alignCenter, bold: true},
		{title: "Remarks", width: 34},
	}

	rows := make([][]tableCell, 0, len(c.Items))
	for i, item := range c.Items {
		rows = append(rows, []tableCell{
			{text: strconv.Itoa(i + 1), color: api.Muted},
			{text: item.Code},
			{text: item.Description},
			{text: item.Unit, color: api.Muted},
			{text: item.Quantity.String()},
			{text: item.Remarks, italic: true, color: api.Muted},
		})
	}

	tableEnd := b.table(cols, rows, leftX, tableTop, tableWidth)

	// Twin signatures: receiver left, authorized signatory (with stamp)
	// right. The whole strip moves to a fresh page when it cannot fit.
	signY := tableEnd + 10
	if signY+signatureHeight > page.PrintableBottom() {
		b.newPage()
		signY = 30
	}

	captionFont := api.FontSpec{Size: 10, Bold: true}
	b.line(leftX, signY+30, leftX+50, signY+30, api.SignGray, 0.3)
	b.text(leftX+8, signY+36, "Received By", captionFont, api.Ink)

	signX := rightX - 55
	if c.StampImage != "" {
		if data, format, err := model.DecodeStamp(c.StampImage); err == nil {
			b.image(api.Rect{X: signX, Y: signY, Width: 40, Height: 25}, data, format)
		}
	}
	b.line(signX, signY+30, signX+50, signY+30, api.SignGray, 0.3)
	b.text(signX, signY+36, "Authorized Signatory", captionFont, api.Ink)

	return b.plan()
}
