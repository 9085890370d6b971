// Package htmldoc produces a word-processor-compatible HTML export of a
// document: headings, paragraphs and one table. It is best-effort by
// contract and makes no attempt at pixel parity with the print surfaces.
package htmldoc

import (
	"fmt"
	"html"
	"strings"

	"github.com/inkfold/docgen/model"
)

// Render serializes the document as a standalone HTML file.
func Render(doc model.Document) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s %s</title>\n", esc(doc.Head().Title), esc(doc.Head().Number))
	b.WriteString("<style>body{font-family:Helvetica,Arial,sans-serif}table{border-collapse:collapse;width:100%}td,th{border:1px solid #ccc;padding:4px 8px;text-align:left}th{color:#3B82F6}</style>\n")
	b.WriteString("</head>\n<body>\n")

	switch d := doc.(type) {
	case *model.Invoice:
		writeInvoice(&b, d)
	case *model.DeliveryChallan:
		writeChallan(&b, d)
	case *model.FeeSlip:
		writeFeeSlip(&b, d)
	default:
		return nil, fmt.Errorf("no HTML export for document kind %q", doc.Kind())
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

func writeInvoice(b *strings.Builder, inv *model.Invoice) {
	fmt.Fprintf(b, "<h1 style=\"color:#3B82F6;text-align:right\">%s</h1>\n", esc(inv.Header.Title))
	writeHeaderLines(b, []string{
		pair("INVOICE", prefix("#", inv.Header.Number)),
		pair("DATE", inv.Header.Date),
		pair("NTN", inv.Header.TaxID),
		pair("FOR", inv.Header.Reference),
		pair("P.O.#", inv.Header.PONumber),
	})

	writeParty(b, "", inv.Sender)
	writeParty(b, "Bill To", inv.Recipient)

	b.WriteString("<table>\n<tr><th>S. No</th><th>Item Code</th><th>Description</th><th>Qty</th><th>Unit Price</th><th>Amount</th></tr>\n")
	for i, item := range inv.Items {
		fmt.Fprintf(b, "<tr><td>%d</td><td><b>%s</b></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			i+1, esc(item.Code), esc(item.Description), item.Quantity.String(),
			esc(model.FormatMoney(item.UnitRate, inv.CurrencySymbol)),
			esc(model.FormatMoney(item.EffectiveAmount(), inv.CurrencySymbol)))
	}
	b.WriteString("</table>\n")

	writeTotals(b, inv.ComputeTotals(), inv.CurrencySymbol)
}

func writeChallan(b *strings.Builder, c *model.DeliveryChallan) {
	fmt.Fprintf(b, "<h1 style=\"color:#3B82F6;text-align:right\">%s</h1>\n", esc(c.Header.Title))
	writeHeaderLines(b, []string{
		pair("Challan #", c.Header.Number),
		pair("Date", c.Header.Date),
		pair("Vehicle #", c.Header.VehicleNumber),
		pair("Ref / PO #", c.Header.PONumber),
	})

	writeParty(b, "", c.Sender)
	writeParty(b, "Delivered To", c.Recipient)

	b.WriteString("<table>\n<tr><th>S.No</th><th>Code</th><th>Description</th><th>Unit</th><th>Qty</th><th>Remarks</th></tr>\n")
	for i, item := range c.Items {
		fmt.Fprintf(b, "<tr><td>%d</td><td><b>%s</b></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			i+1, esc(item.Code), esc(item.Description), esc(item.Unit),
			item.Quantity.String(), esc(item.Remarks))
	}
	b.WriteString("</table>\n")
	b.WriteString("<p>Received By: ___________________ &nbsp;&nbsp; Authorized Signatory: ___________________</p>\n")
}

func writeFeeSlip(b *strings.Builder, f *model.FeeSlip) {
	fmt.Fprintf(b, "<h1 style=\"color:#3B82F6;text-align:center\">%s</h1>\n", esc(f.Institution.Name))
	fmt.Fprintf(b, "<h2 style=\"text-align:center\">%s</h2>\n", esc(f.Header.Title))
	writeHeaderLines(b, []string{
		pair("Slip #", f.Header.Number),
		pair("Date", f.Header.Date),
		pair("Due Date", f.DueDate),
		pair("Student", f.StudentName),
		pair("Class / Roll", f.ClassRoll),
	})

	b.WriteString("<table>\n<tr><th>Particulars</th><th>Amount</th></tr>\n")
	for _, item := range f.Items {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td></tr>\n",
			esc(item.Description), esc(model.FormatMoney(item.EffectiveAmount(), f.CurrencySymbol)))
	}
	b.WriteString("</table>\n")
	writeTotals(b, f.ComputeTotals(), f.CurrencySymbol)
}

func writeHeaderLines(b *strings.Builder, lines []string) {
	b.WriteString("<p style=\"text-align:right\">\n")
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(l + "<br>\n")
	}
	b.WriteString("</p>\n")
}

func writeParty(b *strings.Builder, caption string, p model.Party) {
	b.WriteString("<p>")
	if caption != "" {
		fmt.Fprintf(b, "<b>%s</b><br>\n", esc(caption))
	}
	if p.Headline != "" {
		b.WriteString(esc(p.Headline) + "<br>\n")
	}
	fmt.Fprintf(b, "<b>%s</b><br>\n", esc(p.Name))
	for _, l := range p.Lines {
		b.WriteString(esc(l) + "<br>\n")
	}
	if p.Contact != "" {
		b.WriteString(esc(p.Contact) + "\n")
	}
	b.WriteString("</p>\n")
}

func writeTotals(b *strings.Builder, t model.Totals, symbol string) {
	b.WriteString("<p style=\"text-align:right\">\n")
	fmt.Fprintf(b, "Subtotal: %s<br>\n", esc(model.FormatMoney(t.Subtotal, symbol)))
	if !t.TaxAmount.IsZero() {
		fmt.Fprintf(b, "Tax (%s%%): %s<br>\n", t.TaxRate.String(), esc(model.FormatMoney(t.TaxAmount, symbol)))
	}
	if !t.Advance.IsZero() {
		fmt.Fprintf(b, "Advance: %s<br>\n", esc(model.FormatMoney(t.Advance.Neg(), symbol)))
	}
	fmt.Fprintf(b, "<b style=\"color:#3B82F6\">Total: %s</b>\n", esc(model.FormatMoney(t.GrandTotal, symbol)))
	b.WriteString("</p>\n")
}

func pair(label, value string) string {
	if value == "" {
		return ""
	}
	return "<b style=\"color:#3B82F6\">" + esc(label) + "</b> " + esc(value)
}

// prefix prepends pre to s unless s is empty, so pair's empty-skip still
// applies to decorated values.
func prefix(pre, s string) string {
	if s == "" {
		return ""
	}
	return pre + s
}

func esc(s string) string {
	return html.EscapeString(s)
}
