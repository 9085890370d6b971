package model

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Totals are the derived monetary values of a document. They are computed on
// demand from the line items and never stored.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	Advance    decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals sums the effective amounts in insertion order, applies the
// tax rate and subtracts the advance. Negative tax rates clamp to zero; a
// missing advance is zero. grandTotal = subtotal + tax - advance, always.
func ComputeTotals(items []LineItem, taxRatePercent, advance decimal.Decimal) Totals {
	if taxRatePercent.IsNegative() {
		taxRatePercent = decimal.Zero
	}

	subtotal := lo.Reduce(items, func(sum decimal.Decimal, item LineItem, _ int) decimal.Decimal {
		return sum.Add(item.EffectiveAmount())
	}, decimal.Zero)

	tax := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100)).Round(2)

	return Totals{
		Subtotal:   subtotal,
		TaxRate:    taxRatePercent,
		TaxAmount:  tax,
		Advance:    advance,
		GrandTotal: subtotal.Add(tax).Sub(advance),
	}
}

// FormatMoney renders an amount with thousands separators and exactly two
// decimal places, prefixed by the currency symbol when one is configured.
func FormatMoney(d decimal.Decimal, symbol string) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}
