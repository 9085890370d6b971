package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one row of the document table. Amount handling follows the
// override rule: a manually set amount survives edits to other fields but is
// cleared as soon as quantity or rate change, at which point the amount
// resyncs to quantity*rate.
type LineItem struct {
	Code        string          `json:"code,omitempty" yaml:"code,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Unit        string          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	UnitRate    decimal.Decimal `json:"unitRate" yaml:"unitRate"`
	Remarks     string          `json:"remarks,omitempty" yaml:"remarks,omitempty"`

	// Override, when set, replaces the quantity*rate product in totals.
	Override *decimal.Decimal `json:"manualAmount,omitempty" yaml:"manualAmount,omitempty"`
}

// EffectiveAmount is the monetary value this row contributes to the
// subtotal: the manual override when present, quantity*rate otherwise.
func (i *LineItem) EffectiveAmount() decimal.Decimal {
	if i.Override != nil {
		return *i.Override
	}
	return i.Quantity.Mul(i.UnitRate)
}

// SetQuantity updates the quantity and clears any manual amount, resyncing
// the effective amount to the new product. Negative quantities clamp to zero.
func (i *LineItem) SetQuantity(q decimal.Decimal) {
	if q.IsNegative() {
		q = decimal.Zero
	}
	i.Quantity = q
	i.Override = nil
}

// SetUnitRate updates the rate and clears any manual amount. Negative rates
// are allowed; they model credit lines.
func (i *LineItem) SetUnitRate(rate decimal.Decimal) {
	i.UnitRate = rate
	i.Override = nil
}

// SetAmount installs a manual amount, decoupling the row from its
// quantity*rate product until the next quantity or rate edit.
func (i *LineItem) SetAmount(amount decimal.Decimal) {
	i.Override = &amount
}

// ParseAmount coerces free-form numeric input to a decimal. Malformed input
// becomes zero; the model boundary never rejects.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
