package model

import "github.com/shopspring/decimal"

// FeeSlip is a fixed-size payment slip printed as several identical
// side-by-side copies on one sheet, one per party keeping a copy.
type FeeSlip struct {
	Header         Header          `json:"header" yaml:"header"`
	Institution    Party           `json:"institution" yaml:"institution"`
	StudentName    string          `json:"studentName" yaml:"studentName"`
	ClassRoll      string          `json:"classRoll,omitempty" yaml:"classRoll,omitempty"`
	DueDate        string          `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Items          []LineItem      `json:"lineItems" yaml:"lineItems"`
	Advance        decimal.Decimal `json:"advance" yaml:"advance"`
	CurrencySymbol string          `json:"currencySymbol,omitempty" yaml:"currencySymbol,omitempty"`
	// Copies are the panel captions, one duplicated panel per entry.
	Copies []string `json:"copies,omitempty" yaml:"copies,omitempty"`
}

// NewFeeSlip returns a fee slip with editable defaults and the customary
// two-copy layout.
func NewFeeSlip() *FeeSlip {
	return &FeeSlip{
		Header: Header{
			Title:  "FEE SLIP",
			Number: "FS-0001",
			Date:   today(),
		},
		Institution: Party{Name: "Your Institution"},
		Items: []LineItem{
			{Description: "Tuition Fee", Quantity: decimal.NewFromInt(1)},
		},
		Copies: []string{"Student Copy", "Bank Copy"},
	}
}

func (f *FeeSlip) Kind() Kind    { return KindFeeSlip }
func (f *FeeSlip) Head() *Header { return &f.Header }

// ComputeTotals derives the payable amount. Fee slips carry no tax line,
// only an optional advance deduction.
func (f *FeeSlip) ComputeTotals() Totals {
	return ComputeTotals(f.Items, decimal.Zero, f.Advance)
}

// CopyLabels returns the configured panel captions, defaulting to the
// two-copy layout when none are set.
func (f *FeeSlip) CopyLabels() []string {
	if len(f.Copies) == 0 {
		return []string{"Student Copy", "Bank Copy"}
	}
	return f.Copies
}
