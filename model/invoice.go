package model

import "github.com/shopspring/decimal"

// Invoice is a billable document: header, two parties, priced line items,
// tax and an optional advance deduction.
type Invoice struct {
	Header         Header          `json:"header" yaml:"header"`
	Sender         Party           `json:"sender" yaml:"sender"`
	Recipient      Party           `json:"recipient" yaml:"recipient"`
	Items          []LineItem      `json:"lineItems" yaml:"lineItems"`
	TaxRate        decimal.Decimal `json:"taxRate" yaml:"taxRate"`
	Advance        decimal.Decimal `json:"advance" yaml:"advance"`
	CurrencySymbol string          `json:"currencySymbol,omitempty" yaml:"currencySymbol,omitempty"`
	// StampImage is an opaque data-URI payload, drawn in the signature
	// block and never parsed beyond image decoding.
	StampImage string `json:"stampImage,omitempty" yaml:"stampImage,omitempty"`
}

// NewInvoice returns an invoice with editable defaults.
func NewInvoice() *Invoice {
	return &Invoice{
		Header: Header{
			Title:  "INVOICE",
			Number: "INV-0001",
			Date:   today(),
		},
		Sender:    Party{Name: "Your Company"},
		Recipient: Party{Name: "Client Company"},
		Items: []LineItem{
			{Quantity: decimal.NewFromInt(1)},
		},
	}
}

func (inv *Invoice) Kind() Kind    { return KindInvoice }
func (inv *Invoice) Head() *Header { return &inv.Header }

func (inv *Invoice) ComputeTotals() Totals {
	return ComputeTotals(inv.Items, inv.TaxRate, inv.Advance)
}
