// Package model defines the document aggregates the layout planner consumes:
// invoices, delivery challans and fee slips, their line items, and the
// derived totals. All monetary values use exact decimal arithmetic; rounding
// happens only at the tax line and at formatting time.
package model

import (
	"fmt"
	"time"
)

// Kind discriminates the document variants.
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindChallan Kind = "challan"
	KindFeeSlip Kind = "feeslip"
)

// Document is the common surface of the three variants.
type Document interface {
	Kind() Kind
	// Head returns the key/value header record of the document.
	Head() *Header
	// ComputeTotals derives the monetary totals. Derived on every call,
	// never cached.
	ComputeTotals() Totals
}

// New returns a freshly defaulted document of the given kind, ready to be
// merged with a loaded draft payload.
func New(kind Kind) (Document, error) {
	switch kind {
	case KindInvoice:
		return NewInvoice(), nil
	case KindChallan:
		return NewDeliveryChallan(), nil
	case KindFeeSlip:
		return NewFeeSlip(), nil
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}

// Header is the free-form key/value record shown in the document's top-right
// corner. Empty fields are skipped by the layout, not rendered blank.
type Header struct {
	Title         string `json:"title" yaml:"title"`
	Number        string `json:"number" yaml:"number"`
	Date          string `json:"date" yaml:"date"`
	TaxID         string `json:"taxId,omitempty" yaml:"taxId,omitempty"`
	Reference     string `json:"reference,omitempty" yaml:"reference,omitempty"`
	PONumber      string `json:"poNumber,omitempty" yaml:"poNumber,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty" yaml:"vehicleNumber,omitempty"`
}

// Party is one side of the document (sender or recipient).
type Party struct {
	// Headline is an optional line above the name, e.g. a group name.
	Headline string   `json:"headline,omitempty" yaml:"headline,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Lines    []string `json:"lines,omitempty" yaml:"lines,omitempty"`
	Contact  string   `json:"contact,omitempty" yaml:"contact,omitempty"`
}

func today() string {
	return time.Now().Format("2006-01-02")
}
