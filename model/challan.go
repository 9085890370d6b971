package model

import "github.com/shopspring/decimal"

// DeliveryChallan is a goods-movement document: no pricing, but per-item
// units and remarks, plus vehicle and reference fields in the header.
type DeliveryChallan struct {
	Header     Header     `json:"header" yaml:"header"`
	Sender     Party      `json:"sender" yaml:"sender"`
	Recipient  Party      `json:"recipient" yaml:"recipient"`
	Items      []LineItem `json:"lineItems" yaml:"lineItems"`
	StampImage string     `json:"stampImage,omitempty" yaml:"stampImage,omitempty"`
}

// NewDeliveryChallan returns a challan with editable defaults.
func NewDeliveryChallan() *DeliveryChallan {
	return &DeliveryChallan{
		Header: Header{
			Title:  "DELIVERY CHALLAN",
			Number: "DC-001",
			Date:   today(),
		},
		Sender:    Party{Name: "Your Company"},
		Recipient: Party{Name: "Client Company"},
		Items: []LineItem{
			{Code: "ITM01", Description: "Item 1", Unit: "pcs", Quantity: decimal.NewFromInt(10)},
		},
	}
}

func (c *DeliveryChallan) Kind() Kind    { return KindChallan }
func (c *DeliveryChallan) Head() *Header { return &c.Header }

// ComputeTotals on a challan is always zero; challans carry no pricing.
func (c *DeliveryChallan) ComputeTotals() Totals {
	return Totals{}
}
