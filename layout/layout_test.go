package layout

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

func testInvoice() *model.Invoice {
	inv := model.NewInvoice()
	inv.Header.Number = "INV-0042"
	inv.Header.Date = "2026-03-01"
	inv.Sender = model.Party{Name: "Acme Traders", Lines: []string{"12 Industrial Estate"}, Contact: "0300-1234567"}
	inv.Recipient = model.Party{Name: "Globex LLC", Lines: []string{"4 Canal Road, Lahore"}}
	inv.Items = []model.LineItem{
		{Code: "W-100", Description: "Widget", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(100)},
	}
	return inv
}

func textContents(p *Plan) []string {
	var out []string
	for i := range p.Pages {
		for _, t := range p.Texts(i) {
			out = append(out, t.Content)
		}
	}
	return out
}

func pageTexts(p *Plan, page int) []string {
	var out []string
	for _, t := range p.Texts(page) {
		out = append(out, t.Content)
	}
	return out
}

func TestBuildInvoicePlan(t *testing.T) {
	inv := testInvoice()
	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	assert.Equal(t, api.A4, plan.Size)
	assert.Equal(t, 1, plan.PageCount())

	texts := textContents(plan)
	assert.Contains(t, texts, "INVOICE")
	assert.Contains(t, texts, " #INV-0042")
	assert.Contains(t, texts, "Acme Traders")
	assert.Contains(t, texts, "Globex LLC")
	assert.Contains(t, texts, "Description")
	assert.Contains(t, texts, "Subtotal:")
	assert.Contains(t, texts, "Total:")
	assert.Contains(t, texts, "Stamp & Sign")
}

func TestBuildIsDeterministic(t *testing.T) {
	inv := testInvoice()

	a, err := Build(inv, api.A4, nil)
	require.NoError(t, err)
	b, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildDoesNotMutateModel(t *testing.T) {
	inv := testInvoice()
	before, err := json.Marshal(inv)
	require.NoError(t, err)

	_, err = Build(inv, api.A4, nil)
	require.NoError(t, err)

	after, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestHeaderSkipsEmptyFields(t *testing.T) {
	inv := testInvoice()
	inv.Header.TaxID = ""
	inv.Header.PONumber = ""

	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	texts := textContents(plan)
	assert.NotContains(t, texts, "NTN")
	assert.NotContains(t, texts, "P.O.#")

	inv.Header.TaxID = "1234567-8"
	plan, err = Build(inv, api.A4, nil)
	require.NoError(t, err)
	texts = textContents(plan)
	assert.Contains(t, texts, "NTN")
	assert.Contains(t, texts, " 1234567-8")
}

func TestTotalsOmitZeroLines(t *testing.T) {
	hasTaxLine := func(texts []string) bool {
		for _, s := range texts {
			if strings.HasPrefix(s, "Tax (") {
				return true
			}
		}
		return false
	}

	inv := testInvoice()
	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)
	texts := textContents(plan)
	assert.False(t, hasTaxLine(texts), "zero tax must not render a line")
	assert.NotContains(t, texts, "Advance:")

	inv.TaxRate = decimal.NewFromInt(5)
	inv.Advance = decimal.NewFromInt(10)
	plan, err = Build(inv, api.A4, nil)
	require.NoError(t, err)
	texts = textContents(plan)
	assert.True(t, hasTaxLine(texts))
	assert.Contains(t, texts, "Advance:")
}

func TestTablePaginationRepeatsHeader(t *testing.T) {
	inv := testInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, model.LineItem{
			Code:        fmt.Sprintf("W-%03d", i),
			Description: fmt.Sprintf("Widget %d", i),
			Quantity:    decimal.NewFromInt(1),
			UnitRate:    decimal.NewFromInt(10),
		})
	}

	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)
	require.Greater(t, plan.PageCount(), 1)

	for i := 0; i < plan.PageCount(); i++ {
		texts := pageTexts(plan, i)
		// The final page may hold only the overflowed signature block.
		if i == plan.PageCount()-1 && !contains(texts, "Description") {
			assert.Contains(t, texts, "Stamp & Sign")
			continue
		}
		assert.Contains(t, texts, "Description", "page %d must repeat the column headers", i)
	}

	// Every row lands on exactly one page.
	all := textContents(plan)
	for i := 0; i < 60; i++ {
		assert.Contains(t, all, fmt.Sprintf("Widget %d", i))
	}
}

func contains(texts []string, s string) bool {
	for _, t := range texts {
		if t == s {
			return true
		}
	}
	return false
}

func TestSignatureOnLastPage(t *testing.T) {
	inv := testInvoice()
	inv.Items = nil
	for i := 0; i < 40; i++ {
		inv.Items = append(inv.Items, model.LineItem{
			Description: fmt.Sprintf("Row %d", i),
			Quantity:    decimal.NewFromInt(1),
			UnitRate:    decimal.NewFromInt(5),
		})
	}

	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	last := pageTexts(plan, plan.PageCount()-1)
	assert.Contains(t, last, "Stamp & Sign", "the signature block never splits across pages")

	seen := 0
	for _, s := range textContents(plan) {
		if s == "Stamp & Sign" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestTotalsNeverCrossPrintableBottom(t *testing.T) {
	// Sweep table lengths across the page boundary: whatever the item
	// count, the totals stack must land inside a printable area, moving to
	// a fresh page with the signature when the table ends near the bottom.
	for count := 18; count <= 30; count++ {
		inv := testInvoice()
		inv.TaxRate = decimal.NewFromInt(5)
		inv.Advance = decimal.NewFromInt(10)
		inv.Items = nil
		for i := 0; i < count; i++ {
			inv.Items = append(inv.Items, model.LineItem{
				Description: fmt.Sprintf("Widget %d", i),
				Quantity:    decimal.NewFromInt(1),
				UnitRate:    decimal.NewFromInt(10),
			})
		}

		plan, err := Build(inv, api.A4, nil)
		require.NoError(t, err)

		found := false
		for p := 0; p < plan.PageCount(); p++ {
			for _, txt := range plan.Texts(p) {
				assert.LessOrEqual(t, txt.Pos.Y, api.A4.PrintableBottom()+0.001,
					"%d items: %q drawn past the printable bottom", count, txt.Content)
				if txt.Content == "Total:" {
					found = true
				}
			}
		}
		assert.True(t, found, "%d items: grand total line missing", count)
	}
}

func TestTotalsRenderedWithoutItems(t *testing.T) {
	inv := testInvoice()
	inv.Items = nil

	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	texts := textContents(plan)
	assert.Contains(t, texts, "Subtotal:")
	assert.Contains(t, texts, "Total:")
	assert.Contains(t, texts, "0.00")
}

func TestBuildChallanPlan(t *testing.T) {
	c := model.NewDeliveryChallan()
	c.Header.Number = "DC-055"
	c.Header.VehicleNumber = "LEB-1234"
	c.Items = []model.LineItem{
		{Code: "ITM07", Description: "Steel pipe", Unit: "pcs", Quantity: decimal.NewFromInt(40), Remarks: "fragile"},
	}

	plan, err := Build(c, api.A4, nil)
	require.NoError(t, err)

	texts := textContents(plan)
	assert.Contains(t, texts, "DELIVERY CHALLAN")
	assert.Contains(t, texts, " LEB-1234")
	assert.Contains(t, texts, "Received By")
	assert.Contains(t, texts, "Authorized Signatory")
	assert.Contains(t, texts, "fragile")

	// No pricing anywhere on a challan.
	for _, s := range texts {
		assert.NotContains(t, s, "Subtotal")
		assert.NotContains(t, s, "Unit Price")
	}
}

func TestBuildFeeSlipPlan(t *testing.T) {
	f := model.NewFeeSlip()
	f.Institution = model.Party{Name: "City Grammar School", Lines: []string{"12 Mall Road, Lahore"}}
	f.StudentName = "Ayesha Khan"
	f.ClassRoll = "8-B / 17"
	f.Items = []model.LineItem{
		{Description: "Tuition Fee", Quantity: decimal.NewFromInt(1), UnitRate: decimal.NewFromInt(15000)},
	}
	f.Advance = decimal.NewFromInt(5000)

	plan, err := Build(f, api.SlipPanel, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.PageCount(), "fee slips never paginate")
	assert.Equal(t, api.SlipPanel, plan.Size)

	texts := textContents(plan)
	assert.Contains(t, texts, "City Grammar School")
	assert.Contains(t, texts, "Ayesha Khan")
	assert.Contains(t, texts, "Total Payable:")
	assert.Contains(t, texts, "Cashier / Bank Officer")
	assert.Contains(t, texts, "10,000.00")
}

func TestFeeSlipFoldsOverflowRows(t *testing.T) {
	f := model.NewFeeSlip()
	f.Items = nil
	for i := 0; i < 30; i++ {
		f.Items = append(f.Items, model.LineItem{
			Description: fmt.Sprintf("Misc Fee %d", i),
			Quantity:    decimal.NewFromInt(1),
			UnitRate:    decimal.NewFromInt(100),
		})
	}

	plan, err := Build(f, api.SlipPanel, nil)
	require.NoError(t, err)
	require.Equal(t, 1, plan.PageCount(),
		"slip renderers print one panel; the plan must never grow a second page")

	var aggregate string
	for _, s := range textContents(plan) {
		if strings.HasPrefix(s, "Other charges (") {
			aggregate = s
		}
	}
	assert.NotEmpty(t, aggregate, "overflow rows fold into one aggregate line")

	for _, txt := range plan.Texts(0) {
		assert.LessOrEqual(t, txt.Pos.Y, api.SlipPanel.Height)
	}

	// The printed charges still add up to the full total.
	texts := textContents(plan)
	assert.Contains(t, texts, "Total Payable:")
	assert.Contains(t, texts, "3,000.00")
}

func TestDefaultPage(t *testing.T) {
	assert.Equal(t, api.A4, DefaultPage(model.NewInvoice()))
	assert.Equal(t, api.A4, DefaultPage(model.NewDeliveryChallan()))
	assert.Equal(t, api.SlipPanel, DefaultPage(model.NewFeeSlip()))
}

func TestBlocksStayInsidePage(t *testing.T) {
	inv := testInvoice()
	plan, err := Build(inv, api.A4, nil)
	require.NoError(t, err)

	for _, page := range plan.Pages {
		for _, blk := range page.Blocks {
			if txt, ok := blk.(Text); ok {
				assert.GreaterOrEqual(t, txt.Pos.X, 0.0)
				assert.LessOrEqual(t, txt.Pos.Y, plan.Size.Height)
			}
		}
	}
}
