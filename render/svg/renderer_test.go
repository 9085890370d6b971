package svg

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/layout"
	"github.com/inkfold/docgen/model"
)

func buildTestPlan(t *testing.T, doc model.Document) *layout.Plan {
	t.Helper()
	plan, err := layout.Build(doc, layout.DefaultPage(doc), nil)
	require.NoError(t, err)
	return plan
}

func TestRenderInvoiceMarkup(t *testing.T) {
	inv := model.NewInvoice()
	inv.Header.Number = "INV-0042"
	inv.Items = []model.LineItem{
		{Description: "Widget", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(100)},
	}

	out, err := NewRenderer().Render(buildTestPlan(t, inv))
	require.NoError(t, err)

	markup := string(out)
	assert.Contains(t, markup, "<svg")
	assert.Contains(t, markup, "fill:white")
	assert.Contains(t, markup, "INVOICE")
	assert.Contains(t, markup, "Widget")
	assert.Contains(t, markup, "#3B82F6", "accent color carries into text styles")
}

func TestRenderStacksPages(t *testing.T) {
	inv := model.NewInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, model.LineItem{
			Description: "Row",
			Quantity:    decimal.NewFromInt(1),
			UnitRate:    decimal.NewFromInt(10),
		})
	}

	plan := buildTestPlan(t, inv)
	require.Greater(t, plan.PageCount(), 1)

	out, err := NewRenderer().Render(plan)
	require.NoError(t, err)

	// One translated group per page.
	assert.Equal(t, plan.PageCount(), strings.Count(string(out), "translate(0,"))
}

func TestRenderSlipDuplicatesPanels(t *testing.T) {
	f := model.NewFeeSlip()
	f.StudentName = "Ayesha Khan"

	plan := buildTestPlan(t, f)
	out, err := NewRenderer().RenderSlip(plan, f.CopyLabels())
	require.NoError(t, err)

	markup := string(out)
	assert.Contains(t, markup, "Student Copy")
	assert.Contains(t, markup, "Bank Copy")
	assert.Equal(t, 2, strings.Count(markup, "Ayesha Khan"), "panel content is duplicated per copy")
	assert.Equal(t, 1, strings.Count(markup, "stroke-dasharray:30,20"), "one cut line between two panels")
}

func TestRenderSlipSinglePanelWithoutLabels(t *testing.T) {
	plan := buildTestPlan(t, model.NewFeeSlip())

	out, err := NewRenderer().RenderSlip(plan, nil)
	require.NoError(t, err)

	markup := string(out)
	assert.Equal(t, 1, strings.Count(markup, "FEE SLIP"))
	assert.NotContains(t, markup, "stroke-dasharray:30,20")
}

func TestRenderSlipEmptyPlan(t *testing.T) {
	_, err := NewRenderer().RenderSlip(&layout.Plan{Size: api.SlipPanel}, []string{"A"})
	assert.Error(t, err)
}

func TestRenderEmbedsImages(t *testing.T) {
	plan := &layout.Plan{
		Size: api.A4,
		Pages: []layout.Page{{
			Blocks: []layout.Block{
				layout.Image{R: api.Rect{X: 10, Y: 10, Width: 40, Height: 25}, Data: []byte{1, 2, 3}, Format: "jpeg"},
			},
		}},
	}

	out, err := NewRenderer().Render(plan)
	require.NoError(t, err)
	assert.Contains(t, string(out), "data:image/jpeg;base64,")
}
