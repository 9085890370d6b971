package preview

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

func testPlan(t *testing.T) *layout.Plan {
	t.Helper()
	inv := model.NewInvoice()
	inv.Header.Number = "INV-0042"
	inv.Items = []model.LineItem{
		{Description: "Widget", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(100)},
	}
	plan, err := layout.Build(inv, api.A4, nil)
	require.NoError(t, err)
	return plan
}

func TestRenderPlain(t *testing.T) {
	r := &Renderer{Width: 120, Plain: true}

	out, err := r.Render(testPlan(t))
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b", "plain mode must not emit ANSI sequences")
	assert.Contains(t, out, "INVOICE")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "─", "rules draw as horizontal bars")
}

func TestRenderFitsWidth(t *testing.T) {
	r := &Renderer{Width: 60, Plain: true}

	out, err := r.Render(testPlan(t))
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60, "no line may exceed the requested width")
	}
}

func TestRenderScalesDown(t *testing.T) {
	wide, err := (&Renderer{Width: 120, Plain: true}).Render(testPlan(t))
	require.NoError(t, err)
	narrow, err := (&Renderer{Width: 40, Plain: true}).Render(testPlan(t))
	require.NoError(t, err)

	wideLines := strings.Split(wide, "\n")
	narrowLines := strings.Split(narrow, "\n")
	assert.Greater(t, len(wideLines), len(narrowLines),
		"the aspect ratio is preserved, so a narrower preview is also shorter")
}

func TestRenderMultiplePages(t *testing.T) {
	inv := model.NewInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, model.LineItem{
			Description: "Row",
			Quantity:    decimal.NewFromInt(1),
			UnitRate:    decimal.NewFromInt(10),
		})
	}
	plan, err := layout.Build(inv, api.A4, nil)
	require.NoError(t, err)
	require.Greater(t, plan.PageCount(), 1)

	out, err := (&Renderer{Width: 80, Plain: true}).Render(plan)
	require.NoError(t, err)

	assert.Contains(t, out, "\n\n", "pages are separated by a blank line")
}

func TestRenderShowsStampPlaceholder(t *testing.T) {
	plan := &layout.Plan{
		Size: api.A4,
		Pages: []layout.Page{{
			Blocks: []layout.Block{
				layout.Image{R: api.Rect{X: 20, Y: 40, Width: 40, Height: 25}, Data: []byte{1}, Format: "png"},
			},
		}},
	}

	out, err := (&Renderer{Width: 120, Plain: true}).Render(plan)
	require.NoError(t, err)
	assert.Contains(t, out, "[stamp]")
}
