package layout

import (
	"fmt"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/model"
)

// Build computes the layout plan for a document on the given page using the
// given measurer. It is deterministic and side-effect free: the same model
// and dimensions always yield the same plan, and the model is not mutated.
func Build(doc model.Document, page api.PageSize, m api.Measurer) (*Plan, error) {
	if m == nil {
		m = api.NewCoreMeasurer()
	}

	switch d := doc.(type) {
	case *model.Invoice:
		return buildInvoice(d, page, m), nil
	case *model.DeliveryChallan:
		return buildChallan(d, page, m), nil
	case *model.FeeSlip:
		return buildFeeSlip(d, page, m), nil
	default:
		return nil, fmt.Errorf("no layout for document kind %q", doc.Kind())
	}
}

// DefaultPage returns the natural page for a document kind: A4 for invoices
// and challans, a slip panel for fee slips.
func DefaultPage(doc model.Document) api.PageSize {
	if doc.Kind() == model.KindFeeSlip {
		return api.SlipPanel
	}
	return api.A4
}
