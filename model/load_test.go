package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInvoiceYAML(t *testing.T) {
	data := []byte(`
kind: invoice
header:
  number: INV-0042
  date: "2026-03-01"
sender:
  name: Acme Traders
  contact: "0300-1234567"
recipient:
  name: Globex LLC
lineItems:
  - code: W-100
    description: Widget
    quantity: 2
    unitRate: 100
  - description: Handling
    quantity: 1
    unitRate: 50
    manualAmount: 40
taxRate: 5
advance: 10
currencySymbol: "Rs. "
`)

	doc, err := Load(data)
	require.NoError(t, err)

	inv, ok := doc.(*Invoice)
	require.True(t, ok)

	assert.Equal(t, "INV-0042", inv.Header.Number)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "INVOICE", inv.Header.Title)

	require.Len(t, inv.Items, 2)
	require.NotNil(t, inv.Items[1].Override)
	assert.True(t, inv.Items[1].Override.Equal(dec("40")))

	totals := inv.ComputeTotals()
	assert.True(t, totals.Subtotal.Equal(dec("240")))
	assert.True(t, totals.GrandTotal.Equal(dec("242")))
}

func TestLoadDefaultsToInvoice(t *testing.T) {
	doc, err := Load([]byte(`header: {number: X-1}`))
	require.NoError(t, err)
	assert.Equal(t, KindInvoice, doc.Kind())
}

func TestLoadChallan(t *testing.T) {
	data := []byte(`
kind: challan
header:
  number: DC-055
  vehicleNumber: LEB-1234
lineItems:
  - code: ITM07
    description: Steel pipe
    unit: pcs
    quantity: 40
    remarks: handle with care
`)

	doc, err := Load(data)
	require.NoError(t, err)

	c, ok := doc.(*DeliveryChallan)
	require.True(t, ok)
	assert.Equal(t, "DC-055", c.Header.Number)
	assert.Equal(t, "LEB-1234", c.Header.VehicleNumber)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "handle with care", c.Items[0].Remarks)
	assert.True(t, c.ComputeTotals().GrandTotal.IsZero(), "challans carry no pricing")
}

func TestLoadFeeSlip(t *testing.T) {
	data := []byte(`
kind: feeslip
header:
  number: FS-0101
institution:
  name: City Grammar School
  lines: ["12 Mall Road, Lahore"]
studentName: Ayesha Khan
classRoll: "8-B / 17"
dueDate: "2026-04-10"
lineItems:
  - description: Tuition Fee
    quantity: 1
    unitRate: 15000
advance: 5000
`)

	doc, err := Load(data)
	require.NoError(t, err)

	f, ok := doc.(*FeeSlip)
	require.True(t, ok)
	assert.Equal(t, "Ayesha Khan", f.StudentName)
	assert.True(t, f.ComputeTotals().GrandTotal.Equal(dec("10000")))
	// Copies absent from the file keep the two-copy default.
	assert.Equal(t, []string{"Student Copy", "Bank Copy"}, f.CopyLabels())
}

func TestLoadJSONInput(t *testing.T) {
	data := []byte(`{"kind":"invoice","header":{"number":"INV-7"},"lineItems":[{"quantity":3,"unitRate":"12.50"}]}`)

	doc, err := Load(data)
	require.NoError(t, err)
	inv := doc.(*Invoice)
	assert.Equal(t, "INV-7", inv.Header.Number)
	assert.True(t, inv.ComputeTotals().Subtotal.Equal(dec("37.5")))
}

func TestLoadUnknownKind(t *testing.T) {
	_, err := Load([]byte(`kind: receipt`))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load([]byte("\t{not yaml"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: invoice\nheader: {number: INV-9}\n"), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INV-9", doc.Head().Number)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, kind := range []Kind{KindInvoice, KindChallan, KindFeeSlip} {
		doc, err := New(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, doc.Kind())
		assert.NotEmpty(t, doc.Head().Number)
		assert.NotEmpty(t, doc.Head().Date)
	}

	_, err := New("ledger")
	assert.Error(t, err)
}
