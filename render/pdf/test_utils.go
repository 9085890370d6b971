// Test utilities for validating generated PDFs: structural checks through
// pdfcpu and plain-text extraction through ledongthuc/pdf.

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// GetPDFInfo parses the PDF with pdfcpu and returns its page count and size.
func GetPDFInfo(pdfData []byte) (pages int, size int, err error) {
	ctx, err := api.ReadContext(bytes.NewReader(pdfData), model.NewDefaultConfiguration())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	// pdfcpu only populates ctx.PageCount during validation.
	if err := api.ValidateContext(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to validate PDF: %w", err)
	}
	return ctx.PageCount, len(pdfData), nil
}

// ExtractTextFromPDF returns the concatenated plain text of every page.
func ExtractTextFromPDF(pdfData []byte) (string, error) {
	reader, err := ltpdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF for text extraction: %w", err)
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, text); err != nil {
		return "", err
	}
	return b.String(), nil
}

// AssertPDFBasicStructure fails the test when the data is not a parseable
// PDF of plausible size.
func AssertPDFBasicStructure(t *testing.T, pdfData []byte) {
	t.Helper()

	if len(pdfData) < 4 || string(pdfData[:4]) != "%PDF" {
		t.Error("generated data doesn't look like a PDF (missing %PDF header)")
		return
	}
	if len(pdfData) < 100 {
		t.Error("PDF appears too small to contain meaningful content")
		return
	}

	if _, err := api.ReadContext(bytes.NewReader(pdfData), model.NewDefaultConfiguration()); err != nil {
		t.Errorf("PDF structure validation failed: %v", err)
	}
}

// AssertPDFPageCount fails the test when the PDF does not have the expected
// number of pages.
func AssertPDFPageCount(t *testing.T, pdfData []byte, expectedPages int) {
	t.Helper()

	pages, _, err := GetPDFInfo(pdfData)
	if err != nil {
		t.Errorf("failed to read PDF for page count verification: %v", err)
		return
	}
	if pages != expectedPages {
		t.Errorf("PDF has %d pages, expected %d", pages, expectedPages)
	}
}

// AssertPDFContainsText fails the test when any expected string is missing
// from the extracted plain text.
func AssertPDFContainsText(t *testing.T, pdfData []byte, expectedTexts []string) {
	t.Helper()

	extracted, err := ExtractTextFromPDF(pdfData)
	if err != nil {
		t.Errorf("failed to extract text from PDF: %v", err)
		return
	}

	// Extraction can lose spacing between runs; compare without spaces.
	squashed := strings.ReplaceAll(extracted, " ", "")
	for _, expected := range expectedTexts {
		if !strings.Contains(extracted, expected) &&
			!strings.Contains(squashed, strings.ReplaceAll(expected, " ", "")) {
			t.Errorf("PDF text does not contain %q", expected)
		}
	}
}
