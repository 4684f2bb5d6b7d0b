// Package render — PDF renderer.
// Lays out one profile section per domain using gofpdf: a domain heading,
// the company name and description, then founders, products, and features
// as bullet lists. Failed domains render as a single gray error line.
package render

import (
	"bytes"
	"fmt"

	"github.com/EmmanuelEzenwere/SequelSift/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a batch as a PDF report.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the PDF document and returns its bytes.
func (r *PDFRenderer) Render(batch *core.Batch) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Report title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Company Profiles", "", "L", false)
	pdf.Ln(2)

	// Run summary.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	summary := fmt.Sprintf("Run %s: %d domains, %d failed", batch.RunID, len(batch.Records), batch.Failed())
	pdf.MultiCell(0, 5, summary, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, rec := range batch.Records {
		renderRecord(pdf, rec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderRecord writes one domain section.
func renderRecord(pdf *gofpdf.Fpdf, rec *core.CompanyRecord) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, rec.Domain, "", "L", false)

	if rec.ErrorKind != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		line := fmt.Sprintf("Failed after %d attempt(s): %s", rec.Attempts, rec.ErrorKind)
		pdf.MultiCell(0, 5, line, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		return
	}

	if rec.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, rec.CompanyName, "", "L", false)
	}
	if rec.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, rec.Description, "", "L", false)
	}

	renderBullets(pdf, "Founders", rec.Founders)
	renderBullets(pdf, "Products", rec.ProductInfo.Products)
	renderBullets(pdf, "Features", rec.ProductInfo.Features)
}

// renderBullets writes a titled bullet list, skipping empty lists.
func renderBullets(pdf *gofpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(0, 5, title, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, "  - "+item, "", "L", false)
	}
}
