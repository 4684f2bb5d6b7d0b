// Package render — CSV renderer.
// Flattens each company record onto one row so batches open cleanly in
// spreadsheet tools. List-valued fields (founders, products, features)
// are joined with "; " inside their cell.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// csvHeader is the column order for CSV and XLSX output.
var csvHeader = []string{
	"domain",
	"company_name",
	"description",
	"founders",
	"products",
	"features",
	"pages",
	"attempts",
	"error",
	"fetched_at",
}

// CSVRenderer produces one row per company record.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes a header row followed by one row per record.
func (r *CSVRenderer) Render(batch *core.Batch) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range batch.Records {
		if err := w.Write(recordRow(rec)); err != nil {
			return nil, fmt.Errorf("writing CSV row for %s: %w", rec.Domain, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}

// recordRow flattens a record into csvHeader order.
func recordRow(rec *core.CompanyRecord) []string {
	return []string{
		rec.Domain,
		rec.CompanyName,
		rec.Description,
		joinValues(rec.Founders),
		joinValues(rec.ProductInfo.Products),
		joinValues(rec.ProductInfo.Features),
		joinValues(rec.Pages),
		strconv.Itoa(rec.Attempts),
		rec.ErrorKind,
		rec.FetchedAt,
	}
}

// joinValues packs a list field into a single cell.
func joinValues(items []string) string {
	return strings.Join(items, "; ")
}
