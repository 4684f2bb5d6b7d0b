// Package render — XLSX renderer.
// Writes the batch as a workbook: a Companies sheet with one row per
// record (same columns as the CSV output) and a Run sheet holding the
// batch metadata.
package render

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

const (
	companiesSheet = "Companies"
	runSheet       = "Run"
)

// XLSXRenderer produces an Excel workbook for a batch.
type XLSXRenderer struct{}

// NewXLSXRenderer creates an XLSXRenderer.
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// Render builds the workbook in memory and returns its bytes.
func (r *XLSXRenderer) Render(batch *core.Batch) ([]byte, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", companiesSheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	// Header row, then one row per record in batch order.
	if err := writeRow(f, companiesSheet, 1, csvHeader); err != nil {
		return nil, err
	}
	for i, rec := range batch.Records {
		if err := writeRow(f, companiesSheet, i+2, recordRow(rec)); err != nil {
			return nil, err
		}
	}

	if err := writeRunSheet(f, batch); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for XLSX output.
func (r *XLSXRenderer) Extension() string {
	return ".xlsx"
}

// writeRow fills one sheet row, columns starting at A.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name for column %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("setting cell %s: %w", cell, err)
		}
	}
	return nil
}

// writeRunSheet records the batch metadata on its own sheet.
func writeRunSheet(f *excelize.File, batch *core.Batch) error {
	if _, err := f.NewSheet(runSheet); err != nil {
		return fmt.Errorf("creating run sheet: %w", err)
	}
	rows := [][]string{
		{"run_id", batch.RunID},
		{"started_at", batch.StartedAt.Format(time.RFC3339)},
		{"elapsed", batch.Elapsed.Round(time.Millisecond).String()},
		{"domains", fmt.Sprintf("%d", len(batch.Records))},
		{"failed", fmt.Sprintf("%d", batch.Failed())},
	}
	for i, row := range rows {
		if err := writeRow(f, runSheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}
