// Package render provides output renderers for finished batches.
// This file implements the Markdown renderer, which writes a readable
// report: a run summary followed by one section per domain.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// MarkdownRenderer writes a human-readable Markdown report.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the report section by section.
func (r *MarkdownRenderer) Render(batch *core.Batch) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Company Profiles\n\n")
	fmt.Fprintf(&b, "Run %s — %d domains, %d failed, %s.\n",
		batch.RunID, len(batch.Records), batch.Failed(), batch.Elapsed.Round(time.Millisecond))

	for _, rec := range batch.Records {
		b.WriteString("\n## " + rec.Domain + "\n\n")
		if rec.ErrorKind != "" {
			fmt.Fprintf(&b, "Failed after %d attempt(s): `%s`\n", rec.Attempts, rec.ErrorKind)
			continue
		}
		if rec.CompanyName != "" {
			fmt.Fprintf(&b, "**%s**\n\n", rec.CompanyName)
		}
		if rec.Description != "" {
			b.WriteString(rec.Description + "\n")
		}
		writeList(&b, "Founders", rec.Founders)
		writeList(&b, "Products", rec.ProductInfo.Products)
		writeList(&b, "Features", rec.ProductInfo.Features)
		writeList(&b, "Pages", rec.Pages)
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// writeList emits a titled bullet list, or nothing when the list is empty.
func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}
