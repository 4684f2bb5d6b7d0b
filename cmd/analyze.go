// Package cmd — analyze command.
// This is the main command that orchestrates the pipeline for a batch
// of domains: fetch → parse → normalize → extract → assemble, then a
// summary table on stdout and the selected export formats on disk.
//
// Domains come from positional arguments, an --input file, or both.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EmmanuelEzenwere/SequelSift/config"
	"github.com/EmmanuelEzenwere/SequelSift/core"
	"github.com/EmmanuelEzenwere/SequelSift/core/assemble"
	"github.com/EmmanuelEzenwere/SequelSift/core/entities"
	"github.com/EmmanuelEzenwere/SequelSift/core/fetch"
	"github.com/EmmanuelEzenwere/SequelSift/core/normalize"
	"github.com/EmmanuelEzenwere/SequelSift/core/output"
	"github.com/EmmanuelEzenwere/SequelSift/core/parse"
	"github.com/EmmanuelEzenwere/SequelSift/core/product"
	"github.com/EmmanuelEzenwere/SequelSift/core/render"
	"github.com/EmmanuelEzenwere/SequelSift/core/snapshot"
	"github.com/EmmanuelEzenwere/SequelSift/crawl"
)

// Flag variables.
var (
	flagInput     string
	flagJSON      bool
	flagCSV       bool
	flagXLSX      bool
	flagMarkdown  bool
	flagPDF       bool
	flagOutputDir string
	flagSnapshots bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [domain ...]",
	Short: "Analyze domains and export company profiles",
	Long: `Analyze fetches each domain's website, extracts company name, founders,
description, and product information, and exports the assembled profiles.

Formats not selected by flag fall back to the configured export.formats.

Examples:
  sift analyze acme.com
  sift analyze acme.com othercorp.io --json --csv
  sift analyze --input domains.txt --xlsx --output_dir ./out
  sift analyze acme.com --snapshots`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input.
	analyzeCmd.Flags().StringVar(&flagInput, "input", "", "File with one domain per line (# comments allowed)")

	// Output format flags (any combination).
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Export JSON")
	analyzeCmd.Flags().BoolVar(&flagCSV, "csv", false, "Export CSV")
	analyzeCmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "Export XLSX")
	analyzeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Export Markdown")
	analyzeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Export PDF")

	// Destination.
	analyzeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: configured export.output_dir)")
	analyzeCmd.Flags().BoolVar(&flagSnapshots, "snapshots", false, "Archive fetched pages as Markdown snapshots")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	domains, err := collectDomains(args, flagInput)
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		return fmt.Errorf("no domains given: pass them as arguments or via --input")
	}

	dir := flagOutputDir
	if dir == "" {
		dir = cfg.Export.OutputDir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	pipeline, err := buildPipeline(cfg, writer)
	if err != nil {
		return err
	}
	runner := &core.Runner{
		Pipeline:      pipeline,
		Concurrency:   cfg.Runner.Concurrency,
		DomainTimeout: cfg.Runner.DomainTimeout,
		Log:           log,
	}

	batch := runner.Run(cmd.Context(), domains)

	printSummary(batch)
	return writeExports(batch, writer)
}

// collectDomains merges positional arguments with the optional input file.
func collectDomains(args []string, inputFile string) ([]string, error) {
	domains := make([]string, 0, len(args))
	domains = append(domains, args...)

	if inputFile != "" {
		fromFile, err := readDomainsFile(inputFile)
		if err != nil {
			return nil, err
		}
		domains = append(domains, fromFile...)
	}
	return domains, nil
}

// readDomainsFile reads one domain per line, skipping blanks and # comments.
func readDomainsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	var domains []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	return domains, nil
}

// buildPipeline assembles all pipeline stages from configuration.
func buildPipeline(cfg *config.Config, writer *output.Writer) (*core.Pipeline, error) {
	normalizer, err := normalize.New(cfg.Normalize.BoilerplateDenylist)
	if err != nil {
		return nil, fmt.Errorf("building normalizer: %w", err)
	}

	var names core.NameExtractor
	switch cfg.Extract.Engine {
	case "prose":
		names = entities.NewNER(cfg.Extract.FounderKeywords)
	default:
		names = entities.New(cfg.Extract.FounderKeywords)
	}

	p := &core.Pipeline{
		Fetcher: fetch.New(fetch.Config{
			MaxAttempts:    cfg.Fetch.MaxAttempts,
			BaseDelay:      cfg.Fetch.BaseDelay,
			MaxDelay:       cfg.Fetch.MaxDelay,
			RequestTimeout: cfg.Fetch.RequestTimeout,
			UserAgent:      cfg.Fetch.UserAgent,
			MaxBodyBytes:   cfg.Fetch.MaxBodyBytes,
			HostInterval:   cfg.Fetch.HostInterval,
		}, log),
		Parser:     parse.New(),
		Normalizer: normalizer,
		Names:      names,
		Products:   product.New(cfg.Extract.ProductKeywords),
		Assembler:  assemble.New(cfg.Extract.MinDescriptionLen),
		Discoverer: crawl.NewDiscoverer(cfg.Crawl.AboutKeywords),
		Log:        log,
		MaxPages:   cfg.Crawl.MaxPages,
	}
	if flagSnapshots || cfg.Export.Snapshots {
		p.Snapshots = snapshot.New(writer)
	}
	return p, nil
}

// printSummary renders the per-domain results as a table on stdout.
func printSummary(batch *core.Batch) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Domain", "Company", "Founders", "Products", "Error"})
	for _, rec := range batch.Records {
		t.AppendRow(table.Row{
			rec.Domain,
			clip(rec.CompanyName, 30),
			clip(strings.Join(rec.Founders, ", "), 40),
			clip(strings.Join(rec.ProductInfo.Products, ", "), 40),
			rec.ErrorKind,
		})
	}
	t.Render()

	fmt.Fprintf(os.Stdout, "\n%d domain(s), %d failed, %s\n",
		len(batch.Records), batch.Failed(), batch.Elapsed.Round(time.Millisecond))
}

// writeExports renders and writes every selected format.
func writeExports(batch *core.Batch, writer *output.Writer) error {
	name := exportName(batch)
	for _, format := range selectFormats() {
		renderer, err := newRenderer(format)
		if err != nil {
			return err
		}
		data, err := renderer.Render(batch)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", format, err)
		}
		path, err := writer.WriteBatch(name, data, renderer.Extension())
		if err != nil {
			return fmt.Errorf("writing %s: %w", format, err)
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}
	return nil
}

// selectFormats returns flag-selected formats, falling back to config.
func selectFormats() []string {
	var formats []string
	if flagJSON {
		formats = append(formats, "json")
	}
	if flagCSV {
		formats = append(formats, "csv")
	}
	if flagXLSX {
		formats = append(formats, "xlsx")
	}
	if flagMarkdown {
		formats = append(formats, "markdown")
	}
	if flagPDF {
		formats = append(formats, "pdf")
	}
	if len(formats) == 0 {
		formats = cfg.Export.Formats
	}
	return formats
}

// newRenderer creates the Renderer for a format name.
func newRenderer(format string) (core.Renderer, error) {
	switch format {
	case "json":
		return render.NewJSONRenderer(), nil
	case "csv":
		return render.NewCSVRenderer(), nil
	case "xlsx":
		return render.NewXLSXRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// exportName builds the batch file base name from the run ID.
func exportName(batch *core.Batch) string {
	id := batch.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return "profiles_" + id
}

// clip shortens a cell value so the summary table stays readable.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
