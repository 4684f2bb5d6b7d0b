package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

func sampleBatch() *core.Batch {
	return &core.Batch{
		RunID:     "run-123",
		StartedAt: time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
		Elapsed:   1500 * time.Millisecond,
		Records: []*core.CompanyRecord{
			{
				Domain:      "acme.example",
				CompanyName: "Acme Robotics",
				Description: "Acme Robotics builds delivery robots for hospitals.",
				Founders:    []string{"Jane Doe", "John Roe"},
				ProductInfo: core.ProductInfo{
					Products: []string{"Autopilot"},
					Features: []string{"Navigation"},
				},
				Pages:     []string{"https://acme.example/", "https://acme.example/about"},
				Attempts:  1,
				FetchedAt: "2030-06-01T12:00:00Z",
			},
			{
				Domain:    "down.example",
				Attempts:  5,
				ErrorKind: "network_timeout",
				FetchedAt: "2030-06-01T12:00:01Z",
			},
		},
	}
}

func TestJSONRenderer_RoundTrips(t *testing.T) {
	data, err := NewJSONRenderer().Render(sampleBatch())
	require.NoError(t, err)

	var got core.Batch
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-123", got.RunID)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "Acme Robotics", got.Records[0].CompanyName)
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, got.Records[0].Founders)
	assert.Equal(t, "network_timeout", got.Records[1].ErrorKind)
}

func TestCSVRenderer_RowPerRecord(t *testing.T) {
	data, err := NewCSVRenderer().Render(sampleBatch())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "acme.example", rows[1][0])
	assert.Equal(t, "Jane Doe; John Roe", rows[1][3])
	assert.Equal(t, "Autopilot", rows[1][4])
	assert.Equal(t, "5", rows[2][7])
	assert.Equal(t, "network_timeout", rows[2][8])
}

func TestMarkdownRenderer_Report(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleBatch())
	require.NoError(t, err)

	report := string(data)
	assert.Contains(t, report, "# Company Profiles")
	assert.Contains(t, report, "## acme.example")
	assert.Contains(t, report, "**Acme Robotics**")
	assert.Contains(t, report, "- Jane Doe")
	assert.Contains(t, report, "- Autopilot")
	assert.Contains(t, report, "`network_timeout`")
}

func TestPDFRenderer_ProducesDocument(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleBatch())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should start with a PDF header")
}

func TestXLSXRenderer_Workbook(t *testing.T) {
	data, err := NewXLSXRenderer().Render(sampleBatch())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	domain, err := f.GetCellValue(companiesSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "acme.example", domain)

	founders, err := f.GetCellValue(companiesSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe; John Roe", founders)

	runID, err := f.GetCellValue(runSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "run-123", runID)
}

func TestExtensions(t *testing.T) {
	cases := []struct {
		name string
		r    core.Renderer
		ext  string
	}{
		{"json", NewJSONRenderer(), ".json"},
		{"csv", NewCSVRenderer(), ".csv"},
		{"markdown", NewMarkdownRenderer(), ".md"},
		{"pdf", NewPDFRenderer(), ".pdf"},
		{"xlsx", NewXLSXRenderer(), ".xlsx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ext, tc.r.Extension())
		})
	}
}
