// Package render — JSON renderer.
// Serializes a full batch, run metadata and per-domain records included,
// as indented JSON. This is the canonical machine-readable output; the
// other renderers derive their layouts from the same record fields.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// JSONRenderer produces indented JSON output for a batch.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the batch with two-space indentation.
func (r *JSONRenderer) Render(batch *core.Batch) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
