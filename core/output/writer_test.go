package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBatch(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	path, err := w.WriteBatch("companies", []byte(`[]`), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "companies.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteSnapshot_CreatesDomainTree(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteSnapshot("acme.example", "https://acme.example/about/team", []byte("# Team"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "snapshots", "acme_example", "acme_example_about_team.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Team", string(data))
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"bare host", "https://example.com", "example_com"},
		{"host and path", "https://example.com/docs/intro", "example_com_docs_intro"},
		{"trailing slash", "https://example.com/about/", "example_com_about"},
		{"port and dash", "http://127.0.0.1:8080/a-b", "127_0_0_1_8080_a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromURL(tt.url))
		})
	}
}
