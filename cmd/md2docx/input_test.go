package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "plain utf-8", data: []byte("# Title"), want: "# Title"},
		{name: "utf-8 bom", data: []byte{0xEF, 0xBB, 0xBF, '#', ' ', 'A'}, want: "# A"},
		{name: "utf-16 le", data: []byte{0xFF, 0xFE, '#', 0, ' ', 0, 'A', 0}, want: "# A"},
		{name: "utf-16 be", data: []byte{0xFE, 0xFF, 0, '#', 0, ' ', 0, 'A'}, want: "# A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMarkdownStdin(t *testing.T) {
	got, err := readMarkdown("-", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestReadMarkdownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Doc\n"), 0o644))

	got, err := readMarkdown(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "# Doc\n", got)

	_, err = readMarkdown(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.Error(t, err)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("notes", "report.docx"), defaultOutputPath(filepath.Join("notes", "report.md")))
	assert.Equal(t, "README.docx", defaultOutputPath("README"))
	assert.Equal(t, "document.docx", defaultOutputPath("-"))
}
