package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/md-docx-converter/converter"
	"github.com/rgonek/md-docx-converter/document"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertCommandWritesDocx(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "report.md", "# Report\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")

	stdout, _, err := execute(t, "convert", input, "--mode", "report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "report.docx")

	data, err := os.ReadFile(filepath.Join(dir, "report.docx"))
	require.NoError(t, err)
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.NotEmpty(t, reader.File)
}

func TestConvertCommandReportsWarnings(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", "```go\nfmt.Println()\n")
	output := filepath.Join(dir, "out.docx")

	stdout, stderr, err := execute(t, "convert", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 warnings")
	assert.Contains(t, stderr, "not closed")
	assert.FileExists(t, output)
}

func TestConvertCommandRejectsEmptyInput(t *testing.T) {
	input := writeFile(t, t.TempDir(), "empty.md", "  \n")

	_, _, err := execute(t, "convert", input)
	require.Error(t, err)
	assert.Equal(t, converter.CodeEmptyMarkdown, converter.ErrorCode(err))
}

func TestConvertCommandRejectsInvalidMode(t *testing.T) {
	input := writeFile(t, t.TempDir(), "doc.md", "text\n")

	_, _, err := execute(t, "convert", input, "--mode", "memo")
	require.Error(t, err)
	assert.Equal(t, converter.CodeInvalidMode, converter.ErrorCode(err))
}

func TestStyleCommandAppliesPresetAndConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "md2docx.yaml", "preset: compact\nstyle:\n  titleSize: 40\n  paragraphAlignment: JUSTIFIED\n")

	stdout, _, err := execute(t, "style", "--config", config)
	require.NoError(t, err)

	var style document.Style
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &style))
	assert.Equal(t, 40, style.TitleSize)
	assert.Equal(t, 20, style.ParagraphSize)
	assert.Equal(t, document.AlignJustified, style.ParagraphAlignment)
	require.NotNil(t, style.ParagraphSpacing)
	assert.Equal(t, 60, *style.ParagraphSpacing)
}

func TestStyleCommandRejectsInvalidStyle(t *testing.T) {
	config := writeFile(t, t.TempDir(), "md2docx.yaml", "style:\n  titleSize: 200\n")

	_, _, err := execute(t, "style", "--config", config)
	require.Error(t, err)
	assert.Equal(t, "INVALID_STYLE_TITLE_SIZE", converter.ErrorCode(err))
}

func TestStyleCommandUnknownPreset(t *testing.T) {
	_, _, err := execute(t, "style", "--preset", "tiny")
	require.Error(t, err)
}

func TestNodesCommandPrintsJSON(t *testing.T) {
	input := writeFile(t, t.TempDir(), "doc.md", "# Title\n- one\n- two")

	stdout, _, err := execute(t, "nodes", input)
	require.NoError(t, err)

	var out struct {
		Document struct {
			Blocks []struct {
				Kind string `json:"kind"`
			} `json:"blocks"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Document.Blocks, 3)
	assert.Equal(t, "heading", out.Document.Blocks[0].Kind)
}
