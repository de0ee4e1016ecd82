package mdconverter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/logging"
)

func newTestConverter(t testing.TB, cfg Config) *Converter {
	t.Helper()
	conv, err := New(cfg)
	require.NoError(t, err)
	return conv
}

func convert(t testing.TB, markdown string) Result {
	t.Helper()
	result, err := newTestConverter(t, Config{}).Convert(context.Background(), markdown)
	require.NoError(t, err)
	return result
}

func kinds(blocks []document.Block) []document.BlockKind {
	out := make([]document.BlockKind, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, block.Kind)
	}
	return out
}

func TestConvertEmptyDocument(t *testing.T) {
	result := convert(t, "")
	assert.Empty(t, result.Document.Blocks)
	assert.Empty(t, result.Warnings)
}

func TestConvertTitleScenario(t *testing.T) {
	result := convert(t, "# Title\n\nHello **world**")
	blocks := result.Document.Blocks

	require.Equal(t, []document.BlockKind{document.KindHeading, document.KindSpacer, document.KindParagraph}, kinds(blocks))
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "Title", blocks[0].Text)
	assert.Equal(t, []document.Run{{Text: "Title"}}, blocks[0].Runs)
	assert.Equal(t, []document.Run{{Text: "Hello "}, {Text: "world", Bold: true}}, blocks[2].Runs)
	assert.Empty(t, result.Warnings)
}

func TestConvertResolvesDefaultFormats(t *testing.T) {
	blocks := convert(t, "# Title\n## Sub\nbody").Document.Blocks
	require.Len(t, blocks, 3)

	assert.Equal(t, document.AlignCenter, blocks[0].Format.Alignment)
	assert.Equal(t, 480, blocks[0].Format.SpacingBefore)
	assert.Equal(t, 120, blocks[0].Format.SpacingAfter)
	assert.Equal(t, document.AlignRight, blocks[1].Format.Alignment)
	assert.Equal(t, 24, blocks[2].Format.Size)
	assert.Equal(t, 276, blocks[2].Format.LineSpacing)
}

func TestConvertAppliesStyleOverrides(t *testing.T) {
	conv := newTestConverter(t, Config{Style: document.Style{
		Heading1Alignment: document.AlignLeft,
		ParagraphSize:     30,
		ParagraphSpacing:  document.Int(0),
	}})

	result, err := conv.Convert(context.Background(), "# T\ntext")
	require.NoError(t, err)
	blocks := result.Document.Blocks
	assert.Equal(t, document.AlignLeft, blocks[0].Format.Alignment)
	assert.Equal(t, 30, blocks[1].Format.Size)
	assert.Equal(t, 0, blocks[1].Format.SpacingBefore)
}

func TestNewRejectsInvalidStyle(t *testing.T) {
	_, err := New(Config{Style: document.Style{TitleSize: 90}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titleSize")
}

func TestConverterIsReentrant(t *testing.T) {
	conv := newTestConverter(t, Config{})
	inputs := []string{"- a\n- b", "| A | B |\n|---|---|\n| 1 | 2 |", "```go\nx := 1\n```"}

	done := make(chan Result, len(inputs)*4)
	for round := 0; round < 4; round++ {
		for _, input := range inputs {
			go func(md string) {
				res, err := conv.Convert(context.Background(), md)
				assert.NoError(t, err)
				done <- res
			}(input)
		}
	}
	for i := 0; i < len(inputs)*4; i++ {
		res := <-done
		assert.NotEmpty(t, res.Document.Blocks)
	}
}

func TestWarningsAreLogged(t *testing.T) {
	recorder := logging.NewRecorder()
	conv := newTestConverter(t, Config{Logger: recorder})

	result, err := conv.Convert(context.Background(), "###### deep")
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 1, recorder.Count("warn"))
	assert.Equal(t, "mdconverter", recorder.Entries()[0].Fields["component"])
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
	// NFD e + combining acute normalizes to the precomposed form.
	assert.Equal(t, []string{"caf\u00e9"}, splitLines("cafe\u0301"))
}
