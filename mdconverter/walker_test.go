package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/md-docx-converter/document"
)

func TestHeadings(t *testing.T) {
	blocks := convert(t, "# One\n## Two\n### Three\n#### Four\n##### Five").Document.Blocks
	require.Len(t, blocks, 5)
	for idx, block := range blocks {
		assert.Equal(t, document.KindHeading, block.Kind)
		assert.Equal(t, idx+1, block.Level)
	}
	assert.Equal(t, "Five", blocks[4].Text)
	assert.Equal(t, 18, blocks[4].Format.Size)
}

func TestHeadingInlineFormatting(t *testing.T) {
	blocks := convert(t, "## **Bold** head").Document.Blocks
	require.Len(t, blocks, 1)
	assert.Equal(t, "**Bold** head", blocks[0].Text)
	assert.Equal(t, []document.Run{{Text: "Bold", Bold: true}, {Text: " head"}}, blocks[0].Runs)
}

func TestDeepHeadingDegradesToParagraph(t *testing.T) {
	result := convert(t, "###### Deep")
	require.Len(t, result.Document.Blocks, 1)
	block := result.Document.Blocks[0]
	assert.Equal(t, document.KindParagraph, block.Kind)
	assert.Equal(t, []document.Run{{Text: "Deep"}}, block.Runs)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, document.WarningUnsupportedHeading, result.Warnings[0].Type)
	assert.Equal(t, 1, result.Warnings[0].Line)
}

func TestHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks := convert(t, "#hashtag").Document.Blocks
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindParagraph, blocks[0].Kind)
	assert.Equal(t, "#hashtag", document.PlainText(blocks[0].Runs))
}

func TestBlankLinesEmitSpacers(t *testing.T) {
	blocks := convert(t, "a\n\n\nb").Document.Blocks
	assert.Equal(t, []document.BlockKind{
		document.KindParagraph, document.KindSpacer, document.KindSpacer, document.KindParagraph,
	}, kinds(blocks))
}

func TestListItemsFlushBeforeNextBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []document.BlockKind
	}{
		{
			name:  "paragraph",
			input: "- a\n- b\ntext",
			want:  []document.BlockKind{document.KindListItem, document.KindListItem, document.KindParagraph},
		},
		{
			name:  "heading",
			input: "- a\n# H",
			want:  []document.BlockKind{document.KindListItem, document.KindHeading},
		},
		{
			name:  "blank line",
			input: "* a\n\nb",
			want:  []document.BlockKind{document.KindListItem, document.KindSpacer, document.KindParagraph},
		},
		{
			name:  "code fence",
			input: "- a\n```\nx\n```",
			want:  []document.BlockKind{document.KindListItem, document.KindCodeBlock},
		},
		{
			name:  "table",
			input: "- a\n| A |\n|---|\n| 1 |",
			want:  []document.BlockKind{document.KindListItem, document.KindTable},
		},
		{
			name:  "end of input",
			input: "- a\n1. b",
			want:  []document.BlockKind{document.KindListItem, document.KindListItem},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(convert(t, tt.input).Document.Blocks))
		})
	}
}

func TestListItemBoldContinuation(t *testing.T) {
	blocks := convert(t, "- Item\n**Detail**\n- Next").Document.Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, "Item", blocks[0].Text)
	assert.Equal(t, "Detail", blocks[0].BoldTail)
	assert.Equal(t, "Next", blocks[1].Text)
	assert.Empty(t, blocks[1].BoldTail)
}

func TestOrderedAndUnorderedItems(t *testing.T) {
	blocks := convert(t, "1. one\n  2. two\n- **bold** item").Document.Blocks
	require.Len(t, blocks, 3)

	assert.True(t, blocks[0].Ordered)
	assert.Equal(t, "one", blocks[0].Text)
	assert.True(t, blocks[1].Ordered)
	assert.Equal(t, "two", blocks[1].Text)
	assert.False(t, blocks[2].Ordered)
	assert.Equal(t, []document.Run{{Text: "bold", Bold: true}, {Text: " item"}}, blocks[2].Runs)
	assert.Equal(t, 120, blocks[2].Format.SpacingAfter)
}

func TestCodeBlock(t *testing.T) {
	blocks := convert(t, "```go\n\n  x := 1\n\n  # not a heading\n\n```").Document.Blocks
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, document.KindCodeBlock, block.Kind)
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, []string{"  x := 1", "", "  # not a heading"}, block.Lines)
	assert.Equal(t, 20, block.Format.Size)
	assert.Equal(t, document.LineSpacingBase, block.Format.LineSpacing)
}

func TestIndentedFenceIsCodeContent(t *testing.T) {
	result := convert(t, "```\nbefore\n    ```\nafter\n```\ntext")
	blocks := result.Document.Blocks

	require.Equal(t, []document.BlockKind{document.KindCodeBlock, document.KindParagraph}, kinds(blocks))
	assert.Equal(t, []string{"before", "    ```", "after"}, blocks[0].Lines)
	assert.Empty(t, result.Warnings)
}

func TestUnclosedCodeBlock(t *testing.T) {
	result := convert(t, "```py\nprint(1)")
	require.Len(t, result.Document.Blocks, 1)
	assert.Equal(t, []string{"print(1)"}, result.Document.Blocks[0].Lines)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, document.WarningUnclosedCodeBlock, result.Warnings[0].Type)
}

func TestBlockquoteAndComment(t *testing.T) {
	blocks := convert(t, "> quoted *text*\n>tight\nCOMMENT: check this").Document.Blocks
	require.Equal(t, []document.BlockKind{document.KindBlockquote, document.KindParagraph, document.KindComment}, kinds(blocks))

	assert.Equal(t, "quoted *text*", blocks[0].Text)
	assert.Equal(t, []document.Run{{Text: "quoted "}, {Text: "text", Italic: true}}, blocks[0].Runs)
	assert.Equal(t, ">tight", document.PlainText(blocks[1].Runs))
	assert.Equal(t, "check this", blocks[2].Text)
}

func TestMarkers(t *testing.T) {
	blocks := convert(t, "[TOC]\n# A\n\\pagebreak\n# B").Document.Blocks
	assert.Equal(t, []document.BlockKind{
		document.KindTOC, document.KindHeading, document.KindPageBreak, document.KindHeading,
	}, kinds(blocks))
}

func TestTable(t *testing.T) {
	result := convert(t, "| A | B |\n|---|---|\n| 1 | **2** |")
	require.Len(t, result.Document.Blocks, 1)
	assert.Equal(t, 1, result.Tables)

	block := result.Document.Blocks[0]
	assert.Equal(t, document.KindTable, block.Kind)
	assert.Equal(t, []string{"A", "B"}, block.Headers)
	assert.Equal(t, [][]string{{"1", "**2**"}}, block.Rows)
	require.Len(t, block.Cells, 2)
	assert.Equal(t, []document.Run{{Text: "A"}}, block.Cells[0][0])
	assert.Equal(t, []document.Run{{Text: "2", Bold: true}}, block.Cells[1][1])
	assert.Empty(t, result.Warnings)
}

func TestMalformedTableFallsBackToText(t *testing.T) {
	result := convert(t, "| A | B |\n|---|---|\n| 1 |\nafter")
	blocks := result.Document.Blocks

	require.Equal(t, []document.BlockKind{document.KindParagraph, document.KindParagraph, document.KindParagraph}, kinds(blocks))
	assert.Equal(t, "A B", document.PlainText(blocks[0].Runs))
	assert.Equal(t, "1", document.PlainText(blocks[1].Runs))
	assert.Equal(t, "after", document.PlainText(blocks[2].Runs))

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, document.WarningMalformedTable, result.Warnings[0].Type)
}

func TestMalformedTableKeepsLaterTablesAligned(t *testing.T) {
	result := convert(t, "| A | B |\n|---|---|\n| 1 |\n\n| C |\n|---|\n| 3 |")
	blocks := result.Document.Blocks

	var tables []document.Block
	for _, block := range blocks {
		if block.Kind == document.KindTable {
			tables = append(tables, block)
		}
	}
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"C"}, tables[0].Headers)
}

func TestTableInsideCodeBlockStaysCode(t *testing.T) {
	result := convert(t, "```\n| A |\n|---|\n```\n| B |\n|---|\n| 2 |")
	blocks := result.Document.Blocks

	require.Equal(t, []document.BlockKind{document.KindCodeBlock, document.KindTable}, kinds(blocks))
	assert.Equal(t, []string{"| A |", "|---|"}, blocks[0].Lines)
	assert.Equal(t, []string{"B"}, blocks[1].Headers)
	assert.Equal(t, 1, result.Tables)
}

func TestTableWithoutRows(t *testing.T) {
	blocks := convert(t, "| A | B |\n|---|---|\ntext").Document.Blocks
	require.Equal(t, []document.BlockKind{document.KindTable, document.KindParagraph}, kinds(blocks))
	assert.Empty(t, blocks[0].Rows)
}
