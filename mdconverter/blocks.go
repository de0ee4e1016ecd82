package mdconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

func (s *state) emit(block document.Block) {
	s.blocks = append(s.blocks, block)
}

func (s *state) emitSpacer() {
	s.emit(document.Block{
		Kind:   document.KindSpacer,
		Format: s.config.Style.SpacerFormat(),
	})
}

func (s *state) emitMarker(kind document.BlockKind) {
	s.emit(document.Block{Kind: kind})
}

// emitHeading emits a heading for levels 1..5. Deeper levels degrade to a
// paragraph with the marker stripped.
func (s *state) emitHeading(level int, text string) {
	runs := s.safeInline(text)
	if level > document.MaxHeadingLevel {
		s.addWarning(
			document.WarningUnsupportedHeading,
			string(document.KindHeading),
			fmt.Sprintf("heading level %d is not supported; emitted as paragraph", level),
		)
		s.emitParagraph(runs)
		return
	}

	s.emit(document.Block{
		Kind:   document.KindHeading,
		Level:  level,
		Text:   text,
		Runs:   runs,
		Format: s.config.Style.HeadingFormat(level),
	})
}

func (s *state) emitParagraph(runs []document.Run) {
	s.emit(document.Block{
		Kind:   document.KindParagraph,
		Runs:   runs,
		Format: s.config.Style.ParagraphFormat(),
	})
}

func (s *state) emitBlockquote(text string) {
	s.emit(document.Block{
		Kind:   document.KindBlockquote,
		Text:   text,
		Runs:   s.safeInline(text),
		Format: s.config.Style.BlockquoteFormat(),
	})
}

func (s *state) emitComment(text string) {
	s.emit(document.Block{
		Kind:   document.KindComment,
		Text:   text,
		Format: s.config.Style.CommentFormat(),
	})
}

// emitCodeBlock emits buffered code with leading and trailing blank lines
// trimmed. Interior lines keep their whitespace verbatim.
func (s *state) emitCodeBlock(language string, lines []string) {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	kept := make([]string, end-start)
	copy(kept, lines[start:end])

	s.emit(document.Block{
		Kind:     document.KindCodeBlock,
		Language: language,
		Lines:    kept,
		Format:   s.config.Style.CodeBlockFormat(),
	})
}

func (s *state) emitTable(headers []string, rows [][]string) {
	cells := make([][][]document.Run, 0, len(rows)+1)
	cells = append(cells, s.cellRuns(headers))
	for _, row := range rows {
		cells = append(cells, s.cellRuns(row))
	}

	s.emit(document.Block{
		Kind:    document.KindTable,
		Headers: headers,
		Rows:    rows,
		Cells:   cells,
		Format:  s.config.Style.TableFormat(),
	})
}

func (s *state) cellRuns(row []string) [][]document.Run {
	out := make([][]document.Run, len(row))
	for idx, cell := range row {
		out[idx] = s.safeInline(cell)
	}
	return out
}
