package mdconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

// walk visits every line once, forward only. Handlers return the index of
// the next line to visit so tables and list continuations can skip ahead.
func (s *state) walk() {
	for idx := 0; idx < len(s.lines); {
		idx = s.processLine(idx)
	}
	s.finish()
}

// processLine is the per-line error boundary: a panic while handling one
// line is logged and the line is skipped.
func (s *state) processLine(idx int) (next int) {
	next = idx + 1
	s.line = idx + 1

	defer func() {
		if r := recover(); r != nil {
			s.addWarning(document.WarningLineSkipped, "line", fmt.Sprintf("line skipped after internal error: %v", r))
		}
	}()

	return s.dispatch(idx)
}

func (s *state) dispatch(idx int) int {
	line := s.lines[idx]
	trimmed := strings.TrimSpace(line)

	if isFence(line) {
		s.toggleCodeBlock(trimmed)
		return idx + 1
	}

	if s.inCodeBlock {
		if isBlank(line) {
			s.codeLines = append(s.codeLines, "")
		} else {
			s.codeLines = append(s.codeLines, line)
		}
		return idx + 1
	}

	if isBlank(line) {
		s.flushList()
		s.emitSpacer()
		return idx + 1
	}

	switch trimmed {
	case tocMarker:
		s.flushList()
		s.emitMarker(document.KindTOC)
		return idx + 1
	case pageBreakMarker:
		s.flushList()
		s.emitMarker(document.KindPageBreak)
		return idx + 1
	}

	if match := headingRe.FindStringSubmatch(trimmed); match != nil {
		s.flushList()
		s.emitHeading(len(match[1]), strings.TrimSpace(match[2]))
		return idx + 1
	}

	if tableStartsAt(s.lines, idx) {
		s.flushList()
		return s.handleTable(idx)
	}

	if text, ok := unorderedItemText(trimmed); ok {
		return s.handleUnorderedItem(idx, text)
	}

	if text, ok := orderedItemText(line); ok {
		s.bufferListItem(text, "", true)
		return idx + 1
	}

	if rest, ok := strings.CutPrefix(trimmed, "> "); ok {
		s.flushList()
		s.emitBlockquote(strings.TrimSpace(rest))
		return idx + 1
	}

	if rest, ok := strings.CutPrefix(trimmed, commentMarker); ok {
		s.flushList()
		s.emitComment(strings.TrimSpace(rest))
		return idx + 1
	}

	if locs := imageRe.FindAllStringSubmatchIndex(trimmed, -1); locs != nil {
		s.handleImages(trimmed, locs)
		return idx + 1
	}

	if linkRe.MatchString(trimmed) {
		s.flushList()
		s.emitLinkParagraph(trimmed)
		return idx + 1
	}

	s.flushList()
	s.emitParagraph(s.safeInline(trimmed))
	return idx + 1
}

func (s *state) toggleCodeBlock(trimmed string) {
	if !s.inCodeBlock {
		s.flushList()
		s.inCodeBlock = true
		s.codeLanguage = ""
		if fields := strings.Fields(strings.TrimPrefix(trimmed, fenceMarker)); len(fields) > 0 {
			s.codeLanguage = fields[0]
		}
		s.codeLines = nil
		return
	}

	s.emitCodeBlock(s.codeLanguage, s.codeLines)
	s.inCodeBlock = false
	s.codeLines = nil
	s.codeLanguage = ""
}

// handleTable consumes the next pre-scanned table. On a mismatch it still
// skips the lines the pre-scan assigned to the table so later tables stay
// aligned with the cursor.
func (s *state) handleTable(idx int) int {
	if s.tableCursor >= len(s.tables) {
		s.addWarning(document.WarningMalformedTable, string(document.KindTable), "table marker without a pre-scanned table; emitted as text")
		s.emitParagraph(plainRuns(pipeStripped(s.lines[idx])))
		return idx + 1
	}

	found := s.tables[s.tableCursor]
	s.tableCursor++
	end := min(idx+found.span(), len(s.lines))

	if !found.wellFormed() {
		s.addWarning(
			document.WarningMalformedTable,
			string(document.KindTable),
			fmt.Sprintf("table has %d header cells and mismatched rows; emitted as text", len(found.headers)),
		)
		for lineIdx := idx; lineIdx < end; lineIdx++ {
			if lineIdx == idx+1 {
				continue
			}
			if text := pipeStripped(s.lines[lineIdx]); text != "" {
				s.emitParagraph(plainRuns(text))
			}
		}
		return end
	}

	s.emitTable(found.headers, found.rows)
	return end
}

func (s *state) handleUnorderedItem(idx int, text string) int {
	next := idx + 1
	tail := ""
	if next < len(s.lines) {
		if bold, ok := boldContinuation(s.lines[next]); ok {
			tail = bold
			next++
		}
	}
	s.bufferListItem(text, tail, false)
	return next
}

// finish flushes an unclosed code block and any pending list items.
func (s *state) finish() {
	if s.inCodeBlock {
		s.line = len(s.lines)
		s.addWarning(document.WarningUnclosedCodeBlock, string(document.KindCodeBlock), "code block not closed before end of input")
		s.emitCodeBlock(s.codeLanguage, s.codeLines)
		s.inCodeBlock = false
		s.codeLines = nil
	}
	s.flushList()
}
