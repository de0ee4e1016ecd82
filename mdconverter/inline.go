package mdconverter

import (
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

// inlineFormatter holds one flat toggle per style. There is no nesting
// stack, so unbalanced markers simply leave a toggle on until line end.
type inlineFormatter struct {
	bold   bool
	italic bool
	code   bool
	buf    strings.Builder
	runs   []document.Run
}

// formatInline splits one line into styled runs. Backticks toggle code,
// "**" toggles bold and a lone "*" toggles italic. Inside code only the
// closing backtick is special. Toggle state never carries over to the next
// line.
func formatInline(text string) []document.Run {
	f := &inlineFormatter{}
	runes := []rune(text)

	for idx := 0; idx < len(runes); idx++ {
		ch := runes[idx]
		switch {
		case ch == '`':
			f.flush()
			f.code = !f.code
		case f.code:
			f.buf.WriteRune(ch)
		case ch == '*' && idx+1 < len(runes) && runes[idx+1] == '*':
			f.flush()
			f.bold = !f.bold
			idx++
		case ch == '*':
			// The asterisk before this one, if any, was consumed as a bold
			// marker, so a lone asterisk here is never adjacent to a free one.
			f.flush()
			f.italic = !f.italic
		default:
			f.buf.WriteRune(ch)
		}
	}
	f.flush()

	return f.runs
}

// flush emits the buffered text with the current, pre-toggle flags.
func (f *inlineFormatter) flush() {
	if f.buf.Len() == 0 {
		return
	}
	f.runs = append(f.runs, document.Run{
		Text:   f.buf.String(),
		Bold:   f.bold,
		Italic: f.italic,
		Code:   f.code,
	})
	f.buf.Reset()
}

// safeInline runs the inline formatter and degrades to one plain run if it
// panics.
func (s *state) safeInline(text string) (runs []document.Run) {
	defer func() {
		if r := recover(); r != nil {
			s.addWarning(document.WarningInlineFallback, string(document.KindParagraph), "inline formatting failed; using plain text")
			runs = plainRuns(text)
		}
	}()
	return s.inline(text)
}

func plainRuns(text string) []document.Run {
	if text == "" {
		return nil
	}
	return []document.Run{{Text: text}}
}
