package docx

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/rgonek/md-docx-converter/document"
)

type codeToken struct {
	text   string
	color  string
	bold   bool
	italic bool
}

// highlightLines colors code with the chroma lexer for language. Unknown
// languages, or a lexer error, yield one uncolored token per line.
func highlightLines(language, theme string, lines []string) [][]codeToken {
	plain := func() [][]codeToken {
		out := make([][]codeToken, len(lines))
		for idx, line := range lines {
			if line != "" {
				out[idx] = []codeToken{{text: line}}
			}
		}
		return out
	}

	if language == "" || len(lines) == 0 {
		return plain()
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return plain()
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plain()
	}

	out := make([][]codeToken, 1, len(lines))
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := style.Get(token.Type)
		for idx, segment := range strings.Split(token.Value, "\n") {
			if idx > 0 {
				out = append(out, nil)
			}
			if segment == "" {
				continue
			}
			tok := codeToken{
				text:   segment,
				bold:   entry.Bold == chroma.Yes,
				italic: entry.Italic == chroma.Yes,
			}
			if entry.Colour.IsSet() {
				tok.color = fmt.Sprintf("%02X%02X%02X", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
			}
			last := len(out) - 1
			out[last] = append(out[last], tok)
		}
	}

	// lexers usually terminate the source with a newline of their own
	for len(out) < len(lines) {
		out = append(out, nil)
	}
	return out[:len(lines)]
}

// renderCodeBlock writes one paragraph per source line in the Code style,
// keeping leading whitespace. Block spacing applies only to the outer lines.
func (s *state) renderCodeBlock(block document.Block) {
	lines := block.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	highlighted := highlightLines(block.Language, s.options.CodeTheme, lines)

	last := len(highlighted) - 1
	for idx, tokens := range highlighted {
		s.body.WriteString(`<w:p>`)
		writeParagraphProps(&s.body, paraProps{
			style:    "Code",
			shading:  codeShading,
			format:   block.Format,
			noBefore: idx > 0,
			noAfter:  idx < last,
		})
		for _, tok := range tokens {
			writeRun(&s.body, runProps{
				font:   codeFont,
				bold:   tok.bold,
				italic: tok.italic,
				color:  tok.color,
				size:   block.Format.Size,
			}, tok.text)
		}
		s.body.WriteString(`</w:p>`)
	}
}
