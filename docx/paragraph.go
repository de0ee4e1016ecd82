package docx

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

// Letter portrait with one inch margins, in twips.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
	pageMarginTwips = 1440
	textWidthTwips  = pageWidthTwips - 2*pageMarginTwips
)

const (
	bodyFont       = "Calibri"
	codeFont       = "Consolas"
	codeShading    = "F6F8FA"
	inlineCodeFill = "EEEEEE"
	hyperlinkColor = "0563C1"
	alertColor     = "C00000"
)

type paraProps struct {
	style   string
	numID   int
	shading string
	format  document.Format
	// noBefore and noAfter drop spacing between lines of one code block.
	noBefore bool
	noAfter  bool
}

type runProps struct {
	style   string
	font    string
	bold    bool
	italic  bool
	color   string
	size    int
	shading string
}

// escape XML-escapes text for element content and attribute values.
func escape(text string) string {
	var b strings.Builder
	xml.Escape(&b, []byte(text))
	return b.String()
}

func justification(align document.Alignment) string {
	switch align {
	case document.AlignCenter:
		return "center"
	case document.AlignRight:
		return "right"
	case document.AlignJustified:
		return "both"
	default:
		return "left"
	}
}

// writeParagraphProps writes a w:pPr. Child order follows the schema.
func writeParagraphProps(b *strings.Builder, p paraProps) {
	b.WriteString(`<w:pPr>`)
	if p.style != "" {
		fmt.Fprintf(b, `<w:pStyle w:val="%s"/>`, p.style)
	}
	if p.numID > 0 {
		fmt.Fprintf(b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, p.numID)
	}
	if p.shading != "" {
		fmt.Fprintf(b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, p.shading)
	}

	before, after := p.format.SpacingBefore, p.format.SpacingAfter
	if p.noBefore {
		before = 0
	}
	if p.noAfter {
		after = 0
	}
	b.WriteString(`<w:spacing`)
	fmt.Fprintf(b, ` w:before="%d" w:after="%d"`, before, after)
	if p.format.LineSpacing > 0 {
		fmt.Fprintf(b, ` w:line="%d" w:lineRule="auto"`, p.format.LineSpacing)
	}
	b.WriteString(`/>`)

	fmt.Fprintf(b, `<w:jc w:val="%s"/>`, justification(p.format.Alignment))
	b.WriteString(`</w:pPr>`)
}

// writeRunProps writes a w:rPr, or nothing when no property is set.
func writeRunProps(b *strings.Builder, rp runProps) {
	if rp == (runProps{}) {
		return
	}
	b.WriteString(`<w:rPr>`)
	if rp.style != "" {
		fmt.Fprintf(b, `<w:rStyle w:val="%s"/>`, rp.style)
	}
	if rp.font != "" {
		fmt.Fprintf(b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>`, rp.font)
	}
	if rp.bold {
		b.WriteString(`<w:b/><w:bCs/>`)
	}
	if rp.italic {
		b.WriteString(`<w:i/><w:iCs/>`)
	}
	if rp.color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, rp.color)
	}
	if rp.size > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, rp.size, rp.size)
	}
	if rp.shading != "" {
		fmt.Fprintf(b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, rp.shading)
	}
	b.WriteString(`</w:rPr>`)
}

// writeRun writes one w:r. Tabs become w:tab so they survive in Word.
func writeRun(b *strings.Builder, rp runProps, text string) {
	b.WriteString(`<w:r>`)
	writeRunProps(b, rp)
	for idx, segment := range strings.Split(text, "\t") {
		if idx > 0 {
			b.WriteString(`<w:tab/>`)
		}
		if segment == "" {
			continue
		}
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escape(segment))
	}
	b.WriteString(`</w:r>`)
}

func inlineRunProps(run document.Run, size int) runProps {
	rp := runProps{
		bold:   run.Bold,
		italic: run.Italic,
		color:  run.Color,
		size:   size,
	}
	if run.Code {
		rp.font = codeFont
		rp.shading = inlineCodeFill
	}
	return rp
}

// writeRuns writes inline runs. Runs with a link target are wrapped in a
// w:hyperlink backed by an external relationship.
func (s *state) writeRuns(b *strings.Builder, runs []document.Run, size int) {
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		rp := inlineRunProps(run, size)
		if run.Link == "" {
			writeRun(b, rp, run.Text)
			continue
		}

		rp.style = "Hyperlink"
		fmt.Fprintf(b, `<w:hyperlink r:id="%s" w:history="1">`, s.linkRelationship(run.Link))
		writeRun(b, rp, run.Text)
		b.WriteString(`</w:hyperlink>`)
	}
}

// paragraph writes a complete w:p holding the given runs.
func (s *state) paragraph(p paraProps, runs []document.Run) {
	s.body.WriteString(`<w:p>`)
	writeParagraphProps(&s.body, p)
	s.writeRuns(&s.body, runs, p.format.Size)
	s.body.WriteString(`</w:p>`)
}
