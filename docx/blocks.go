package docx

import (
	"fmt"

	"github.com/rgonek/md-docx-converter/document"
)

func (s *state) renderBlock(block document.Block, prev document.BlockKind) {
	switch block.Kind {
	case document.KindHeading:
		s.renderHeading(block)
	case document.KindParagraph, document.KindLink:
		s.paragraph(paraProps{format: block.Format}, block.Runs)
	case document.KindListItem:
		s.renderListItem(block, prev)
	case document.KindTable:
		s.renderTable(block)
	case document.KindBlockquote:
		s.paragraph(paraProps{style: "Quote", format: block.Format}, runsOrText(block))
	case document.KindComment:
		s.renderComment(block)
	case document.KindCodeBlock:
		s.renderCodeBlock(block)
	case document.KindImage:
		s.renderImage(block)
	case document.KindSpacer:
		s.paragraph(paraProps{format: block.Format}, nil)
	case document.KindPageBreak:
		s.body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
	case document.KindTOC:
		s.renderTOC()
	default:
		s.addWarning(document.WarningUnknownBlock, string(block.Kind), fmt.Sprintf("unknown block kind %q", block.Kind))
	}
}

// runsOrText falls back to one plain run for blocks built without runs.
func runsOrText(block document.Block) []document.Run {
	if len(block.Runs) > 0 {
		return block.Runs
	}
	if block.Text == "" {
		return nil
	}
	return []document.Run{{Text: block.Text}}
}

// renderHeading maps levels 1..5 onto the built-in heading styles so Word
// builds its outline and TOC from them.
func (s *state) renderHeading(block document.Block) {
	level := block.Level
	if level < 1 || level > document.MaxHeadingLevel {
		s.paragraph(paraProps{format: block.Format}, runsOrText(block))
		return
	}
	s.paragraph(paraProps{style: fmt.Sprintf("Heading%d", level), format: block.Format}, runsOrText(block))
}

// renderListItem writes a bullet or numbered paragraph. A numbered item that
// does not follow another numbered item starts a new list instance so the
// numbering restarts at 1.
func (s *state) renderListItem(block document.Block, prev document.BlockKind) {
	numID := bulletNumID
	if block.Ordered {
		if prev != document.KindListItem || s.currentList == 0 {
			s.orderedLists++
			s.currentList = orderedNumID(s.orderedLists)
		}
		numID = s.currentList
	} else if prev != document.KindListItem {
		s.currentList = 0
	}

	s.body.WriteString(`<w:p>`)
	writeParagraphProps(&s.body, paraProps{style: "ListParagraph", numID: numID, format: block.Format})
	s.writeRuns(&s.body, runsOrText(block), block.Format.Size)
	if block.BoldTail != "" {
		s.body.WriteString(`<w:r><w:br/></w:r>`)
		writeRun(&s.body, runProps{bold: true, size: block.Format.Size}, block.BoldTail)
	}
	s.body.WriteString(`</w:p>`)
}

func (s *state) renderTOC() {
	s.body.WriteString(`<w:p><w:pPr><w:pStyle w:val="TOCHeading"/></w:pPr>`)
	writeRun(&s.body, runProps{}, "Contents")
	s.body.WriteString(`</w:p>`)

	s.body.WriteString(`<w:p>`)
	s.body.WriteString(`<w:r><w:fldChar w:fldCharType="begin" w:dirty="true"/></w:r>`)
	s.body.WriteString(`<w:r><w:instrText xml:space="preserve"> TOC \o "1-5" \h \z \u </w:instrText></w:r>`)
	s.body.WriteString(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
	writeRun(&s.body, runProps{italic: true}, "Update the field to build the table of contents.")
	s.body.WriteString(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
	s.body.WriteString(`</w:p>`)
}

func (s *state) placeholder(format document.Format, alt string) {
	label := alt
	if label == "" {
		label = "image"
	}
	s.paragraph(paraProps{format: format}, []document.Run{{
		Text:   fmt.Sprintf("[Image could not be loaded: %s]", label),
		Italic: true,
		Color:  alertColor,
	}})
}
