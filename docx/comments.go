package docx

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgonek/md-docx-converter/document"
)

type comment struct {
	id   int
	text string
}

// renderComment anchors a Word comment on an empty paragraph at the
// comment's position in the flow.
func (s *state) renderComment(block document.Block) {
	id := len(s.comments)
	s.comments = append(s.comments, comment{id: id, text: block.Text})

	s.body.WriteString(`<w:p>`)
	writeParagraphProps(&s.body, paraProps{format: block.Format})
	fmt.Fprintf(&s.body, `<w:commentRangeStart w:id="%d"/><w:commentRangeEnd w:id="%d"/>`, id, id)
	fmt.Fprintf(&s.body, `<w:r><w:rPr><w:rStyle w:val="CommentReference"/></w:rPr><w:commentReference w:id="%d"/></w:r>`, id)
	s.body.WriteString(`</w:p>`)
}

func (s *state) commentsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:comments xmlns:w="` + nsMain + `">`)

	author := escape(s.options.Author)
	initials := escape(initialsOf(s.options.Author))
	stamp := s.options.Created.Format(time.RFC3339)
	for _, c := range s.comments {
		fmt.Fprintf(&b, `<w:comment w:id="%d" w:author="%s" w:date="%s" w:initials="%s">`, c.id, author, stamp, initials)
		b.WriteString(`<w:p><w:pPr><w:pStyle w:val="CommentText"/></w:pPr>`)
		writeRun(&b, runProps{}, c.text)
		b.WriteString(`</w:p></w:comment>`)
	}

	b.WriteString(`</w:comments>`)
	return b.String()
}

func initialsOf(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			out = append(out, r)
			break
		}
	}
	return strings.ToUpper(string(out))
}
