package document

// BlockKind identifies the variant held by a Block.
type BlockKind string

const (
	KindHeading    BlockKind = "heading"
	KindParagraph  BlockKind = "paragraph"
	KindListItem   BlockKind = "listItem"
	KindTable      BlockKind = "table"
	KindBlockquote BlockKind = "blockquote"
	KindComment    BlockKind = "comment"
	KindCodeBlock  BlockKind = "codeBlock"
	KindImage      BlockKind = "image"
	KindLink       BlockKind = "link"
	KindSpacer     BlockKind = "spacer"
	KindPageBreak  BlockKind = "pageBreak"
	KindTOC        BlockKind = "toc"
)

// Document is the ordered block sequence produced by one conversion.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Block is one structural unit of the output document. Only the fields
// relevant to Kind are populated.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Heading level, 1..5.
	Level int `json:"level,omitempty"`
	// Text is the marker-stripped source text of headings, list items,
	// blockquotes, comments and links, or the alt text of an image.
	Text string `json:"text,omitempty"`
	Runs []Run  `json:"runs,omitempty"`

	BoldTail string `json:"boldTail,omitempty"`
	Ordered  bool   `json:"ordered,omitempty"`

	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	// Cells holds inline runs per table cell, header row first.
	Cells [][][]Run `json:"-"`

	Language string   `json:"language,omitempty"`
	Lines    []string `json:"lines,omitempty"`

	URL   string `json:"url,omitempty"`
	Image []byte `json:"-"`

	Format Format `json:"format"`
}

// Run is a contiguous span of text sharing one formatting state.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Code   bool   `json:"code,omitempty"`
	Link   string `json:"link,omitempty"`
	Color  string `json:"color,omitempty"`
}

// PlainText concatenates the text of all runs.
func PlainText(runs []Run) string {
	size := 0
	for _, run := range runs {
		size += len(run.Text)
	}
	buf := make([]byte, 0, size)
	for _, run := range runs {
		buf = append(buf, run.Text...)
	}
	return string(buf)
}
