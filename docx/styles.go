package docx

import (
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

const (
	headingColor = "1F3864"
	quoteColor   = "595959"
	quoteBorder  = "A6A6A6"
)

// stylesXML declares the named styles the body refers to, sized from the
// resolved style.
func stylesXML(style document.Style) string {
	resolved := style.WithDefaults()
	paragraph := resolved.ParagraphFormat()

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:styles xmlns:w="` + nsMain + `">`)

	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	fmt.Fprintf(&b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/>`, bodyFont)
	fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, paragraph.Size, paragraph.Size)
	b.WriteString(`<w:lang w:val="en-US"/></w:rPr></w:rPrDefault>`)
	fmt.Fprintf(&b, `<w:pPrDefault><w:pPr><w:spacing w:after="%d" w:line="%d" w:lineRule="auto"/></w:pPr></w:pPrDefault>`,
		paragraph.SpacingAfter, paragraph.LineSpacing)
	b.WriteString(`</w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	for level := 1; level <= document.MaxHeadingLevel; level++ {
		format := resolved.HeadingFormat(level)
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="Heading%d">`, level)
		fmt.Fprintf(&b, `<w:name w:val="heading %d"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/>`, level)
		fmt.Fprintf(&b, `<w:pPr><w:keepNext/><w:keepLines/><w:spacing w:before="%d" w:after="%d"/><w:jc w:val="%s"/><w:outlineLvl w:val="%d"/></w:pPr>`,
			format.SpacingBefore, format.SpacingAfter, justification(format.Alignment), level-1)
		fmt.Fprintf(&b, `<w:rPr><w:b/><w:bCs/><w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`,
			headingColor, format.Size, format.Size)
		b.WriteString(`</w:style>`)
	}

	code := resolved.CodeBlockFormat()
	b.WriteString(`<w:style w:type="paragraph" w:customStyle="1" w:styleId="Code"><w:name w:val="Code"/><w:basedOn w:val="Normal"/><w:qFormat/>`)
	fmt.Fprintf(&b, `<w:pPr><w:shd w:val="clear" w:color="auto" w:fill="%s"/><w:spacing w:after="0" w:line="%d" w:lineRule="auto"/></w:pPr>`,
		codeShading, code.LineSpacing)
	fmt.Fprintf(&b, `<w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/><w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/></w:rPr>`,
		codeFont, code.Size)
	b.WriteString(`</w:style>`)

	quote := resolved.BlockquoteFormat()
	b.WriteString(`<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="29"/><w:qFormat/>`)
	fmt.Fprintf(&b, `<w:pPr><w:pBdr><w:left w:val="single" w:sz="18" w:space="8" w:color="%s"/></w:pBdr><w:ind w:left="720"/></w:pPr>`, quoteBorder)
	fmt.Fprintf(&b, `<w:rPr><w:i/><w:iCs/><w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`, quoteColor, quote.Size, quote.Size)
	b.WriteString(`</w:style>`)

	b.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:uiPriority w:val="34"/><w:qFormat/>`)
	b.WriteString(`<w:pPr><w:ind w:left="720"/><w:contextualSpacing/></w:pPr></w:style>`)

	b.WriteString(`<w:style w:type="paragraph" w:styleId="TOCHeading"><w:name w:val="TOC Heading"/><w:basedOn w:val="Heading1"/><w:next w:val="Normal"/><w:uiPriority w:val="39"/><w:unhideWhenUsed/><w:qFormat/>`)
	b.WriteString(`<w:pPr><w:outlineLvl w:val="9"/></w:pPr></w:style>`)

	b.WriteString(`<w:style w:type="paragraph" w:styleId="CommentText"><w:name w:val="annotation text"/><w:basedOn w:val="Normal"/>`)
	b.WriteString(`<w:rPr><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr></w:style>`)

	b.WriteString(`<w:style w:type="character" w:styleId="CommentReference"><w:name w:val="annotation reference"/>`)
	b.WriteString(`<w:rPr><w:sz w:val="16"/><w:szCs w:val="16"/></w:rPr></w:style>`)

	b.WriteString(`<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/><w:uiPriority w:val="99"/><w:unhideWhenUsed/>`)
	fmt.Fprintf(&b, `<w:rPr><w:color w:val="%s"/><w:u w:val="single"/></w:rPr></w:style>`, hyperlinkColor)

	b.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:uiPriority w:val="59"/>`)
	b.WriteString(`<w:tblPr><w:tblCellMar><w:left w:w="108" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`)

	b.WriteString(`</w:styles>`)
	return b.String()
}
