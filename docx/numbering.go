package docx

import (
	"fmt"
	"strings"
)

const (
	bulletNumID     = 1
	bulletAbstract  = 0
	decimalAbstract = 1
)

// orderedNumID returns the w:num id of the nth ordered list, counting from 1.
func orderedNumID(n int) int {
	return bulletNumID + n
}

// numberingXML defines one bullet list and one numbered list instance per
// ordered list, each restarting at 1.
func numberingXML(orderedLists int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:numbering xmlns:w="` + nsMain + `">`)

	fmt.Fprintf(&b, `<w:abstractNum w:abstractNumId="%d"><w:multiLevelType w:val="singleLevel"/>`, bulletAbstract)
	b.WriteString(`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="` + "•" + `"/>`)
	b.WriteString(`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>`)

	fmt.Fprintf(&b, `<w:abstractNum w:abstractNumId="%d"><w:multiLevelType w:val="singleLevel"/>`, decimalAbstract)
	b.WriteString(`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/>`)
	b.WriteString(`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>`)

	fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/></w:num>`, bulletNumID, bulletAbstract)
	for n := 1; n <= orderedLists; n++ {
		fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/>`, orderedNumID(n), decimalAbstract)
		b.WriteString(`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`)
	}

	b.WriteString(`</w:numbering>`)
	return b.String()
}
