package docx

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/rgonek/md-docx-converter/document"
)

const (
	minColumnChars = 4
	maxColumnChars = 40
	tableBorder    = "BFBFBF"
)

// columnWidths splits the text width across columns in proportion to the
// widest cell of each column, measured in display cells.
func columnWidths(headers []string, rows [][]string) []int {
	columns := len(headers)
	if columns == 0 {
		return nil
	}

	weights := make([]int, columns)
	measure := func(row []string) {
		for idx := 0; idx < columns && idx < len(row); idx++ {
			weights[idx] = max(weights[idx], runewidth.StringWidth(row[idx]))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	total := 0
	for idx := range weights {
		weights[idx] = min(max(weights[idx], minColumnChars), maxColumnChars)
		total += weights[idx]
	}

	widths := make([]int, columns)
	used := 0
	for idx, weight := range weights {
		widths[idx] = textWidthTwips * weight / total
		used += widths[idx]
	}
	widths[columns-1] += textWidthTwips - used
	return widths
}

// tableCells returns cell runs, header row first, preferring the inline
// runs the parser attached.
func tableCells(block document.Block) [][][]document.Run {
	if len(block.Cells) == len(block.Rows)+1 {
		return block.Cells
	}
	toRuns := func(row []string) [][]document.Run {
		out := make([][]document.Run, len(row))
		for idx, cell := range row {
			if cell != "" {
				out[idx] = []document.Run{{Text: cell}}
			}
		}
		return out
	}
	cells := make([][][]document.Run, 0, len(block.Rows)+1)
	cells = append(cells, toRuns(block.Headers))
	for _, row := range block.Rows {
		cells = append(cells, toRuns(row))
	}
	return cells
}

// renderTable writes a grid whose header row repeats on each page. Header
// and band shading come from the document mode.
func (s *state) renderTable(block document.Block) {
	widths := columnWidths(block.Headers, block.Rows)
	if len(widths) == 0 {
		return
	}
	mode := s.options.Mode

	b := &s.body
	b.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/>`)
	b.WriteString(`<w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="%s"/>`, side, tableBorder)
	}
	b.WriteString(`</w:tblBorders><w:tblLayout w:type="fixed"/>`)
	b.WriteString(`<w:tblLook w:val="04A0" w:firstRow="1" w:lastRow="0" w:firstColumn="0" w:lastColumn="0" w:noHBand="0" w:noVBand="1"/>`)
	b.WriteString(`</w:tblPr><w:tblGrid>`)
	for _, width := range widths {
		fmt.Fprintf(b, `<w:gridCol w:w="%d"/>`, width)
	}
	b.WriteString(`</w:tblGrid>`)

	for rowIdx, row := range tableCells(block) {
		header := rowIdx == 0
		fill := ""
		switch {
		case header:
			fill = mode.HeaderShading()
		case rowIdx%2 == 0:
			fill = mode.BandShading()
		}

		b.WriteString(`<w:tr>`)
		if header {
			b.WriteString(`<w:trPr><w:tblHeader/></w:trPr>`)
		}
		for colIdx, width := range widths {
			var runs []document.Run
			if colIdx < len(row) {
				runs = row[colIdx]
			}
			s.renderCell(block.Format, width, fill, header, runs)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)

	// Word merges adjacent tables without a paragraph between them.
	s.body.WriteString(`<w:p><w:pPr><w:spacing w:before="0" w:after="0"/></w:pPr></w:p>`)
}

func (s *state) renderCell(format document.Format, width int, fill string, header bool, runs []document.Run) {
	b := &s.body
	fmt.Fprintf(b, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/>`, width)
	if fill != "" {
		fmt.Fprintf(b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, fill)
	}
	b.WriteString(`</w:tcPr><w:p>`)
	writeParagraphProps(b, paraProps{format: format})
	if header {
		color := s.options.Mode.HeaderTextColor()
		for _, run := range runs {
			run.Bold = true
			if run.Color == "" && run.Link == "" {
				run.Color = color
			}
			s.writeRuns(b, []document.Run{run}, format.Size)
		}
	} else {
		s.writeRuns(b, runs, format.Size)
	}
	b.WriteString(`</w:p></w:tc>`)
}
