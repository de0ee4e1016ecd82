package mdconverter

import "strings"

// table is one pipe table found by the pre-scan.
type table struct {
	start   int
	headers []string
	rows    [][]string
}

// span is the number of source lines the table occupies.
func (t table) span() int {
	return 2 + len(t.rows)
}

func (t table) wellFormed() bool {
	if len(t.headers) == 0 {
		return false
	}
	for _, row := range t.rows {
		if len(row) != len(t.headers) {
			return false
		}
	}
	return true
}

// scanTables finds every pipe table in source order. It skips fenced code
// the same way the line loop does, so the Nth table found here is the Nth
// table marker the line loop reaches.
func scanTables(lines []string) []table {
	var tables []table
	inCode := false

	for idx := 0; idx < len(lines); idx++ {
		if isFence(lines[idx]) {
			inCode = !inCode
			continue
		}
		if inCode || !tableStartsAt(lines, idx) {
			continue
		}

		found := table{
			start:   idx,
			headers: headerCells(lines[idx]),
		}
		next := idx + 2
		for next < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[next]), "|") {
			found.rows = append(found.rows, rowCells(lines[next]))
			next++
		}

		tables = append(tables, found)
		idx = next - 1
	}

	return tables
}

// headerCells splits a header line and drops empty tokens.
func headerCells(line string) []string {
	var cells []string
	for _, token := range strings.Split(line, "|") {
		if cell := strings.TrimSpace(token); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// rowCells splits a body line, keeping inner empty cells so that a blank
// cell does not shift the row.
func rowCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}

	tokens := strings.Split(trimmed, "|")
	cells := make([]string, 0, len(tokens))
	for _, token := range tokens {
		cells = append(cells, strings.TrimSpace(token))
	}
	return cells
}

// pipeStripped renders a table line as plain text for the fallback paragraph.
func pipeStripped(line string) string {
	return strings.Join(headerCells(line), " ")
}
