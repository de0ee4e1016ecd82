package mdconverter

import "github.com/rgonek/md-docx-converter/document"

// Result holds the output of a markdown conversion.
type Result struct {
	Document document.Document  `json:"document"`
	Warnings []document.Warning `json:"warnings,omitempty"`
	// Tables is the number of tables found by the pre-scan.
	Tables int `json:"tables"`
}
