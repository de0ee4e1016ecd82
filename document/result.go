package document

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnsupportedHeading WarningType = "unsupported_heading"
	WarningMalformedTable     WarningType = "malformed_table"
	WarningInlineFallback     WarningType = "inline_fallback"
	WarningImageUnavailable   WarningType = "image_unavailable"
	WarningLineSkipped        WarningType = "line_skipped"
	WarningUnclosedCodeBlock  WarningType = "unclosed_code_block"
	WarningUnknownBlock       WarningType = "unknown_block"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Line     int         `json:"line,omitempty"`
	Message  string      `json:"message"`
}
