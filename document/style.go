package document

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Alignment controls paragraph justification.
type Alignment string

const (
	AlignLeft      Alignment = "LEFT"
	AlignCenter    Alignment = "CENTER"
	AlignRight     Alignment = "RIGHT"
	AlignJustified Alignment = "JUSTIFIED"
)

// Mode selects the cosmetic document variant. It only affects table shading.
type Mode string

const (
	ModeDocument Mode = "document"
	ModeReport   Mode = "report"
)

// Validation ranges for style options.
const (
	MinFontSize       = 8
	MaxFontSize       = 72
	MinSpacing        = 0
	MaxSpacing        = 720
	MinLineSpacing    = 1.0
	MaxLineSpacing    = 3.0
	LineSpacingBase   = 240
	MaxHeadingLevel   = 5
	defaultSpacingTwp = 240
)

// Style configures sizes, spacing and alignment of rendered blocks.
// Sizes are half-points (24 = 12pt), spacing is twentieths of a point.
// Zero values fall back to defaults; spacing uses pointers since 0 is legal.
type Style struct {
	TitleSize      int `json:"titleSize,omitempty" yaml:"titleSize,omitempty" mapstructure:"titleSize"`
	Heading1Size   int `json:"heading1Size,omitempty" yaml:"heading1Size,omitempty" mapstructure:"heading1Size"`
	Heading2Size   int `json:"heading2Size,omitempty" yaml:"heading2Size,omitempty" mapstructure:"heading2Size"`
	Heading3Size   int `json:"heading3Size,omitempty" yaml:"heading3Size,omitempty" mapstructure:"heading3Size"`
	Heading4Size   int `json:"heading4Size,omitempty" yaml:"heading4Size,omitempty" mapstructure:"heading4Size"`
	Heading5Size   int `json:"heading5Size,omitempty" yaml:"heading5Size,omitempty" mapstructure:"heading5Size"`
	ParagraphSize  int `json:"paragraphSize,omitempty" yaml:"paragraphSize,omitempty" mapstructure:"paragraphSize"`
	ListItemSize   int `json:"listItemSize,omitempty" yaml:"listItemSize,omitempty" mapstructure:"listItemSize"`
	CodeBlockSize  int `json:"codeBlockSize,omitempty" yaml:"codeBlockSize,omitempty" mapstructure:"codeBlockSize"`
	BlockquoteSize int `json:"blockquoteSize,omitempty" yaml:"blockquoteSize,omitempty" mapstructure:"blockquoteSize"`

	HeadingSpacing   *int    `json:"headingSpacing,omitempty" yaml:"headingSpacing,omitempty" mapstructure:"headingSpacing"`
	ParagraphSpacing *int    `json:"paragraphSpacing,omitempty" yaml:"paragraphSpacing,omitempty" mapstructure:"paragraphSpacing"`
	LineSpacing      float64 `json:"lineSpacing,omitempty" yaml:"lineSpacing,omitempty" mapstructure:"lineSpacing"`

	HeadingAlignment    Alignment `json:"headingAlignment,omitempty" yaml:"headingAlignment,omitempty" mapstructure:"headingAlignment"`
	Heading1Alignment   Alignment `json:"heading1Alignment,omitempty" yaml:"heading1Alignment,omitempty" mapstructure:"heading1Alignment"`
	Heading2Alignment   Alignment `json:"heading2Alignment,omitempty" yaml:"heading2Alignment,omitempty" mapstructure:"heading2Alignment"`
	Heading3Alignment   Alignment `json:"heading3Alignment,omitempty" yaml:"heading3Alignment,omitempty" mapstructure:"heading3Alignment"`
	Heading4Alignment   Alignment `json:"heading4Alignment,omitempty" yaml:"heading4Alignment,omitempty" mapstructure:"heading4Alignment"`
	Heading5Alignment   Alignment `json:"heading5Alignment,omitempty" yaml:"heading5Alignment,omitempty" mapstructure:"heading5Alignment"`
	ParagraphAlignment  Alignment `json:"paragraphAlignment,omitempty" yaml:"paragraphAlignment,omitempty" mapstructure:"paragraphAlignment"`
	BlockquoteAlignment Alignment `json:"blockquoteAlignment,omitempty" yaml:"blockquoteAlignment,omitempty" mapstructure:"blockquoteAlignment"`
}

var (
	defaultHeadingSizes    = [MaxHeadingLevel]int{32, 28, 24, 20, 18}
	defaultHeadingAligns   = [MaxHeadingLevel]Alignment{AlignCenter, AlignRight, AlignLeft, AlignLeft, AlignLeft}
	defaultTitleSize       = 32
	defaultParagraphSize   = 24
	defaultListItemSize    = 24
	defaultCodeBlockSize   = 20
	defaultBlockquoteSize  = 24
	defaultLineSpacing     = 1.15
	defaultParagraphAlign  = AlignLeft
	defaultBlockquoteAlign = AlignLeft
)

// Int returns a pointer to v, for spacing options.
func Int(v int) *int {
	return &v
}

// WithDefaults returns a copy of the style with every option resolved.
func (s Style) WithDefaults() Style {
	resolved := s.clone()
	if resolved.TitleSize == 0 {
		resolved.TitleSize = defaultTitleSize
	}
	sizes := resolved.headingSizes()
	aligns := resolved.headingAlignments()
	for idx := 0; idx < MaxHeadingLevel; idx++ {
		if *sizes[idx] == 0 {
			*sizes[idx] = s.headingSize(idx + 1)
		}
		if *aligns[idx] == "" {
			*aligns[idx] = s.headingAlignment(idx + 1)
		}
	}
	resolved.ParagraphSize = pick(s.ParagraphSize, defaultParagraphSize)
	resolved.ListItemSize = pick(s.ListItemSize, defaultListItemSize)
	resolved.CodeBlockSize = pick(s.CodeBlockSize, defaultCodeBlockSize)
	resolved.BlockquoteSize = pick(s.BlockquoteSize, defaultBlockquoteSize)
	resolved.HeadingSpacing = Int(s.headingSpacing())
	resolved.ParagraphSpacing = Int(s.paragraphSpacing())
	resolved.LineSpacing = s.lineSpacing()
	resolved.ParagraphAlignment = pickAlign(s.ParagraphAlignment, defaultParagraphAlign)
	resolved.BlockquoteAlignment = pickAlign(s.BlockquoteAlignment, defaultBlockquoteAlign)
	return resolved
}

func (s Style) clone() Style {
	cloned := s
	if s.HeadingSpacing != nil {
		cloned.HeadingSpacing = Int(*s.HeadingSpacing)
	}
	if s.ParagraphSpacing != nil {
		cloned.ParagraphSpacing = Int(*s.ParagraphSpacing)
	}
	return cloned
}

// Validate checks that every configured option is in range. The returned
// error is a validation.Errors keyed by the json field name.
func (s Style) Validate() error {
	sizeRules := []validation.Rule{validation.Min(MinFontSize), validation.Max(MaxFontSize)}
	spacingRules := []validation.Rule{validation.Min(MinSpacing), validation.Max(MaxSpacing)}
	alignRule := validation.In(AlignLeft, AlignCenter, AlignRight, AlignJustified)

	return validation.ValidateStruct(&s,
		validation.Field(&s.TitleSize, sizeRules...),
		validation.Field(&s.Heading1Size, sizeRules...),
		validation.Field(&s.Heading2Size, sizeRules...),
		validation.Field(&s.Heading3Size, sizeRules...),
		validation.Field(&s.Heading4Size, sizeRules...),
		validation.Field(&s.Heading5Size, sizeRules...),
		validation.Field(&s.ParagraphSize, sizeRules...),
		validation.Field(&s.ListItemSize, sizeRules...),
		validation.Field(&s.CodeBlockSize, sizeRules...),
		validation.Field(&s.BlockquoteSize, sizeRules...),
		validation.Field(&s.HeadingSpacing, spacingRules...),
		validation.Field(&s.ParagraphSpacing, spacingRules...),
		validation.Field(&s.LineSpacing, validation.Min(MinLineSpacing), validation.Max(MaxLineSpacing)),
		validation.Field(&s.HeadingAlignment, alignRule),
		validation.Field(&s.Heading1Alignment, alignRule),
		validation.Field(&s.Heading2Alignment, alignRule),
		validation.Field(&s.Heading3Alignment, alignRule),
		validation.Field(&s.Heading4Alignment, alignRule),
		validation.Field(&s.Heading5Alignment, alignRule),
		validation.Field(&s.ParagraphAlignment, alignRule),
		validation.Field(&s.BlockquoteAlignment, alignRule),
	)
}

// Validate checks that the mode is known. An empty mode is accepted and
// treated as ModeDocument.
func (m Mode) Validate() error {
	// Validated as a plain string: Mode is itself Validatable and ozzo would
	// call back into this method.
	return validation.Validate(string(m), validation.In(string(ModeDocument), string(ModeReport)))
}

// OrDefault returns ModeDocument for an empty mode.
func (m Mode) OrDefault() Mode {
	if m == "" {
		return ModeDocument
	}
	return m
}

// HeaderShading returns the hex fill of a table header row.
func (m Mode) HeaderShading() string {
	if m.OrDefault() == ModeReport {
		return "1F3864"
	}
	return "D9E2F3"
}

// HeaderTextColor returns the hex color of header cell text.
func (m Mode) HeaderTextColor() string {
	if m.OrDefault() == ModeReport {
		return "FFFFFF"
	}
	return "000000"
}

// BandShading returns the fill of alternating body rows, empty for none.
func (m Mode) BandShading() string {
	if m.OrDefault() == ModeReport {
		return "F2F2F2"
	}
	return ""
}

func (s *Style) headingSizes() [MaxHeadingLevel]*int {
	return [MaxHeadingLevel]*int{&s.Heading1Size, &s.Heading2Size, &s.Heading3Size, &s.Heading4Size, &s.Heading5Size}
}

func (s *Style) headingAlignments() [MaxHeadingLevel]*Alignment {
	return [MaxHeadingLevel]*Alignment{&s.Heading1Alignment, &s.Heading2Alignment, &s.Heading3Alignment, &s.Heading4Alignment, &s.Heading5Alignment}
}

func pick(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func pickAlign(value, fallback Alignment) Alignment {
	if value == "" {
		return fallback
	}
	return value
}
