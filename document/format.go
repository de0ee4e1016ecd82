package document

import "math"

// Format is the resolved presentation of a block. Size is in half-points,
// spacing in twentieths of a point and LineSpacing against a 240 baseline.
type Format struct {
	Size          int       `json:"size,omitempty"`
	SpacingBefore int       `json:"spacingBefore,omitempty"`
	SpacingAfter  int       `json:"spacingAfter,omitempty"`
	LineSpacing   int       `json:"lineSpacing,omitempty"`
	Alignment     Alignment `json:"alignment,omitempty"`
}

// HeadingFormat resolves the format of a heading. Level 1 gets twice the
// heading spacing before it and half after.
func (s Style) HeadingFormat(level int) Format {
	spacing := s.headingSpacing()
	before, after := spacing, spacing
	if level == 1 {
		before, after = spacing*2, spacing/2
	}
	return Format{
		Size:          s.headingSize(level),
		SpacingBefore: before,
		SpacingAfter:  after,
		LineSpacing:   s.lineSpacingUnits(),
		Alignment:     s.headingAlignment(level),
	}
}

// ParagraphFormat resolves the format of body paragraphs and link paragraphs.
func (s Style) ParagraphFormat() Format {
	spacing := s.paragraphSpacing()
	return Format{
		Size:          pick(s.ParagraphSize, defaultParagraphSize),
		SpacingBefore: spacing,
		SpacingAfter:  spacing,
		LineSpacing:   s.lineSpacingUnits(),
		Alignment:     pickAlign(s.ParagraphAlignment, defaultParagraphAlign),
	}
}

// ListItemFormat resolves the format of bullet and numbered items.
func (s Style) ListItemFormat() Format {
	return Format{
		Size:         pick(s.ListItemSize, defaultListItemSize),
		SpacingAfter: s.paragraphSpacing() / 2,
		LineSpacing:  s.lineSpacingUnits(),
		Alignment:    AlignLeft,
	}
}

// CodeBlockFormat resolves the format of fenced code. Code is single spaced.
func (s Style) CodeBlockFormat() Format {
	spacing := s.paragraphSpacing()
	return Format{
		Size:          pick(s.CodeBlockSize, defaultCodeBlockSize),
		SpacingBefore: spacing / 2,
		SpacingAfter:  spacing / 2,
		LineSpacing:   LineSpacingBase,
		Alignment:     AlignLeft,
	}
}

// BlockquoteFormat resolves the format of quotes.
func (s Style) BlockquoteFormat() Format {
	spacing := s.paragraphSpacing()
	return Format{
		Size:          pick(s.BlockquoteSize, defaultBlockquoteSize),
		SpacingBefore: spacing,
		SpacingAfter:  spacing,
		LineSpacing:   s.lineSpacingUnits(),
		Alignment:     pickAlign(s.BlockquoteAlignment, defaultBlockquoteAlign),
	}
}

// CommentFormat resolves the format of review comments.
func (s Style) CommentFormat() Format {
	format := s.ParagraphFormat()
	format.Alignment = AlignLeft
	return format
}

// TableFormat resolves the cell text format of tables.
func (s Style) TableFormat() Format {
	return Format{
		Size:         pick(s.ParagraphSize, defaultParagraphSize),
		SpacingAfter: s.paragraphSpacing(),
		LineSpacing:  LineSpacingBase,
		Alignment:    AlignLeft,
	}
}

// ImageFormat resolves the paragraph holding an embedded image.
func (s Style) ImageFormat() Format {
	spacing := s.paragraphSpacing()
	return Format{
		SpacingBefore: spacing,
		SpacingAfter:  spacing,
		LineSpacing:   LineSpacingBase,
		Alignment:     AlignCenter,
	}
}

// SpacerFormat resolves the empty paragraph emitted for blank lines.
func (s Style) SpacerFormat() Format {
	return Format{
		Size:        pick(s.ParagraphSize, defaultParagraphSize),
		LineSpacing: LineSpacingBase,
		Alignment:   AlignLeft,
	}
}

func (s Style) headingSize(level int) int {
	if level < 1 || level > MaxHeadingLevel {
		return pick(s.ParagraphSize, defaultParagraphSize)
	}
	explicit := [MaxHeadingLevel]int{s.Heading1Size, s.Heading2Size, s.Heading3Size, s.Heading4Size, s.Heading5Size}
	if explicit[level-1] != 0 {
		return explicit[level-1]
	}
	if level == 1 && s.TitleSize != 0 {
		return s.TitleSize
	}
	return defaultHeadingSizes[level-1]
}

func (s Style) headingAlignment(level int) Alignment {
	if level < 1 || level > MaxHeadingLevel {
		return AlignLeft
	}
	explicit := [MaxHeadingLevel]Alignment{s.Heading1Alignment, s.Heading2Alignment, s.Heading3Alignment, s.Heading4Alignment, s.Heading5Alignment}
	if explicit[level-1] != "" {
		return explicit[level-1]
	}
	if s.HeadingAlignment != "" {
		return s.HeadingAlignment
	}
	return defaultHeadingAligns[level-1]
}

func (s Style) headingSpacing() int {
	if s.HeadingSpacing != nil {
		return *s.HeadingSpacing
	}
	return defaultSpacingTwp
}

func (s Style) paragraphSpacing() int {
	if s.ParagraphSpacing != nil {
		return *s.ParagraphSpacing
	}
	return defaultSpacingTwp
}

func (s Style) lineSpacing() float64 {
	if s.LineSpacing == 0 {
		return defaultLineSpacing
	}
	return s.LineSpacing
}

func (s Style) lineSpacingUnits() int {
	return int(math.Round(s.lineSpacing() * LineSpacingBase))
}
