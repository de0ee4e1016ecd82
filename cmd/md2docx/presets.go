package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

const (
	presetDefault = "default"
	presetCompact = "compact"
	presetLarge   = "large"
)

func presetStyle(preset string) (document.Style, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetDefault:
		return document.Style{}, nil
	case presetCompact:
		return document.Style{
			TitleSize:        28,
			Heading2Size:     24,
			Heading3Size:     22,
			ParagraphSize:    20,
			ListItemSize:     20,
			CodeBlockSize:    18,
			BlockquoteSize:   20,
			HeadingSpacing:   document.Int(120),
			ParagraphSpacing: document.Int(60),
			LineSpacing:      1.0,
		}, nil
	case presetLarge:
		return document.Style{
			TitleSize:        44,
			Heading2Size:     36,
			Heading3Size:     32,
			Heading4Size:     28,
			Heading5Size:     26,
			ParagraphSize:    28,
			ListItemSize:     28,
			CodeBlockSize:    24,
			BlockquoteSize:   28,
			HeadingSpacing:   document.Int(360),
			ParagraphSpacing: document.Int(240),
			LineSpacing:      1.5,
		}, nil
	default:
		return document.Style{}, fmt.Errorf("unknown preset %q (allowed: default, compact, large)", preset)
	}
}
