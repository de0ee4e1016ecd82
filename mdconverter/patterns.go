package mdconverter

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/util"
)

const (
	fenceMarker     = "```"
	commentMarker   = "COMMENT:"
	tocMarker       = "[TOC]"
	pageBreakMarker = `\pagebreak`
)

var (
	headingRe     = regexp.MustCompile(`^(#+) (.*)$`)
	orderedItemRe = regexp.MustCompile(`^\s*\d+\.\s`)
	boldOnlyRe    = regexp.MustCompile(`^\*\*([^*]+)\*\*$`)
	imageRe       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

func isBlank(line string) bool {
	return util.IsBlank([]byte(line))
}

// isFence reports whether the raw line opens or closes a code block. The
// backticks must start the line; an indented fence is code content.
func isFence(line string) bool {
	return strings.HasPrefix(line, fenceMarker)
}

// tableStartsAt is shared by the pre-scan and the line loop so both detect
// exactly the same table starts.
func tableStartsAt(lines []string, idx int) bool {
	if idx+1 >= len(lines) {
		return false
	}
	trimmed := strings.TrimSpace(lines[idx])
	if !strings.HasPrefix(trimmed, "|") || !strings.HasSuffix(trimmed, "|") {
		return false
	}
	return strings.Contains(lines[idx+1], "|-")
}

func unorderedItemText(trimmed string) (string, bool) {
	for _, marker := range []string{"- ", "* "} {
		if rest, ok := strings.CutPrefix(trimmed, marker); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func orderedItemText(line string) (string, bool) {
	loc := orderedItemRe.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return strings.TrimSpace(line[loc[1]:]), true
}

func boldContinuation(line string) (string, bool) {
	match := boldOnlyRe.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// linkDestination escapes a link target for use as a hyperlink.
func linkDestination(raw string) string {
	return string(util.URLEscape([]byte(strings.TrimSpace(raw)), false))
}
