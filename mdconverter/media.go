package mdconverter

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
)

// alertColor marks placeholder text for images that could not be loaded.
const alertColor = "C00000"

// handleImages fetches every image on the line in order, one at a time.
// Pending list items are only flushed when the line also carries text;
// that text becomes paragraphs placed around the images in source order.
func (s *state) handleImages(line string, locs [][]int) {
	if hasTextAround(line, locs) {
		s.flushList()
	}

	cursor := 0
	for _, loc := range locs {
		s.emitText(line[cursor:loc[0]])
		cursor = loc[1]

		alt := strings.TrimSpace(line[loc[2]:loc[3]])
		location := strings.TrimSpace(line[loc[4]:loc[5]])

		data, err := s.fetchImage(location)
		if err != nil {
			s.addWarning(
				document.WarningImageUnavailable,
				string(document.KindImage),
				fmt.Sprintf("image %q could not be loaded: %v", location, err),
			)
			s.emitImageError(alt)
			continue
		}

		s.emit(document.Block{
			Kind:   document.KindImage,
			Text:   alt,
			URL:    location,
			Image:  data,
			Format: s.config.Style.ImageFormat(),
		})
	}
	s.emitText(line[cursor:])
}

func hasTextAround(line string, locs [][]int) bool {
	cursor := 0
	for _, loc := range locs {
		if strings.TrimSpace(line[cursor:loc[0]]) != "" {
			return true
		}
		cursor = loc[1]
	}
	return strings.TrimSpace(line[cursor:]) != ""
}

// emitText emits a non-blank text segment of an image line.
func (s *state) emitText(segment string) {
	text := strings.TrimSpace(segment)
	switch {
	case text == "":
	case linkRe.MatchString(text):
		s.emitLinkParagraph(text)
	default:
		s.emitParagraph(s.safeInline(text))
	}
}

func (s *state) fetchImage(location string) ([]byte, error) {
	ctx := s.ctx
	if s.config.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ImageTimeout)
		defer cancel()
	}

	data, err := s.config.Fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}

func (s *state) emitImageError(alt string) {
	label := alt
	if label == "" {
		label = "image"
	}
	s.emitParagraph([]document.Run{{
		Text:   fmt.Sprintf("[Image could not be loaded: %s]", label),
		Italic: true,
		Color:  alertColor,
	}})
}

// emitLinkParagraph keeps the text around each link and turns every
// [text](url) into a run carrying the destination.
func (s *state) emitLinkParagraph(line string) {
	matches := linkRe.FindAllStringSubmatchIndex(line, -1)

	var runs []document.Run
	first := document.Block{Kind: document.KindLink, Format: s.config.Style.ParagraphFormat()}
	cursor := 0
	for _, loc := range matches {
		if loc[0] > cursor {
			runs = append(runs, s.safeInline(line[cursor:loc[0]])...)
		}
		text := line[loc[2]:loc[3]]
		url := linkDestination(line[loc[4]:loc[5]])
		runs = append(runs, document.Run{Text: text, Link: url})
		if first.URL == "" {
			first.Text = text
			first.URL = url
		}
		cursor = loc[1]
	}
	if cursor < len(line) {
		runs = append(runs, s.safeInline(line[cursor:])...)
	}

	first.Runs = runs
	s.emit(first)
}
