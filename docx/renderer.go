// Package docx renders a document.Document into an Office Open XML
// word-processing package.
package docx

import (
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/logging"
)

// Renderer turns block sequences into .docx bytes. It is safe for
// concurrent use; every call builds its own state.
type Renderer struct {
	options Options
	logger  logging.Logger
}

// Result is the output of one Render call.
type Result struct {
	Data     []byte             `json:"-"`
	Warnings []document.Warning `json:"warnings,omitempty"`
}

type relationship struct {
	id       string
	relType  string
	target   string
	external bool
}

type state struct {
	options Options
	logger  logging.Logger

	body     strings.Builder
	rels     []relationship
	links    map[string]string
	media    []mediaPart
	comments []comment
	warnings []document.Warning

	orderedLists int
	currentList  int
	drawings     int
}

// New creates a Renderer with the given options.
func New(options Options) (*Renderer, error) {
	opts := options.applyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		options: opts,
		logger:  logging.WithFields(opts.Logger, map[string]any{"component": "docx"}),
	}, nil
}

// Render writes doc as a .docx package.
func (r *Renderer) Render(doc document.Document) (Result, error) {
	s := &state{
		options: r.options,
		logger:  r.logger,
		links:   map[string]string{},
	}

	var prev document.BlockKind
	for _, block := range doc.Blocks {
		s.renderBlock(block, prev)
		prev = block.Kind
	}

	data, err := s.writePackage(documentTitle(r.options.Title, doc))
	if err != nil {
		return Result{}, fmt.Errorf("write docx package: %w", err)
	}

	s.logger.Debug("rendered document",
		"blocks", len(doc.Blocks),
		"media", len(s.media),
		"comments", len(s.comments),
		"bytes", len(data),
	)

	return Result{Data: data, Warnings: s.warnings}, nil
}

// Render is a convenience wrapper around New and Renderer.Render.
func Render(doc document.Document, options Options) (Result, error) {
	r, err := New(options)
	if err != nil {
		return Result{}, err
	}
	return r.Render(doc)
}

// documentTitle prefers the explicit title, then the first level 1 heading.
func documentTitle(explicit string, doc document.Document) string {
	if explicit != "" {
		return explicit
	}
	for _, block := range doc.Blocks {
		if block.Kind == document.KindHeading && block.Level == 1 {
			if text := document.PlainText(block.Runs); text != "" {
				return text
			}
			return block.Text
		}
	}
	return ""
}

// addRelationship registers a document part relationship and returns its id.
// Ids rId1 to rId4 are reserved for the fixed parts.
func (s *state) addRelationship(relType, target string, external bool) string {
	id := fmt.Sprintf("rId%d", len(s.rels)+len(fixedRelationships)+1)
	s.rels = append(s.rels, relationship{id: id, relType: relType, target: target, external: external})
	return id
}

func (s *state) linkRelationship(url string) string {
	if id, ok := s.links[url]; ok {
		return id
	}
	id := s.addRelationship(relHyperlink, url, true)
	s.links[url] = id
	return id
}

func (s *state) addWarning(warnType document.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, document.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
	s.logger.Warn(message, "type", string(warnType), "kind", nodeType)
}
