// Package converter is the Markdown to .docx entry point. It validates
// input, parses Markdown into document blocks and renders them.
package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/docx"
	"github.com/rgonek/md-docx-converter/logging"
	"github.com/rgonek/md-docx-converter/mdconverter"
)

// Converter converts Markdown to .docx. It is safe for concurrent use.
type Converter struct {
	options  Options
	parser   *mdconverter.Converter
	renderer *docx.Renderer
	logger   logging.Logger
}

// Result holds the output of a conversion.
type Result struct {
	DOCX     []byte             `json:"-"`
	Document document.Document  `json:"document"`
	Warnings []document.Warning `json:"warnings,omitempty"`
}

// New validates options and creates a Converter.
func New(options Options) (*Converter, error) {
	opts := options.applyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	parser, err := mdconverter.New(mdconverter.Config{
		Style:        opts.Style,
		ImageTimeout: opts.ImageTimeout,
		Fetcher:      opts.Fetcher,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, validationError(err, CodeInvalidOptions, "options", "invalid parser options")
	}

	renderer, err := docx.New(docx.Options{
		Mode:      opts.Mode,
		Style:     opts.Style,
		Title:     opts.Title,
		Author:    opts.Author,
		CodeTheme: opts.CodeTheme,
		Created:   opts.Created,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, validationError(err, CodeInvalidOptions, "options", "invalid renderer options")
	}

	return &Converter{
		options:  opts,
		parser:   parser,
		renderer: renderer,
		logger:   logging.WithFields(opts.Logger, map[string]any{"component": "converter"}),
	}, nil
}

// Convert parses markdown and renders it. Callers get either a complete
// document or one structured error; recoverable problems are reported as
// warnings on the result.
func (c *Converter) Convert(ctx context.Context, markdown string) (Result, error) {
	parsed, err := c.Parse(ctx, markdown)
	if err != nil {
		return Result{}, err
	}

	rendered, err := c.render(parsed.Document)
	if err != nil {
		c.logger.Error("document assembly failed", "error", err)
		return Result{}, assemblyError(err)
	}

	warnings := append(parsed.Warnings, rendered.Warnings...)
	c.logger.Info("converted markdown",
		"blocks", len(parsed.Document.Blocks),
		"tables", parsed.Tables,
		"warnings", len(warnings),
		"bytes", len(rendered.Data),
	)

	return Result{
		DOCX:     rendered.Data,
		Document: parsed.Document,
		Warnings: warnings,
	}, nil
}

// Parse validates markdown and returns the block sequence without
// rendering it.
func (c *Converter) Parse(ctx context.Context, markdown string) (mdconverter.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(markdown) == "" {
		return mdconverter.Result{}, validationError(ErrEmptyMarkdown, CodeEmptyMarkdown, "markdown", "markdown input is empty")
	}

	parsed, err := c.parser.Convert(ctx, markdown)
	if err != nil {
		c.logger.Error("markdown assembly failed", "error", err)
		return mdconverter.Result{}, assemblyError(err)
	}
	return parsed, nil
}

// render turns a panic inside the renderer into an error.
func (c *Converter) render(doc document.Document) (result docx.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()
	return c.renderer.Render(doc)
}

// Convert is a convenience wrapper around New and Converter.Convert.
func Convert(ctx context.Context, markdown string, options Options) (Result, error) {
	c, err := New(options)
	if err != nil {
		return Result{}, err
	}
	return c.Convert(ctx, markdown)
}
