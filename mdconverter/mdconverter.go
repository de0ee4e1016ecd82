package mdconverter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/logging"
)

// Converter converts Markdown text into an ordered document block sequence.
// A Converter is safe for concurrent use; every call builds its own state.
type Converter struct {
	config Config
	logger logging.Logger
}

type state struct {
	ctx    context.Context
	config Config
	logger logging.Logger
	inline func(string) []document.Run

	lines       []string
	tables      []table
	tableCursor int
	line        int

	blocks   []document.Block
	warnings []document.Warning

	inList       bool
	pendingItems []document.Block

	inCodeBlock  bool
	codeLines    []string
	codeLanguage string
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		logger: logging.WithFields(cfg.Logger, map[string]any{"component": "mdconverter"}),
	}, nil
}

// Convert parses markdown into blocks. Line-level problems are recovered and
// reported as warnings; only a failure outside the line loop returns an error.
func (c *Converter) Convert(ctx context.Context, markdown string) (result Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	s := &state{
		ctx:    ctx,
		config: c.config,
		logger: c.logger,
		inline: formatInline,
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("markdown assembly failed: %v", r)
		}
	}()

	s.lines = splitLines(markdown)
	s.tables = scanTables(s.lines)
	s.walk()

	return Result{
		Document: document.Document{Blocks: s.blocks},
		Warnings: s.warnings,
		Tables:   len(s.tables),
	}, nil
}

// splitLines normalizes to NFC and LF line endings. A single trailing
// newline does not produce an extra blank line.
func splitLines(markdown string) []string {
	text := norm.NFC.String(markdown)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (s *state) addWarning(warnType document.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, document.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Line:     s.line,
		Message:  message,
	})
	s.logger.Warn(message, "type", string(warnType), "kind", nodeType, "line", s.line)
}
