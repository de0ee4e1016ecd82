package docx

import (
	"time"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/logging"
)

const (
	DefaultAuthor    = "md2docx"
	DefaultCodeTheme = "github"
)

// Options configures rendering.
type Options struct {
	Mode   document.Mode  `json:"mode,omitempty"`
	Style  document.Style `json:"style"`
	Title  string         `json:"title,omitempty"`
	Author string         `json:"author,omitempty"`
	// CodeTheme names the chroma style used to color fenced code that
	// carries a language tag.
	CodeTheme string `json:"codeTheme,omitempty"`
	// Created is stamped into the package properties. Zero means now.
	Created time.Time      `json:"-"`
	Logger  logging.Logger `json:"-"`
}

func (o Options) applyDefaults() Options {
	o.Mode = o.Mode.OrDefault()
	if o.Author == "" {
		o.Author = DefaultAuthor
	}
	if o.CodeTheme == "" {
		o.CodeTheme = DefaultCodeTheme
	}
	if o.Created.IsZero() {
		o.Created = time.Now()
	}
	o.Created = o.Created.UTC().Truncate(time.Second)
	o.Logger = logging.OrNoOp(o.Logger)
	return o
}

// Validate checks that option values are valid.
func (o Options) Validate() error {
	if err := o.Mode.Validate(); err != nil {
		return err
	}
	return o.Style.Validate()
}
