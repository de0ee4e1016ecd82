package converter

import (
	"fmt"
	"time"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/fetch"
	"github.com/rgonek/md-docx-converter/logging"
)

// Options configures Markdown to .docx conversion.
type Options struct {
	Style  document.Style `json:"style" yaml:"style" mapstructure:"style"`
	Mode   document.Mode  `json:"mode,omitempty" yaml:"mode,omitempty" mapstructure:"mode"`
	Title  string         `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Author string         `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
	// CodeTheme is the chroma style used for fenced code with a language.
	CodeTheme string `json:"codeTheme,omitempty" yaml:"codeTheme,omitempty" mapstructure:"codeTheme"`
	// ImageTimeout bounds each image fetch. Zero means no per-image bound.
	ImageTimeout time.Duration `json:"imageTimeout,omitempty" yaml:"imageTimeout,omitempty" mapstructure:"imageTimeout"`
	// BaseDir resolves relative image paths for the default fetcher.
	BaseDir string `json:"baseDir,omitempty" yaml:"baseDir,omitempty" mapstructure:"baseDir"`

	Fetcher fetch.Fetcher  `json:"-" yaml:"-" mapstructure:"-"`
	Logger  logging.Logger `json:"-" yaml:"-" mapstructure:"-"`
	// Created stamps the package properties. Zero means now.
	Created time.Time `json:"-" yaml:"-" mapstructure:"-"`
}

func (o Options) applyDefaults() Options {
	if o.Fetcher == nil {
		o.Fetcher = fetch.NewDefault(o.BaseDir)
	}
	o.Logger = logging.OrNoOp(o.Logger)
	return o
}

// Validate checks option values. The returned error is a structured
// validation error naming the offending field.
func (o Options) Validate() error {
	if err := o.Mode.Validate(); err != nil {
		return validationError(err, CodeInvalidMode, "mode", fmt.Sprintf("invalid document mode %q", o.Mode))
	}
	if err := o.Style.Validate(); err != nil {
		return styleError(err)
	}
	if o.ImageTimeout < 0 {
		return validationError(
			fmt.Errorf("imageTimeout must not be negative, got %s", o.ImageTimeout),
			CodeInvalidImageTimeout,
			"imageTimeout",
			"invalid image timeout",
		)
	}
	return nil
}
