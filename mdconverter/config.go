package mdconverter

import (
	"fmt"
	"time"

	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/fetch"
	"github.com/rgonek/md-docx-converter/logging"
)

// Config configures Markdown to document conversion.
type Config struct {
	Style document.Style `json:"style"`
	// ImageTimeout bounds each image fetch. Zero leaves the caller's context
	// as the only bound.
	ImageTimeout time.Duration  `json:"imageTimeout,omitempty"`
	Fetcher      fetch.Fetcher  `json:"-"`
	Logger       logging.Logger `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Fetcher == nil {
		c.Fetcher = fetch.Chain{}
	}
	c.Logger = logging.OrNoOp(c.Logger)
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if c.ImageTimeout < 0 {
		return fmt.Errorf("imageTimeout must not be negative, got %s", c.ImageTimeout)
	}
	return nil
}
