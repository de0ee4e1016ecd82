// Package fetch provides image-fetch collaborators for the converter.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSource indicates that no fetcher handles the given location.
var ErrUnsupportedSource = errors.New("unsupported image source")

// Fetcher returns the raw bytes behind an image location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Func adapts a function to Fetcher.
type Func func(ctx context.Context, location string) ([]byte, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// Chain dispatches by location scheme: http(s) to HTTP, data: to DataURI,
// file: and scheme-less paths to File. Nil members disable that source.
type Chain struct {
	HTTP Fetcher
	Data Fetcher
	File Fetcher
}

// NewDefault returns a Chain with every source enabled. Relative file paths
// resolve against baseDir.
func NewDefault(baseDir string) Chain {
	return Chain{
		HTTP: NewHTTP(nil),
		Data: DataURI{},
		File: File{BaseDir: baseDir},
	}
}

// Fetch implements Fetcher.
func (c Chain) Fetch(ctx context.Context, location string) ([]byte, error) {
	var target Fetcher
	switch scheme(location) {
	case "http", "https":
		target = c.HTTP
	case "data":
		target = c.Data
	case "", "file":
		target = c.File
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}
	return target.Fetch(ctx, location)
}

func scheme(location string) string {
	idx := strings.Index(location, ":")
	if idx <= 1 {
		// no scheme, or a Windows drive letter
		return ""
	}
	candidate := strings.ToLower(location[:idx])
	for _, r := range candidate {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '+' && r != '-' && r != '.' {
			return ""
		}
	}
	return candidate
}
