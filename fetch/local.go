package fetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// File reads images from the local filesystem.
type File struct {
	BaseDir string
}

// Fetch implements Fetcher.
func (f File) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := location
	if strings.HasPrefix(strings.ToLower(location), "file:") {
		parsed, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", location, err)
		}
		path = parsed.Path
	}
	if !filepath.IsAbs(path) && f.BaseDir != "" {
		path = filepath.Join(f.BaseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	return data, nil
}

// DataURI decodes data: URIs, base64 or percent-encoded.
type DataURI struct{}

// Fetch implements Fetcher.
func (DataURI) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rest, ok := strings.CutPrefix(location, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("fetch data uri: missing payload separator")
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("fetch data uri: %w", err)
		}
		return data, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("fetch data uri: %w", err)
	}
	return []byte(decoded), nil
}
