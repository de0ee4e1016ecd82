package fetch

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "md2docx", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	data, err := NewHTTP(server.Client()).Fetch(context.Background(), server.URL+"/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestHTTPFetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTP(server.Client()).Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestHTTPFetchSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	}))
	defer server.Close()

	fetcher := NewHTTP(server.Client())
	fetcher.MaxBytes = 16
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestHTTPFetchHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTP(nil).Fetch(ctx, "http://127.0.0.1:1/never")
	require.Error(t, err)
}

func TestFileFetchRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img.png"), []byte("local"), 0o600))

	data, err := File{BaseDir: dir}.Fetch(context.Background(), "img.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("local"), data)

	_, err = File{BaseDir: dir}.Fetch(context.Background(), "missing.png")
	assert.Error(t, err)
}

func TestDataURIFetch(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))

	data, err := DataURI{}.Fetch(context.Background(), "data:image/png;base64,"+encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	data, err = DataURI{}.Fetch(context.Background(), "data:text/plain,a%20b")
	require.NoError(t, err)
	assert.Equal(t, []byte("a b"), data)

	_, err = DataURI{}.Fetch(context.Background(), "data:image/png;base64")
	assert.Error(t, err)
}

func TestChainDispatch(t *testing.T) {
	record := func(name string, calls *[]string) Fetcher {
		return Func(func(_ context.Context, _ string) ([]byte, error) {
			*calls = append(*calls, name)
			return []byte(name), nil
		})
	}

	var calls []string
	chain := Chain{HTTP: record("http", &calls), Data: record("data", &calls), File: record("file", &calls)}

	for _, location := range []string{"https://x/y.png", "data:image/png;base64,AA==", "img/a.png", "file:///tmp/a.png", `C:\img\a.png`} {
		_, err := chain.Fetch(context.Background(), location)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"http", "data", "file", "file", "file"}, calls)

	_, err := Chain{}.Fetch(context.Background(), "ftp://host/a.png")
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}
