// Package resource fetches the text resources the explorer needs before it
// can build a renderer: shader source and scene description.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// EmbedScheme prefixes names served from an embedded filesystem.
const EmbedScheme = "embed:"

var (
	ErrStatus  = errors.New("resource: unexpected HTTP status")
	ErrNoEmbed = errors.New("resource: no embedded filesystem")
)

// Fetcher retrieves a named resource in full.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// FileFetcher reads from the local filesystem. Relative names resolve
// against Root when it is set.
type FileFetcher struct {
	Root string
}

func (f FileFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := name
	if f.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(f.Root, p)
	}
	return os.ReadFile(p)
}

// HTTPFetcher issues GET requests. A nil Client means http.DefaultClient.
type HTTPFetcher struct {
	Client *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	c := f.Client
	if c == nil {
		c = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// FSFetcher serves names from an fs.FS, typically an embed.FS.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FS == nil {
		return nil, ErrNoEmbed
	}
	return fs.ReadFile(f.FS, path.Clean(strings.TrimPrefix(name, "/")))
}

// Auto routes by scheme: http:// and https:// go to HTTP, embed: to Embed,
// anything else to File.
type Auto struct {
	File  FileFetcher
	HTTP  HTTPFetcher
	Embed FSFetcher
}

func (a Auto) Fetch(ctx context.Context, name string) ([]byte, error) {
	switch {
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		return a.HTTP.Fetch(ctx, name)
	case strings.HasPrefix(name, EmbedScheme):
		return a.Embed.Fetch(ctx, strings.TrimPrefix(name, EmbedScheme))
	default:
		return a.File.Fetch(ctx, name)
	}
}

// FetchAll fetches every name concurrently and returns the contents in
// argument order. The first failure cancels the remaining fetches; no
// partial result is returned.
func FetchAll(ctx context.Context, f Fetcher, names ...string) ([][]byte, error) {
	out := make([][]byte, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			b, err := f.Fetch(gctx, name)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", name, err)
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
