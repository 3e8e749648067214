// Package iofetch retrieves the external reference datasets (legacy-ID
// map, per-game metadata) over HTTP.
// This is an impure I/O package. Fetched files are cached under the
// cache directory; on a network failure the cached copy is used before
// the caller degrades to identity behavior. Unavailability is reported
// through pbp.FetchResult, never as a hard failure.
package iofetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/sources"
)

// fetcher implements pbp.IDMapSource and pbp.GameMetaSource.
type fetcher struct {
	cfg    *config.Config
	srcs   *sources.SourcesConfig
	client *http.Client
}

// New creates a fetcher for the configured reference-dataset locations.
func New(cfg *config.Config, srcs *sources.SourcesConfig) *fetcher {
	if srcs == nil {
		srcs = sources.Default()
	}
	return &fetcher{
		cfg:  cfg,
		srcs: srcs,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// fetchFile downloads url, caching the body under cacheName. On a
// download failure it falls back to the cached copy from a previous
// run. Returns the file content or an error when neither is available.
func (f *fetcher) fetchFile(
	ctx context.Context,
	url, cacheName string,
) ([]byte, error) {
	cachePath := filepath.Join(config.CacheDir(f.cfg.HomeDir), cacheName)

	body, err := f.download(ctx, url)
	if err == nil {
		// Refresh the cache; a write failure is not fatal.
		if werr := os.WriteFile(cachePath, body, 0644); werr != nil {
			slog.Warn("Cannot cache reference dataset",
				"path", cachePath, "error", werr)
		}
		return body, nil
	}

	slog.Warn("Download failed, trying cached copy",
		"url", url, "error", err)
	cached, cerr := os.ReadFile(cachePath)
	if cerr != nil {
		return nil, DownloadError(url, err)
	}
	slog.Info("Using cached reference dataset", "path", cachePath)
	return cached, nil
}

func (f *fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", config.AppName+"/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
