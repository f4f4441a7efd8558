package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const defaultFetchTimeout = 60 * time.Second

// Fetcher downloads a dataset from a remote URL.
type Fetcher struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a dataset fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Download fetches url and writes the body to dest. The file is written
// to a temporary path first and renamed into place on success.
func (f *Fetcher) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch dataset: %s", resp.Status)
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dataset dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".catstat-fetch-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("move dataset into place: %w", err)
	}

	f.logger.Info("dataset downloaded", "url", url, "dest", dest, "bytes", n)
	return nil
}

// LoadOrFetch loads the dataset from path, falling back to a one-time
// download from remoteURL when the file is absent. An empty remoteURL
// disables the fallback.
func (f *Fetcher) LoadOrFetch(ctx context.Context, path, remoteURL string) ([]Record, error) {
	records, err := Load(path)
	if err == nil || !errors.Is(err, ErrMissingFile) || remoteURL == "" {
		return records, err
	}

	f.logger.Info("dataset missing, trying remote fetch", "path", path, "url", remoteURL)
	if ferr := f.Download(ctx, remoteURL, path); ferr != nil {
		return nil, fmt.Errorf("%w (fetch fallback failed: %v)", err, ferr)
	}
	return Load(path)
}
