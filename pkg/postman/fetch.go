package postman

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single fetch when no other timeout is configured.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves Postman collections.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher whose HTTP client uses the given timeout.
// A non-positive timeout selects DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewFetcherWithClient(&http.Client{
		Timeout: timeout,
	})
}

// NewFetcherWithClient creates a fetcher that uses client as is.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch issues one GET against rawURL and decodes the body as a collection.
// A filesystem path or file:// URL is read from disk instead.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Collection, error) {
	if path, ok := localPath(rawURL); ok {
		return f.fetchFile(path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	c, err := Decode(body)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Source = rawURL
		}
		return nil, err
	}
	return c, nil
}

func (f *Fetcher) fetchFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{URL: path, Cause: err}
	}

	c, err := Decode(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Source = path
		}
		return nil, err
	}
	return c, nil
}

// localPath reports whether rawURL names a local file rather than an HTTP resource.
func localPath(rawURL string) (string, bool) {
	if strings.HasPrefix(rawURL, "file://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return strings.TrimPrefix(rawURL, "file://"), true
		}
		return u.Path, true
	}
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return "", false
	}
	if _, err := os.Stat(rawURL); err == nil {
		return rawURL, true
	}
	return "", false
}
