package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"docsearch/internal/domain"
)

// Loader loads the search index
type Loader interface {
	Load(ctx context.Context, u *url.URL) ([]domain.IndexEntry, error)
}

// Fetcher reads search indexes and pages over http(s) or from the local
// file system
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher. A nil client uses a client with a 30s timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{client: client}
}

// Open returns the body of the resource at u
func (f *Fetcher) Open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to fetch %s: %s", u, resp.Status)
		}

		return resp.Body, nil

	case "file":
		file, err := os.Open(u.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", u.Path, err)
		}
		return file, nil

	default:
		return nil, fmt.Errorf("unsupported scheme %q in %s", u.Scheme, u)
	}
}

// Load fetches and decodes the search index at u. The index is a trusted
// build artifact: a JSON array of entries, taken as is.
func (f *Fetcher) Load(ctx context.Context, u *url.URL) ([]domain.IndexEntry, error) {
	body, err := f.Open(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var entries []domain.IndexEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse search index %s: %w", u, err)
	}

	log.Printf("Loaded %d index entries from %s", len(entries), u)
	return entries, nil
}

// ReadPage returns the raw contents of the page at u
func (f *Fetcher) ReadPage(ctx context.Context, u *url.URL) ([]byte, error) {
	page := *u
	page.Fragment = ""

	body, err := f.Open(ctx, &page)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", &page, err)
	}
	return data, nil
}
