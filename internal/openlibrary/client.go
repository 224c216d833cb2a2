package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Searcher defines the catalog queries the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Search(ctx context.Context, query string) []Book
	BySubject(ctx context.Context, subject string, limit int) []Book
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the Open Library search API.
//
// Both query operations are fail-soft: transport, status, and decode errors
// are logged and surface to callers as an empty result, never as an error.
// The UI is expected to render an empty state instead of failing.
type Client struct {
	baseURL    *url.URL
	coversBase string
	http       *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

const (
	defaultBaseURL    = "https://openlibrary.org"
	defaultCoversBase = "https://covers.openlibrary.org/b/id"
	defaultUserAgent  = "bookflix/0.1"
	requestTimeout    = 10 * time.Second

	searchLimit = 20
)

// Options configure a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	CoversBase string
	UserAgent  string
	RPS        int // requests per second; zero uses 2
}

// NewClient builds a Client for the given catalog endpoints.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	covers := strings.TrimRight(strings.TrimSpace(opts.CoversBase), "/")
	if covers == "" {
		covers = defaultCoversBase
	}

	agent := strings.TrimSpace(opts.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}

	rps := opts.RPS
	if rps <= 0 {
		rps = 2
	}

	return &Client{
		baseURL:    base,
		coversBase: covers,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: agent,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}, nil
}

// Search runs a free-text query capped at 20 results. Books without cover
// art are dropped after normalization.
func (c *Client) Search(ctx context.Context, query string) []Book {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(searchLimit))

	docs, err := c.fetchDocs(ctx, values)
	if err != nil {
		log.Printf("openlibrary: search %q failed: %v", query, err)
		return nil
	}
	return c.normalizeAll(docs)
}

// BySubject lists books for a subject with a caller-specified cap. Books
// without cover art are dropped after normalization.
func (c *Client) BySubject(ctx context.Context, subject string, limit int) []Book {
	values := url.Values{}
	values.Set("subject", subject)
	values.Set("limit", strconv.Itoa(limit))

	docs, err := c.fetchDocs(ctx, values)
	if err != nil {
		log.Printf("openlibrary: subject %q failed: %v", subject, err)
		return nil
	}
	return c.normalizeAll(docs)
}

func (c *Client) normalizeAll(docs []Doc) []Book {
	books := make([]Book, 0, len(docs))
	for _, d := range docs {
		b := normalize(c.coversBase, d)
		if !b.HasCover() {
			continue
		}
		books = append(books, b)
	}
	return books
}

func (c *Client) fetchDocs(ctx context.Context, values url.Values) ([]Doc, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	rel := &url.URL{Path: "/search.json", RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("search.json returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Docs, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
