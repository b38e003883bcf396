package fetch

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/crypto/sha3"
)

// DefaultMaxBodySize caps how much of a page body is read.
const DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

// Page is a fetched and parsed page. It lives for one lookup only.
type Page struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the status of the existence probe.
	StatusCode int

	// Document is the parsed HTML tree.
	Document *goquery.Document

	// Hash is the hex SHA3-256 of the body as read.
	Hash string
}

// Fetcher performs the probe-then-get sequence for one URL at a time.
type Fetcher struct {
	// client performs both the probe and the GET.
	client *http.Client

	// maxBodySize limits how many body bytes are parsed.
	maxBodySize int64

	// logger receives debug output about each request.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxBodySize sets the maximum number of body bytes read.
// Values <= 0 leave the default in place.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Fetcher using client. A nil client means http.DefaultClient.
func New(client *http.Client, opts ...Option) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := &Fetcher{
		client:      client,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch probes pageURL with HEAD and, if the probe succeeds, retrieves and
// parses the page.
//
// A probe status >= 400 returns a *StatusError. Transport failures and parse
// failures are returned wrapped. The status of the GET itself is not
// inspected; the probe is the only gate.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	status, err := f.probe(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: status, URL: pageURL}
	}

	body, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	sum := sha3.Sum256(body)
	f.logger.Debug("page fetched", "url", pageURL, "status", status, "bytes", len(body))

	return &Page{
		URL:        pageURL,
		StatusCode: status,
		Document:   doc,
		Hash:       hex.EncodeToString(sum[:]),
	}, nil
}

// probe issues the HEAD request and returns its status code.
func (f *Fetcher) probe(ctx context.Context, pageURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, pageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe failed: %w", err)
	}
	defer resp.Body.Close()

	f.logger.Debug("probe", "url", pageURL, "status", resp.StatusCode)
	return resp.StatusCode, nil
}

// get retrieves the page body, reading at most maxBodySize bytes.
func (f *Fetcher) get(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
