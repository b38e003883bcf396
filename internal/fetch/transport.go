package fetch

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ClientConfig describes the HTTP client used for lookups.
type ClientConfig struct {
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// Proxy is an optional SOCKS5 proxy, either "host:port" or
	// "socks5://[user:pass@]host:port". Empty means a direct connection.
	Proxy string

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	// Headers are extra headers sent with every request.
	Headers map[string]string
}

// NewHTTPClient creates an *http.Client from cfg.
//
// The User-Agent and custom headers are set by the transport, so the probe,
// the GET, and any redirects all carry them.
func NewHTTPClient(cfg ClientConfig) (*http.Client, error) {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("unexpected default transport type %T", http.DefaultTransport)
	}
	transport := base.Clone()

	if cfg.Proxy != "" {
		dialer, err := proxyDialer(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		transport.Proxy = nil
		transport.DialContext = dialer
	}

	var rt http.RoundTripper = transport
	if cfg.UserAgent != "" || len(cfg.Headers) > 0 {
		rt = &headerInjectingTransport{
			base:      transport,
			userAgent: cfg.UserAgent,
			headers:   cfg.Headers,
		}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}, nil
}

// proxyDialer builds a context-aware dial function for a SOCKS5 proxy.
// A bare "host:port" is treated as "socks5://host:port".
func proxyDialer(address string) (func(ctx context.Context, network, addr string) (net.Conn, error), error) {
	if !strings.Contains(address, "://") {
		address = "socks5://" + address
	}

	u, err := url.Parse(address)
	if err != nil || u.Hostname() == "" || u.Port() == "" {
		return nil, ErrInvalidProxy
	}
	if u.Scheme != "socks5" && u.Scheme != "socks5h" {
		return nil, ErrInvalidProxy
	}

	dialer, err := proxy.FromURL(u, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProxy, err)
	}

	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext, nil
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}, nil
}

// headerInjectingTransport wraps an http.RoundTripper to add the configured
// User-Agent and headers to every request.
type headerInjectingTransport struct {
	base      http.RoundTripper
	userAgent string
	headers   map[string]string
}

// RoundTrip implements http.RoundTripper.
func (t *headerInjectingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clone := req.Clone(req.Context())

	if t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	for key, value := range t.headers {
		clone.Header.Set(key, value)
	}

	return t.base.RoundTrip(clone)
}
