package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/carspecs/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "carspecs"

	// DefaultTimeout bounds each HTTP request. The site serves small static
	// pages, so anything slower is treated as a failed fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies carspecs in HTTP requests.
	DefaultUserAgent = "carspecs/1.0 (+https://github.com/nao1215/carspecs)"

	// DefaultMaxBodySize limits the response body size read per page.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Config holds all configuration options for one run.
// It is populated from the config file and CLI flags and passed down
// explicitly rather than kept in global state.
type Config struct {
	// Make is the manufacturer to look up. Required.
	Make string

	// Model is the vehicle model. Empty means the model is not part of the lookup.
	Model string

	// Year is the model year. Zero means the year is not part of the lookup.
	Year int

	// BaseURL is the root every lookup path is appended to.
	BaseURL string

	// Timeout bounds each HTTP request. Zero disables it.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Zero means the default.
	MaxBodySize int64

	// Proxy is an optional SOCKS5 proxy ("host:port" or "socks5://...").
	Proxy string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// SaveHistory records each lookup in the history database.
	SaveHistory bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory (~/.local/share/carspecs on Linux).
	DBDir string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:     model.DefaultBaseURL,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Headers:     make(map[string]string),
		DBDir:       XDGDataDir(),
	}
}

// Request returns the lookup described by the configuration.
func (c *Config) Request() model.Request {
	return model.NewRequest(c.Make, c.Model, c.Year)
}

// XDGDataDir returns the XDG data directory for carspecs.
// On Linux: ~/.local/share/carspecs
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for carspecs.
// On Linux: ~/.config/carspecs
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Make == "" {
		return ErrNoMake
	}

	if c.Year < 0 {
		return ErrInvalidYear
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
