package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/carspecs/internal/extract"
	"github.com/nao1215/carspecs/internal/fetch"
	"github.com/nao1215/carspecs/internal/model"
)

// Column headers of the result tables.
const (
	ColumnYear  = "year"
	ColumnModel = "model"
	ColumnKey   = "key"
	ColumnValue = "value"
)

// Fetcher retrieves one page. *fetch.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Page, error)
}

// Service runs lookups against one site.
type Service struct {
	fetcher Fetcher
	baseURL string
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger that receives soft failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBaseURL overrides model.DefaultBaseURL. A trailing slash is dropped.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		if baseURL != "" {
			s.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// New creates a Service that fetches pages with fetcher.
func New(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		baseURL: model.DefaultBaseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseURL returns the base URL pages are resolved against.
func (s *Service) BaseURL() string {
	return s.baseURL
}

// Lookup runs req and returns its result. It never returns nil.
func (s *Service) Lookup(ctx context.Context, req model.Request) *model.Result {
	result := model.NewResult(req, s.baseURL)
	logger := s.logger.With("make", req.Make, "mode", result.Mode.String())

	doc := s.fetch(ctx, result, logger)

	var err error
	switch result.Mode {
	case model.ModeDetail:
		err = s.details(doc, result, logger)
	case model.ModeYears:
		err = s.years(doc, result, logger)
	case model.ModeModels:
		err = s.models(doc, result, logger)
	default:
		err = s.modelsAndYears(doc, result, logger)
	}

	if err != nil {
		logger.Error(err.Error(), "url", result.URL)
		result.Table = nil
	}
	return result
}

// fetch retrieves the page for result. On failure it logs and returns a nil
// document, which every extractor treats as a page with no data.
func (s *Service) fetch(ctx context.Context, result *model.Result, logger *slog.Logger) *goquery.Document {
	page, err := s.fetcher.Fetch(ctx, result.URL)
	if err != nil {
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) {
			result.StatusCode = statusErr.StatusCode
			logger.Error(statusErr.Error(), "status", statusErr.StatusCode, "url", statusErr.URL)
		} else {
			logger.Error("fetch failed", "url", result.URL, "error", err)
		}
		return nil
	}

	result.StatusCode = page.StatusCode
	result.PageHash = page.Hash
	return page.Document
}

func (s *Service) years(doc *goquery.Document, result *model.Result, logger *slog.Logger) error {
	req := result.Request
	years, err := extract.Years(doc, req.Make, req.Model)
	if err != nil {
		return err
	}
	if len(years) == 0 {
		logger.Error(fmt.Sprintf("No such %s model: %s", req.Make, req.Model), "model", req.Model)
	}
	result.Table = model.NewTable([]string{ColumnYear}, years)
	return nil
}

func (s *Service) models(doc *goquery.Document, result *model.Result, logger *slog.Logger) error {
	req := result.Request
	models, err := extract.Models(doc, req.Make, req.Year)
	if err != nil {
		return err
	}
	if len(models) == 0 {
		logger.Error(fmt.Sprintf("No %s made in year: %d", req.Make, req.Year), "year", req.Year)
	}
	result.Table = model.NewTable([]string{ColumnModel}, models)
	return nil
}

func (s *Service) modelsAndYears(doc *goquery.Document, result *model.Result, logger *slog.Logger) error {
	req := result.Request
	years, models, err := extract.YearsAndModels(doc, req.Make)
	if err != nil {
		return err
	}
	if len(years) == 0 || len(models) == 0 {
		logger.Error(fmt.Sprintf("No such car make: %s", req.Make), "years", len(years), "models", len(models))
	}
	result.Table = model.NewTable([]string{ColumnYear, ColumnModel}, years, models)
	return nil
}

func (s *Service) details(doc *goquery.Document, result *model.Result, logger *slog.Logger) error {
	keys, values, err := extract.Details(doc)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		logger.Error(fmt.Sprintf("Bad URL: %s", result.URL), "model", result.Request.Model, "year", result.Request.Year)
		return nil
	}
	result.Table = model.NewTable([]string{ColumnKey, ColumnValue}, keys, values)
	return nil
}
