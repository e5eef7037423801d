package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tpb/internal/apperr"
	"tpb/internal/logger"
	"tpb/internal/scrape"
	"tpb/internal/utils"
	"tpb/pkg/models"
)

const (
	SearchPath       = "/search.php"
	DefaultStatusURL = "https://proxybay.one"
)

var ErrNoResults = errors.New("no results found")

// Fetcher is the single-GET transport the service depends on.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type Query struct {
	Mirror   string
	Term     string
	Category int
	Limit    int
}

type Service struct {
	fetcher   Fetcher
	scheme    string
	statusURL string
	dumpDir   string
}

type Option func(*Service)

// WithScheme overrides the https scheme used to reach a mirror.
func WithScheme(scheme string) Option {
	return func(s *Service) { s.scheme = scheme }
}

func WithStatusURL(statusURL string) Option {
	return func(s *Service) {
		if statusURL != "" {
			s.statusURL = statusURL
		}
	}
}

// WithPageDump saves every fetched search page as <term>.html in dir.
func WithPageDump(dir string) Option {
	return func(s *Service) { s.dumpDir = dir }
}

func NewService(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:   fetcher,
		scheme:    "https",
		statusURL: DefaultStatusURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchURL builds the search endpoint for a mirror. A zero category searches
// everything.
func (s *Service) SearchURL(mirror, term string, category int) string {
	params := url.Values{}
	params.Set("q", term)
	if category > 0 {
		params.Set("cat", strconv.Itoa(category))
	}
	u := url.URL{
		Scheme:   s.scheme,
		Host:     mirror,
		Path:     SearchPath,
		RawQuery: params.Encode(),
	}
	return u.String()
}

func (s *Service) Search(ctx context.Context, q Query) ([]models.SearchResult, error) {
	start := time.Now()
	if q.Term == "" {
		return nil, apperr.Usage("search", errors.New("empty search term"))
	}
	if q.Mirror == "" {
		return nil, apperr.Config("search", errors.New("no mirror given"))
	}

	searchURL := s.SearchURL(q.Mirror, q.Term, q.Category)
	logger.Debug("Searching %s @%s: %s", q.Term, q.Mirror, searchURL)

	page, err := s.fetcher.Get(ctx, searchURL)
	if err != nil {
		logger.LogOperation("search", start, err)
		return nil, fmt.Errorf("search %q: %w", q.Term, err)
	}

	if s.dumpDir != "" {
		s.dumpPage(q.Term, page)
	}

	results, err := scrape.ParseResults(bytes.NewReader(page), q.Limit)
	logger.LogOperation("search", start, err)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Term, err)
	}
	return results, nil
}

// Top returns the first result for the query, the one a download fetches.
func (s *Service) Top(ctx context.Context, q Query) (models.SearchResult, error) {
	q.Limit = 1
	results, err := s.Search(ctx, q)
	if err != nil {
		return models.SearchResult{}, err
	}
	if len(results) == 0 {
		return models.SearchResult{}, apperr.Download("download", fmt.Errorf("%w for %q", ErrNoResults, q.Term))
	}
	return results[0], nil
}

// Status fetches the mirror directory and classifies every listed mirror.
func (s *Service) Status(ctx context.Context) (string, []models.MirrorStatus, error) {
	start := time.Now()
	page, err := s.fetcher.Get(ctx, s.statusURL)
	if err != nil {
		logger.LogOperation("status", start, err)
		return "", nil, fmt.Errorf("mirror status: %w", err)
	}

	lastUpdated, mirrors, err := scrape.ParseStatus(bytes.NewReader(page))
	logger.LogOperation("status", start, err)
	if err != nil {
		return "", nil, fmt.Errorf("mirror status: %w", err)
	}
	return lastUpdated, mirrors, nil
}

func (s *Service) dumpPage(term string, page []byte) {
	path := filepath.Join(s.dumpDir, utils.SanitizeForFilesystem(term)+".html")
	if err := os.WriteFile(path, page, 0644); err != nil {
		logger.Warn("Failed to save search page to %s: %v", path, err)
		return
	}
	logger.Debug("Saved search page to %s", path)
}
