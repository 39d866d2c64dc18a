package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/worldradio/newsroom-go/internal/cache"
	"github.com/worldradio/newsroom-go/internal/metrics"
	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/news"
)

var ErrInvalidPage = errors.New("page must be a positive integer")

// Fetcher retrieves one page of articles from the news provider.
type Fetcher interface {
	Fetch(ctx context.Context, q news.Query) ([]byte, error)
}

// NewsService serves provider pages through the response cache.
type NewsService struct {
	fetcher Fetcher
	cache   *cache.Cache
	ttl     time.Duration
}

// NewNewsService creates a NewsService caching successful pages for ttl.
func NewNewsService(fetcher Fetcher, c *cache.Cache, ttl time.Duration) *NewsService {
	return &NewsService{fetcher: fetcher, cache: c, ttl: ttl}
}

// Get returns the provider payload for req, from cache when a live entry exists.
func (s *NewsService) Get(ctx context.Context, req model.NewsRequest) (json.RawMessage, error) {
	page, err := parsePage(req.Page)
	if err != nil {
		return nil, err
	}

	q := news.NewQuery(req.Category, req.Search, page)
	key := q.Fingerprint()

	payload, hit, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) ([]byte, error) {
		body, err := s.fetcher.Fetch(ctx, q)
		metrics.RecordUpstreamFetch(fetchOutcome(err))
		return body, err
	})
	metrics.RecordCacheLookup(hit)
	if err != nil {
		return nil, err
	}

	if hit {
		slog.Debug("serving from cache", "key", key)
	}
	return payload, nil
}

func parsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

func fetchOutcome(err error) string {
	var upErr *news.UpstreamError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &upErr):
		return "upstream_error"
	default:
		return "network_error"
	}
}
