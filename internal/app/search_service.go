package app

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"learn-with-jiji/internal/model"
	"learn-with-jiji/internal/storage"
)

// ResourceSummary is the public shape of a matched resource. Internal-only
// columns (storage path, raw file url, tags) never leave the service.
type ResourceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

type ResourceFinder interface {
	Search(ctx context.Context, query string, terms []string, limit int) ([]model.Resource, error)
}

type SearchCache interface {
	Get(ctx context.Context, query string) ([]ResourceSummary, bool, error)
	Set(ctx context.Context, query string, results []ResourceSummary) error
}

// SearchService resolves free-text queries to resource summaries. A search
// failure is not the caller's problem: every error path degrades to an empty
// list and is only visible in the logs.
type SearchService struct {
	resources ResourceFinder // nil when the database is unconfigured
	cache     SearchCache    // nil when the cache is unconfigured
	baseURL   string
	limit     int
	log       *logrus.Logger
}

func NewSearchService(resources ResourceFinder, cache SearchCache, baseURL string, limit int, log *logrus.Logger) *SearchService {
	if limit <= 0 {
		limit = 5
	}
	return &SearchService{
		resources: resources,
		cache:     cache,
		baseURL:   baseURL,
		limit:     limit,
		log:       log,
	}
}

func (s *SearchService) Search(ctx context.Context, query string) []ResourceSummary {
	if s.resources == nil {
		return []ResourceSummary{}
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return []ResourceSummary{}
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, normalized)
		if err != nil {
			s.log.WithError(err).Debug("search cache lookup failed")
		} else if ok {
			return cached
		}
	}

	rows, err := s.resources.Search(ctx, normalized, strings.Fields(normalized), s.limit)
	if err != nil {
		s.log.WithError(err).Warn("resource search failed, returning empty result")
		return []ResourceSummary{}
	}

	results := make([]ResourceSummary, 0, len(rows))
	for _, row := range rows {
		results = append(results, ResourceSummary{
			ID:    row.ID,
			Title: row.Title,
			Type:  row.Type,
			URL:   storage.PublicURL(s.baseURL, row.StoragePath, row.FileURL),
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, normalized, results); err != nil {
			s.log.WithError(err).Debug("search cache store failed")
		}
	}
	return results
}
