package engine

import (
	"context"
	"fmt"

	"github.com/jonesrussell/news-aggregator/internal/dates"
	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
)

// Search runs the search fan-out for a validated request. Per-source
// failures are absorbed; an error return means an internal fault and
// surfaces as HTTP 500.
//
// Pagination is per-site: every adapter is asked for
// page*per_site_limit records and contributes the
// [(page-1)*per_site_limit, page*per_site_limit) window of its own
// ranking. Page 2 of one source is independent of page 2 of another.
func (e *Engine) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	dateRange, err := dates.NewRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, fmt.Errorf("build date range: %w", err)
	}

	descs := e.registry.Resolve(req.Sources)
	fetchLimit := req.FetchLimit()

	results := e.fanOut(ctx, "search", descs, func(ctx context.Context, adapter source.Adapter) ([]domain.Article, error) {
		return adapter.SearchNews(ctx, req.Query, fetchLimit)
	})

	var (
		aggregate     []domain.Article
		activeSources []string
		hasNextPage   bool
	)

	// Walk descriptors in registry order so identical inputs yield
	// identical output regardless of completion order.
	windowStart := (req.Page - 1) * req.PerSiteLimit
	for _, desc := range descs {
		res, ok := results[desc.ID]
		if !ok || res.err != nil {
			continue
		}
		if len(res.articles) >= fetchLimit {
			// A full batch means this source plausibly has more
			// beyond the current window.
			hasNextPage = true
		}
		window := sliceWindow(res.articles, windowStart, req.PerSiteLimit)
		if len(window) == 0 {
			continue
		}
		aggregate = append(aggregate, window...)
		activeSources = append(activeSources, desc.DisplayName)
	}

	sortArticles(aggregate, req.Sort)
	aggregate = dates.FilterArticles(aggregate, dateRange)

	return &domain.SearchResponse{
		Success:       true,
		Query:         req.Query,
		Page:          req.Page,
		PerSiteLimit:  req.PerSiteLimit,
		TotalArticles: len(aggregate),
		ActiveSources: nonNil(activeSources),
		HasNextPage:   hasNextPage,
		Articles:      nonNil(aggregate),
	}, nil
}

// sliceWindow takes up to count records starting at offset, index
// based, preserving the adapter's positional order.
func sliceWindow(articles []domain.Article, offset, count int) []domain.Article {
	if offset >= len(articles) {
		return nil
	}
	end := offset + count
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}

// nonNil keeps empty collections serializing as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
