package engine

import (
	"context"
	"strings"
	"time"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
)

// fallbackKeyword is used for "all", "news", and anything unknown.
const fallbackKeyword = "breaking news"

// trendingKeywords maps each canonical category to the search keyword
// sent to the adapters. The values are part of the contract; tests
// pin them verbatim.
var trendingKeywords = map[string]string{
	"all":           fallbackKeyword,
	"news":          fallbackKeyword,
	"sports":        "sports",
	"business":      "business economy",
	"technology":    "technology tech",
	"entertainment": "entertainment celebrity",
	"health":        "health",
	"world":         "world international",
}

// KeywordForCategory resolves a trending category to its search
// keyword. Unknown categories fall back to "breaking news".
func KeywordForCategory(category string) string {
	if kw, ok := trendingKeywords[strings.ToLower(category)]; ok {
		return kw
	}
	return fallbackKeyword
}

// Trending fans the mapped keyword out to the selected adapters and
// groups the surviving records per source display name.
//
// Per-source filtering quirk, kept intentionally: when a category is
// requested and none of a source's records carry it, the first
// limit/2 unfiltered records are kept anyway, so a source with no
// matching tags still contributes something.
func (e *Engine) Trending(ctx context.Context, req *domain.TrendingRequest) (*domain.TrendingResponse, error) {
	keyword := KeywordForCategory(req.Category)
	descs := e.registry.Resolve(req.Sources)

	results := e.fanOut(ctx, "trending", descs, func(ctx context.Context, adapter source.Adapter) ([]domain.Article, error) {
		return adapter.SearchNews(ctx, keyword, req.Limit)
	})

	bySource := make(map[string][]domain.Article)
	var activeSources []string
	total := 0

	for _, desc := range descs {
		res, ok := results[desc.ID]
		if !ok || res.err != nil || len(res.articles) == 0 {
			continue
		}

		kept := filterByCategory(res.articles, req.Category, req.Limit)
		if len(kept) == 0 {
			continue
		}
		if len(kept) > req.Limit {
			kept = kept[:req.Limit]
		}

		bySource[desc.DisplayName] = kept
		activeSources = append(activeSources, desc.DisplayName)
		total += len(kept)
	}

	return &domain.TrendingResponse{
		Success:          true,
		Category:         req.Category,
		TotalArticles:    total,
		ActiveSources:    nonNil(activeSources),
		TrendingBySource: bySource,
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// filterByCategory keeps records whose category tag contains the
// requested category, case-insensitively. "all" keeps everything. An
// empty match falls back to the first limit/2 unfiltered records.
func filterByCategory(articles []domain.Article, category string, limit int) []domain.Article {
	if category == domain.DefaultTrendingCategory {
		return articles
	}

	want := strings.ToLower(category)
	var matched []domain.Article
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Category), want) {
			matched = append(matched, a)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	half := limit / 2
	if half > len(articles) {
		half = len(articles)
	}
	return articles[:half]
}
