package engine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/engine"
	"github.com/jonesrussell/news-aggregator/internal/source"
	"github.com/jonesrussell/news-aggregator/internal/telemetry"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// fakeAdapter serves canned articles, truncated to the requested
// limit, or fails every call when failing is set.
type fakeAdapter struct {
	articles   []domain.Article
	failing    bool
	panicking  bool
	lastQuery  string
	lastLimit  int
	lastCat    string
	searchHits int
}

func (f *fakeAdapter) SearchNews(_ context.Context, query string, limit int) ([]domain.Article, error) {
	f.searchHits++
	f.lastQuery = query
	f.lastLimit = limit
	return f.serve(limit)
}

func (f *fakeAdapter) LatestNews(_ context.Context, category string, limit int) ([]domain.Article, error) {
	f.lastCat = category
	f.lastLimit = limit
	return f.serve(limit)
}

func (f *fakeAdapter) serve(limit int) ([]domain.Article, error) {
	if f.panicking {
		panic("adapter blew up")
	}
	if f.failing {
		return nil, fmt.Errorf("site unreachable")
	}
	if limit < len(f.articles) {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

// makeArticles builds n records for one source with descending dates
// (index 0 is newest).
func makeArticles(sourceName string, n int) []domain.Article {
	out := make([]domain.Article, 0, n)
	for i := range n {
		out = append(out, domain.Article{
			Title:          fmt.Sprintf("%s story %d", sourceName, i),
			URL:            fmt.Sprintf("https://example.com/%s/%d", sourceName, i),
			PublishedDate:  fmt.Sprintf("Mon, %02d Jan 2024 00:00:00 GMT", 28-i),
			Source:         sourceName,
			Category:       "news",
			RelevanceScore: 1,
		})
	}
	return out
}

func newTestEngine(t *testing.T, descs []source.Descriptor) *engine.Engine {
	t.Helper()
	registry, err := source.NewRegistry(descs)
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return engine.New(registry, logger.NewNop(), telemetry.NewMetrics(), engine.Options{})
}

func searchReq(t *testing.T, req *domain.SearchRequest) *domain.SearchRequest {
	t.Helper()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	return req
}
