package engine

import (
	"context"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
)

// Latest fans out the category hint to the selected adapters,
// concatenates their batches (each already capped at the limit; no
// per-source slicing here), sorts the aggregate newest first, and
// truncates to the limit.
func (e *Engine) Latest(ctx context.Context, req *domain.LatestRequest) (*domain.LatestResponse, error) {
	descs := e.registry.Resolve(req.Source)

	results := e.fanOut(ctx, "latest", descs, func(ctx context.Context, adapter source.Adapter) ([]domain.Article, error) {
		return adapter.LatestNews(ctx, req.Category, req.Limit)
	})

	var (
		aggregate []domain.Article
		sources   []string
	)
	for _, desc := range descs {
		res, ok := results[desc.ID]
		if !ok || res.err != nil || len(res.articles) == 0 {
			continue
		}
		aggregate = append(aggregate, res.articles...)
		sources = append(sources, desc.DisplayName)
	}

	sortArticles(aggregate, domain.SortDateDesc)
	if len(aggregate) > req.Limit {
		aggregate = aggregate[:req.Limit]
	}

	return &domain.LatestResponse{
		Success:       true,
		Category:      req.Category,
		TotalArticles: len(aggregate),
		Sources:       nonNil(sources),
		Articles:      nonNil(aggregate),
	}, nil
}
