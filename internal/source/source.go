// Package source defines the adapter contract the aggregation engine
// depends on and the registry of the fixed source set.
package source

import (
	"context"

	"github.com/jonesrussell/news-aggregator/internal/domain"
)

// Adapter converts a query or category into article records for one
// news site. Implementations must return a deterministic order for a
// given call within one invocation: the engine slices the returned
// sequence by index for pagination. Each adapter enforces its own
// call deadline and may return fewer records than asked, including
// none. A non-nil error counts as that adapter contributing zero
// records; it never fails the request.
type Adapter interface {
	// SearchNews returns at most limit records matching the query,
	// most relevant or most recent first.
	SearchNews(ctx context.Context, query string, limit int) ([]domain.Article, error)

	// LatestNews returns at most limit records from the section the
	// adapter maps the category hint to. Adapters may ignore the hint.
	LatestNews(ctx context.Context, category string, limit int) ([]domain.Article, error)
}

// Descriptor binds a stable source id to its display name and adapter.
type Descriptor struct {
	ID          string
	DisplayName string
	Adapter     Adapter
}
