package engine

import (
	"sort"
	"time"

	"github.com/jonesrussell/news-aggregator/internal/dates"
	"github.com/jonesrussell/news-aggregator/internal/domain"
)

// datedArticle pairs an article with its precomputed date key so the
// published date is parsed once per record, not once per comparison.
type datedArticle struct {
	article domain.Article
	t       time.Time
	ok      bool
}

// sortArticles orders the aggregate in place. Date sorts parse the
// published date and compare instants, falling back to lexical order
// for unparseable values; raw string comparison of RFC 1123 dates
// would sort by weekday name. Sorting is stable, so positions within
// one adapter's batch survive ties.
func sortArticles(articles []domain.Article, mode string) {
	switch mode {
	case domain.SortRelevance:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].RelevanceScore > articles[j].RelevanceScore
		})
	case domain.SortDateAsc:
		sortByDate(articles, false)
	default: // date_desc
		sortByDate(articles, true)
	}
}

func sortByDate(articles []domain.Article, descending bool) {
	dated := make([]datedArticle, len(articles))
	for i, a := range articles {
		t, ok := dates.Parse(a.PublishedDate)
		dated[i] = datedArticle{article: a, t: t, ok: ok}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		c := compareDates(dated[i], dated[j])
		if descending {
			return c > 0
		}
		return c < 0
	})

	for i, d := range dated {
		articles[i] = d.article
	}
}

// compareDates defines one ascending total order so date_asc is the
// exact reverse of date_desc. Unparseable dates order below parseable
// ones and among themselves lexically.
func compareDates(a, b datedArticle) int {
	switch {
	case a.ok && b.ok:
		if a.t.Before(b.t) {
			return -1
		}
		if a.t.After(b.t) {
			return 1
		}
		return 0
	case a.ok:
		return 1
	case b.ok:
		return -1
	default:
		switch {
		case a.article.PublishedDate < b.article.PublishedDate:
			return -1
		case a.article.PublishedDate > b.article.PublishedDate:
			return 1
		default:
			return 0
		}
	}
}
