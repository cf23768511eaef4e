package dates

import (
	"fmt"
	"time"

	"github.com/jonesrussell/news-aggregator/internal/domain"
)

// Range is a half-open publication date window. A nil bound is absent.
type Range struct {
	From *time.Time
	To   *time.Time
}

// NewRange builds a Range from YYYY-MM-DD bounds. Empty strings leave
// the bound open.
func NewRange(from, to string) (Range, error) {
	var r Range
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return Range{}, fmt.Errorf("parse date_from: %w", err)
		}
		r.From = &t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return Range{}, fmt.Errorf("parse date_to: %w", err)
		}
		r.To = &t
	}
	return r, nil
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Keep decides whether a record with the given published date survives
// the filter. Empty or unparseable dates are always kept. Otherwise
// the instant must satisfy from <= d < to + 24h.
func (r Range) Keep(publishedDate string) bool {
	d, ok := Parse(publishedDate)
	if !ok {
		return true
	}
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && !d.Before(r.To.Add(24*time.Hour)) {
		return false
	}
	return true
}

// FilterArticles applies the range to an aggregate, preserving order.
// A zero range returns the input untouched.
func FilterArticles(articles []domain.Article, r Range) []domain.Article {
	if r.IsZero() {
		return articles
	}
	kept := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if r.Keep(a.PublishedDate) {
			kept = append(kept, a)
		}
	}
	return kept
}
