// Package domain holds the data model shared by the adapters, the
// aggregation engine, and the HTTP surface.
package domain

import "time"

// SummaryMaxLength is the maximum length of an article summary, in
// characters, not bytes.
const SummaryMaxLength = 300

// DefaultRelevanceScore is assigned when an adapter does not score a record.
const DefaultRelevanceScore = 1

// Article is the uniform record every source adapter emits and the
// engine consumes. Records are immutable after emission.
type Article struct {
	// Title is the article headline. Required, non-empty.
	Title string `json:"title"`
	// URL is the absolute article URL. Required; unique within one
	// adapter's batch.
	URL string `json:"url"`
	// Summary is a short description, truncated to SummaryMaxLength.
	Summary string `json:"summary"`
	// PublishedDate is the raw publication timestamp as found at the
	// source, RFC 1123 preferred. May be empty or in a site-specific
	// form; the lenient parser deals with it downstream.
	PublishedDate string `json:"published_date"`
	// Source is the display name of the adapter that emitted the record.
	Source string `json:"source"`
	// Category is a free-form tag assigned by the adapter.
	Category string `json:"category"`
	// ScrapedAt is when the adapter emitted the record, RFC 3339.
	ScrapedAt string `json:"scraped_at"`
	// RelevanceScore is adapter-assigned, >= 0.
	RelevanceScore float64 `json:"relevance_score"`
	// ImageURL is an optional article image URL.
	ImageURL string `json:"image_url,omitempty"`
}

// NewScrapedAt returns the current instant formatted for Article.ScrapedAt.
func NewScrapedAt() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// TruncateSummary enforces the summary length invariant. Truncation
// counts runes so multi-byte scripts keep their full budget and no
// rune is split at the boundary.
func TruncateSummary(s string) string {
	if len(s) <= SummaryMaxLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= SummaryMaxLength {
		return s
	}
	return string(runes[:SummaryMaxLength])
}
