package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sort orders accepted by the search endpoint.
const (
	SortDateDesc  = "date_desc"
	SortDateAsc   = "date_asc"
	SortRelevance = "relevance"
)

// Parameter bounds and defaults.
const (
	MinPerSiteLimit     = 1
	MaxPerSiteLimit     = 10
	DefaultPerSiteLimit = 5

	MinLatestLimit     = 1
	MaxLatestLimit     = 50
	DefaultLatestLimit = 20

	MinTrendingLimit     = 1
	MaxTrendingLimit     = 20
	DefaultTrendingLimit = 10

	// AllSources selects every registered source.
	AllSources = "all"

	// DefaultLatestCategory is the section requested when none is given.
	DefaultLatestCategory = "top_stories"

	// DefaultTrendingCategory aggregates every trending category.
	DefaultTrendingCategory = "all"
)

// TrendingCategories is the closed set of categories the trending
// endpoint recognizes. Anything else falls back to the "all" keyword.
var TrendingCategories = []string{
	"all", "news", "sports", "business", "technology",
	"entertainment", "health", "world",
}

// SearchRequest carries the parameters of one /search call.
type SearchRequest struct {
	Query        string `json:"query"`
	Page         int    `json:"page"`
	PerSiteLimit int    `json:"per_site_limit"`
	Sources      string `json:"sources"`
	Sort         string `json:"sort"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

// Validate checks bounds and fills defaults. A non-nil error means the
// request never reaches the engine.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query must not be empty")
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", r.Page)
	}
	if r.PerSiteLimit == 0 {
		r.PerSiteLimit = DefaultPerSiteLimit
	}
	if r.PerSiteLimit < MinPerSiteLimit || r.PerSiteLimit > MaxPerSiteLimit {
		return fmt.Errorf("per_site_limit must be between %d and %d, got %d",
			MinPerSiteLimit, MaxPerSiteLimit, r.PerSiteLimit)
	}
	if r.Sources == "" {
		r.Sources = AllSources
	}
	switch r.Sort {
	case "":
		r.Sort = SortDateDesc
	case SortDateDesc, SortDateAsc, SortRelevance:
	default:
		return fmt.Errorf("invalid sort: %q", r.Sort)
	}
	if err := validateDateBound("date_from", r.DateFrom); err != nil {
		return err
	}
	return validateDateBound("date_to", r.DateTo)
}

// FetchLimit is how many records each adapter is asked for. Each
// source paginates independently, so page N is the Nth
// per_site_limit-sized window of that source's own ranking.
func (r *SearchRequest) FetchLimit() int {
	return r.Page * r.PerSiteLimit
}

// LatestRequest carries the parameters of one /latest call. Unlike
// /search, the source parameter is "all" or exactly one id; the
// asymmetry is part of the contract.
type LatestRequest struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
	Source   string `json:"source"`
}

// Validate checks bounds and fills defaults.
func (r *LatestRequest) Validate() error {
	if r.Category == "" {
		r.Category = DefaultLatestCategory
	}
	if r.Limit == 0 {
		r.Limit = DefaultLatestLimit
	}
	if r.Limit < MinLatestLimit || r.Limit > MaxLatestLimit {
		return fmt.Errorf("limit must be between %d and %d, got %d",
			MinLatestLimit, MaxLatestLimit, r.Limit)
	}
	if r.Source == "" {
		r.Source = AllSources
	}
	if strings.Contains(r.Source, ",") {
		return fmt.Errorf("source accepts a single id or %q", AllSources)
	}
	return nil
}

// TrendingRequest carries the parameters of one /trending call.
type TrendingRequest struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
	Sources  string `json:"sources"`
}

// Validate checks bounds and fills defaults. Unknown categories are
// accepted; the engine maps them to the fallback keyword.
func (r *TrendingRequest) Validate() error {
	if r.Category == "" {
		r.Category = DefaultTrendingCategory
	}
	r.Category = strings.ToLower(r.Category)
	if r.Limit == 0 {
		r.Limit = DefaultTrendingLimit
	}
	if r.Limit < MinTrendingLimit || r.Limit > MaxTrendingLimit {
		return fmt.Errorf("limit must be between %d and %d, got %d",
			MinTrendingLimit, MaxTrendingLimit, r.Limit)
	}
	if r.Sources == "" {
		r.Sources = AllSources
	}
	return nil
}

// validateDateBound rejects filter bounds that are not real
// YYYY-MM-DD dates.
func validateDateBound(name, val string) error {
	if val == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", val); err != nil {
		return fmt.Errorf("%s must be YYYY-MM-DD, got %q", name, val)
	}
	return nil
}
