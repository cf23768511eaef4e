package domain

// SearchResponse is the envelope returned by /search.
type SearchResponse struct {
	Success       bool      `json:"success"`
	Query         string    `json:"query"`
	Page          int       `json:"page"`
	PerSiteLimit  int       `json:"per_site_limit"`
	TotalArticles int       `json:"total_articles"`
	ActiveSources []string  `json:"active_sources"`
	HasNextPage   bool      `json:"has_next_page"`
	Articles      []Article `json:"articles"`
}

// LatestResponse is the envelope returned by /latest.
type LatestResponse struct {
	Success       bool      `json:"success"`
	Category      string    `json:"category"`
	TotalArticles int       `json:"total_articles"`
	Sources       []string  `json:"sources"`
	Articles      []Article `json:"articles"`
}

// TrendingResponse is the envelope returned by /trending. Articles are
// grouped per source display name rather than merged.
type TrendingResponse struct {
	Success          bool                 `json:"success"`
	Category         string               `json:"category"`
	TotalArticles    int                  `json:"total_articles"`
	ActiveSources    []string             `json:"active_sources"`
	TrendingBySource map[string][]Article `json:"trending_by_source"`
	LastUpdated      string               `json:"last_updated"`
}

// CategoriesResponse is the envelope returned by /categories.
type CategoriesResponse struct {
	Success      bool              `json:"success"`
	Categories   []string          `json:"categories"`
	Descriptions map[string]string `json:"descriptions"`
}

// ErrorResponse is the body returned for validation and internal
// failures. The detail field replaces the result envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}
