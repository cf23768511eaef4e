package engine

import "github.com/jonesrussell/news-aggregator/internal/domain"

// categoryDescriptions is the human-readable label per category id.
var categoryDescriptions = map[string]string{
	"all":           "Top stories across every category",
	"news":          "Breaking and general news",
	"sports":        "Sports coverage and results",
	"business":      "Business, markets, and the economy",
	"technology":    "Technology and science",
	"entertainment": "Entertainment and celebrity news",
	"health":        "Health and medicine",
	"world":         "World and international affairs",
}

// Categories returns the fixed category set with descriptions.
func (e *Engine) Categories() *domain.CategoriesResponse {
	categories := make([]string, len(domain.TrendingCategories))
	copy(categories, domain.TrendingCategories)

	descriptions := make(map[string]string, len(categoryDescriptions))
	for id, desc := range categoryDescriptions {
		descriptions[id] = desc
	}

	return &domain.CategoriesResponse{
		Success:      true,
		Categories:   categories,
		Descriptions: descriptions,
	}
}
