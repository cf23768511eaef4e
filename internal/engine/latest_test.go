package engine_test

import (
	"context"
	"testing"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
)

func TestLatest_MergesAndTruncates(t *testing.T) {
	bbc := &fakeAdapter{articles: makeArticles("BBC News", 3)}
	scmp := &fakeAdapter{articles: makeArticles("South China Morning Post", 3)}
	eng := newTestEngine(t, []source.Descriptor{
		{ID: "bbc", DisplayName: "BBC News", Adapter: bbc},
		{ID: "scmp", DisplayName: "South China Morning Post", Adapter: scmp},
	})

	req := &domain.LatestRequest{Category: "world", Limit: 4}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	resp, err := eng.Latest(context.Background(), req)
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}

	if resp.TotalArticles != 4 {
		t.Errorf("TotalArticles = %d, want limit 4", resp.TotalArticles)
	}
	if len(resp.Sources) != 2 {
		t.Errorf("Sources = %v, want both", resp.Sources)
	}
	if bbc.lastCat != "world" {
		t.Errorf("adapter got category %q, want world", bbc.lastCat)
	}

	// Newest first across the merged aggregate.
	for i := 1; i < len(resp.Articles); i++ {
		if resp.Articles[i-1].PublishedDate < resp.Articles[i].PublishedDate {
			// Dates in the fixtures share a month, so the string
			// comparison tracks the instant comparison here.
			t.Errorf("articles not sorted newest first at position %d", i)
		}
	}
}

func TestLatest_DefaultCategory(t *testing.T) {
	bbc := &fakeAdapter{articles: makeArticles("BBC News", 1)}
	eng := newTestEngine(t, []source.Descriptor{
		{ID: "bbc", DisplayName: "BBC News", Adapter: bbc},
	})

	req := &domain.LatestRequest{}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if _, err := eng.Latest(context.Background(), req); err != nil {
		t.Fatalf("Latest() error: %v", err)
	}

	if bbc.lastCat != domain.DefaultLatestCategory {
		t.Errorf("category = %q, want %q", bbc.lastCat, domain.DefaultLatestCategory)
	}
	if bbc.lastLimit != domain.DefaultLatestLimit {
		t.Errorf("limit = %d, want %d", bbc.lastLimit, domain.DefaultLatestLimit)
	}
}

func TestLatest_FailingSourceOmitted(t *testing.T) {
	eng := newTestEngine(t, []source.Descriptor{
		{ID: "bbc", DisplayName: "BBC News", Adapter: &fakeAdapter{articles: makeArticles("BBC News", 2)}},
		{ID: "asahi", DisplayName: "The Asahi Shimbun", Adapter: &fakeAdapter{failing: true}},
	})

	req := &domain.LatestRequest{Limit: 10}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	resp, err := eng.Latest(context.Background(), req)
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}

	if len(resp.Sources) != 1 || resp.Sources[0] != "BBC News" {
		t.Errorf("Sources = %v, want [BBC News]", resp.Sources)
	}
	if resp.TotalArticles != 2 {
		t.Errorf("TotalArticles = %d, want 2", resp.TotalArticles)
	}
}
