package source_test

import (
	"context"
	"testing"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
)

type stubAdapter struct{}

func (stubAdapter) SearchNews(context.Context, string, int) ([]domain.Article, error) {
	return nil, nil
}

func (stubAdapter) LatestNews(context.Context, string, int) ([]domain.Article, error) {
	return nil, nil
}

func newTestRegistry(t *testing.T) *source.Registry {
	t.Helper()
	r, err := source.NewRegistry([]source.Descriptor{
		{ID: "bbc", DisplayName: "BBC News", Adapter: stubAdapter{}},
		{ID: "nypost", DisplayName: "NY Post", Adapter: stubAdapter{}},
		{ID: "scmp", DisplayName: "South China Morning Post", Adapter: stubAdapter{}},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return r
}

func TestNewRegistryRejectsBadDescriptors(t *testing.T) {
	tests := []struct {
		name  string
		descs []source.Descriptor
	}{
		{
			"duplicate id",
			[]source.Descriptor{
				{ID: "bbc", DisplayName: "BBC News", Adapter: stubAdapter{}},
				{ID: "BBC", DisplayName: "BBC again", Adapter: stubAdapter{}},
			},
		},
		{
			"empty id",
			[]source.Descriptor{{ID: "  ", DisplayName: "Nameless", Adapter: stubAdapter{}}},
		},
		{
			"nil adapter",
			[]source.Descriptor{{ID: "bbc", DisplayName: "BBC News"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := source.NewRegistry(tt.descs); err == nil {
				t.Error("NewRegistry() = nil, want error")
			}
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry(t)

	d, ok := r.Lookup("BBC")
	if !ok {
		t.Fatal("Lookup(BBC) failed, ids are case-insensitive")
	}
	if d.DisplayName != "BBC News" {
		t.Errorf("DisplayName = %q, want BBC News", d.DisplayName)
	}

	if _, ok := r.Lookup("reddit"); ok {
		t.Error("Lookup(reddit) succeeded for an unregistered id")
	}
}

func TestRegistryResolve(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name     string
		selector string
		wantIDs  []string
	}{
		{"all keyword", "all", []string{"bbc", "nypost", "scmp"}},
		{"empty selector", "", []string{"bbc", "nypost", "scmp"}},
		{"single id", "nypost", []string{"nypost"}},
		{"csv with spaces and case", " BBC , Scmp ", []string{"bbc", "scmp"}},
		{"unknown ids dropped", "bbc,reddit,hackernews", []string{"bbc"}},
		{"all unknown", "reddit,hackernews", nil},
		{"duplicates collapsed", "bbc,bbc,bbc", []string{"bbc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.selector)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Resolve(%q) returned %d descriptors, want %d", tt.selector, len(got), len(tt.wantIDs))
			}
			for i, d := range got {
				if d.ID != tt.wantIDs[i] {
					t.Errorf("position %d: id = %q, want %q", i, d.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestRegistryIDsPreservesOrder(t *testing.T) {
	r := newTestRegistry(t)
	ids := r.IDs()
	want := []string{"bbc", "nypost", "scmp"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}
