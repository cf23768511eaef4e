package source

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/news-aggregator/internal/domain"
)

// Registry is the process-wide table of source descriptors. It is
// immutable after construction; adding or removing a source requires
// a restart.
type Registry struct {
	byID  map[string]Descriptor
	order []string
}

// NewRegistry builds a registry from descriptors. IDs are normalized
// to lower case; duplicates are an error.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]Descriptor, len(descriptors)),
		order: make([]string, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		id := strings.ToLower(strings.TrimSpace(d.ID))
		if id == "" {
			return nil, fmt.Errorf("source descriptor with empty id (display name %q)", d.DisplayName)
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("duplicate source id %q", id)
		}
		if d.Adapter == nil {
			return nil, fmt.Errorf("source %q has no adapter", id)
		}
		d.ID = id
		r.byID[id] = d
		r.order = append(r.order, id)
	}
	return r, nil
}

// Lookup finds a descriptor by id, case-insensitively.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return d, ok
}

// IDs returns every registered id in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.order)
}

// Resolve expands a sources selector into descriptors. "all" (or an
// empty selector) selects every registered source; otherwise the
// selector is split on commas, trimmed, lower-cased, and intersected
// with the registry. Unknown ids are silently dropped, so an empty
// result is valid and simply yields zero articles.
func (r *Registry) Resolve(selector string) []Descriptor {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.EqualFold(selector, domain.AllSources) {
		out := make([]Descriptor, 0, len(r.order))
		for _, id := range r.order {
			out = append(out, r.byID[id])
		}
		return out
	}

	seen := make(map[string]bool)
	var out []Descriptor
	for _, part := range strings.Split(selector, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if d, ok := r.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
