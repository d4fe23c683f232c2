package search

import (
	"sort"
	"strings"

	"vape-support-be/pkg/store"
)

// CatalogSearcher fuses semantic and keyword retrieval over the shared
// read-only catalog.
type CatalogSearcher struct {
	index    *Index
	products []store.Product
}

// NewCatalogSearcher wires the searcher to a prebuilt similarity index and
// the catalog it was built from.
func NewCatalogSearcher(index *Index, products []store.Product) *CatalogSearcher {
	return &CatalogSearcher{index: index, products: products}
}

// Search runs both retrieval paths over 2k candidates each, merges them by
// product URL (semantic results win on collision), orders the merged set by
// ascending priority then descending boost, and truncates to k.
//
// Products without a URL cannot be deduplicated and are dropped during the
// merge; that is an accepted limitation, not something to paper over.
func (s *CatalogSearcher) Search(query string, k int) []store.Product {
	if k <= 0 {
		return nil
	}

	semantic := s.index.Search(query, 2*k)
	keyword := s.keywordCandidates(query, 2*k)

	seen := make(map[string]struct{})
	var merged []store.Product

	for _, p := range semantic {
		if p.URL == "" {
			continue
		}
		if _, ok := seen[p.URL]; ok {
			continue
		}
		seen[p.URL] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range keyword {
		if p.URL == "" {
			continue
		}
		if _, ok := seen[p.URL]; ok {
			continue
		}
		seen[p.URL] = struct{}{}
		merged = append(merged, p)
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].Priority != merged[b].Priority {
			return merged[a].Priority < merged[b].Priority
		}
		return merged[a].Boost > merged[b].Boost
	})

	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}

// keywordCandidates scores each product by term overlap: +1 per query term
// found anywhere in name/description/keywords, +2 extra when the term is in
// the name, multiplied by the product's boost. Only positive scores survive.
func (s *CatalogSearcher) keywordCandidates(query string, limit int) []store.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		pos   int
		score float64
	}
	var candidates []scored

	for i, p := range s.products {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		keywords := strings.ToLower(strings.Join(p.Keywords, " "))

		var raw float64
		for _, term := range terms {
			if strings.Contains(name, term) || strings.Contains(desc, term) || strings.Contains(keywords, term) {
				raw++
			}
			if strings.Contains(name, term) {
				raw += 2
			}
		}
		if raw == 0 {
			continue
		}

		boost := p.Boost
		if boost == 0 {
			boost = 1.0
		}
		candidates = append(candidates, scored{pos: i, score: raw * boost})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]store.Product, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, s.products[c.pos])
	}
	return out
}
