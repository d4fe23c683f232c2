// Package answercache serves pre-authored answers keyed by trigger keywords,
// so common questions never reach the generation backend.
package answercache

import (
	"fmt"
	"strings"

	"vape-support-be/pkg/store"
)

// Cache holds the loaded answer entries in insertion order. Lookups scan that
// order, so first-match-wins is deterministic for a given load.
type Cache struct {
	entries []store.CachedAnswer
}

// New builds a cache from the given entries, preserving their order.
func New(entries []store.CachedAnswer) *Cache {
	return &Cache{entries: entries}
}

// Size returns the number of loaded entries.
func (c *Cache) Size() int {
	return len(c.entries)
}

// Lookup scans the entries in load order; the first entry with a keyword that
// is a substring of the normalized query is the hit. A miss returns
// found=false and is not an error.
//
// On a hit the formatted response and at most one synthesized product are
// returned; the product list is empty when the entry has no URL.
func (c *Cache) Lookup(normalizedQuery string) (found bool, response string, products []store.Product) {
	for _, entry := range c.entries {
		if !matchesEntry(entry, normalizedQuery) {
			continue
		}
		return true, formatResponse(entry), synthesizeProducts(entry)
	}
	return false, "", nil
}

func matchesEntry(entry store.CachedAnswer, query string) bool {
	for _, keyword := range entry.Keywords {
		if strings.Contains(query, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// formatResponse concatenates, in fixed order: heading, description, feature
// block, price line, link line. Empty sections are omitted.
func formatResponse(entry store.CachedAnswer) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("**%s**\n\n", entry.FullName))
	b.WriteString(entry.Description)

	if len(entry.Features) > 0 {
		b.WriteString("\n")
		for _, feature := range entry.Features {
			b.WriteString(fmt.Sprintf("\n- %s", feature))
		}
	}

	if entry.Price != "" {
		b.WriteString(fmt.Sprintf("\n\nPrice: %s", entry.Price))
	}

	if entry.URL != "" {
		b.WriteString(fmt.Sprintf("\n\n[Shop Now](%s)", entry.URL))
	}

	return b.String()
}

func synthesizeProducts(entry store.CachedAnswer) []store.Product {
	if entry.URL == "" {
		return []store.Product{}
	}
	return []store.Product{{
		Name:        entry.Name,
		FullName:    entry.FullName,
		URL:         entry.URL,
		Price:       entry.Price,
		Description: entry.Description,
		Features:    entry.Features,
		Keywords:    entry.Keywords,
		Metadata:    entry.Metadata,
		Boost:       1.0,
	}}
}
