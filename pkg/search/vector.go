// Package search provides the catalog retrieval layer: a hashed bag-of-words
// similarity index plus a keyword scorer, fused by the hybrid searcher.
package search

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"unicode"

	"vape-support-be/pkg/store"
)

// VectorWidth is the fixed fingerprint dimension.
const VectorWidth = 100

// Index holds one normalized term-frequency fingerprint per catalog product.
// Vectors are built once and are read-only afterwards, so concurrent searches
// need no locking.
//
// This is a hashed bag-of-words approximation, not a trained embedding;
// collisions are expected and accepted. A real embedding model can be swapped
// in behind the same Search contract without touching callers.
type Index struct {
	products []store.Product
	vectors  [][]float64
}

// BuildIndex computes fingerprints for the whole catalog.
func BuildIndex(products []store.Product) *Index {
	idx := &Index{
		products: products,
		vectors:  make([][]float64, len(products)),
	}
	for i, p := range products {
		idx.vectors[i] = Vectorize(productText(p))
	}
	return idx
}

// Len returns the number of indexed products.
func (idx *Index) Len() int {
	return len(idx.products)
}

// Search scores every stored vector by cosine similarity against the query's
// fingerprint and returns the top-k products by descending score. Ties break
// by catalog insertion order.
func (idx *Index) Search(query string, k int) []store.Product {
	if k <= 0 || len(idx.products) == 0 {
		return nil
	}

	queryVec := Vectorize(query)

	type scored struct {
		pos   int
		score float64
	}
	results := make([]scored, len(idx.products))
	for i, vec := range idx.vectors {
		results[i] = scored{pos: i, score: cosine(queryVec, vec)}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].score > results[b].score
	})

	if k > len(results) {
		k = len(results)
	}
	out := make([]store.Product, 0, k)
	for _, r := range results[:k] {
		out = append(out, idx.products[r.pos])
	}
	return out
}

// Vectorize maps text to a unit-length VectorWidth fingerprint: each token
// increments the bucket given by hash(token) mod width, then the vector is
// L2-normalized.
func Vectorize(text string) []float64 {
	vec := make([]float64, VectorWidth)

	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%VectorWidth]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func cosine(a, b []float64) float64 {
	// Both vectors are unit-length (or zero), so the dot product is the
	// cosine similarity.
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

func productText(p store.Product) string {
	parts := []string{p.Name, p.Description}
	parts = append(parts, p.Features...)
	parts = append(parts, p.Keywords...)
	return strings.Join(parts, " ")
}
