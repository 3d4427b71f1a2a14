// core/seed/index.go
package seed

import "miniblast/core/ordered"

// Index maps every k-length substring of a query to the ascending list of
// offsets where it starts. It is built once and is read-only afterwards, so
// it can be shared by concurrent scanners.
type Index struct {
	k     int
	kmers *ordered.Map[string, []int]
}

// Build indexes query with seed length k. k must be >= 1; callers validate.
// A query shorter than k yields an empty index.
func Build(query string, k int) *Index {
	n := len(query) - k + 1
	if k < 1 || n < 0 {
		n = 0
	}
	idx := &Index{k: k, kmers: ordered.NewWithCapacity[string, []int](n)}
	for i := 0; i < n; i++ {
		kmer := query[i : i+k]
		pos, _ := idx.kmers.Get(kmer)
		idx.kmers.Set(kmer, append(pos, i))
	}
	return idx
}

// K returns the seed length the index was built with.
func (x *Index) K() int { return x.k }

// Len returns the number of distinct seeds.
func (x *Index) Len() int { return x.kmers.Len() }

// Lookup returns the query offsets of kmer in ascending order, or nil.
// The returned slice must not be modified.
func (x *Index) Lookup(kmer string) []int {
	pos, _ := x.kmers.Get(kmer)
	return pos
}

// Seeds returns the distinct seeds in first-seen order.
func (x *Index) Seeds() []string { return x.kmers.Keys() }
