// core/engine/hsp.go
package engine

import (
	"fmt"

	"miniblast/core/ordered"
)

// Range is an inclusive, 0-based span of byte offsets.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start + 1 }

// Location pairs the query span of an HSP with its database span.
type Location struct {
	Query   Range
	Subject Range
}

// String renders the location as ((qStart, qEnd), (dStart, dEnd)).
func (l Location) String() string {
	return fmt.Sprintf("((%d, %d), (%d, %d))", l.Query.Start, l.Query.End, l.Subject.Start, l.Subject.End)
}

// HSP is an extended exact match, identified by the matched query substring.
// Location is where the substring was first discovered; Count is how many
// seed extensions produced the same substring within one database sequence.
type HSP struct {
	Value    string
	Location Location
	Count    int
}

// Score is the HSP length.
func (h HSP) Score() int { return len(h.Value) }

// ResultSet collects the HSPs of one database sequence keyed by substring,
// iterating in order of first discovery.
type ResultSet struct {
	hsps *ordered.Map[string, *HSP]
}

func NewResultSet() *ResultSet {
	return &ResultSet{hsps: ordered.New[string, *HSP]()}
}

// Add records one occurrence of value. The first occurrence fixes the stored
// location; later ones only bump the count, so the positions of repeated
// copies are not reported anywhere.
func (r *ResultSet) Add(value string, loc Location) {
	if h, ok := r.hsps.Get(value); ok {
		h.Count++
		return
	}
	r.hsps.Set(value, &HSP{Value: value, Location: loc, Count: 1})
}

func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return r.hsps.Len()
}

// Get returns a copy of the HSP stored for value.
func (r *ResultSet) Get(value string) (HSP, bool) {
	if r == nil {
		return HSP{}, false
	}
	h, ok := r.hsps.Get(value)
	if !ok {
		return HSP{}, false
	}
	return *h, true
}

// HSPs returns copies of all HSPs in discovery order.
func (r *ResultSet) HSPs() []HSP {
	if r == nil {
		return nil
	}
	out := make([]HSP, 0, r.hsps.Len())
	r.hsps.Range(func(_ string, h *HSP) bool {
		out = append(out, *h)
		return true
	})
	return out
}
