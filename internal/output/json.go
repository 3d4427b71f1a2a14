// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"miniblast/core/engine"
	"miniblast/pkg/api"
)

// ToAPIHits converts a domain Hit to the stable wire schema (v1).
func ToAPIHits(h engine.Hit) api.SequenceHitsV1 {
	hsps := h.HSPs.HSPs()
	v := api.SequenceHitsV1{
		SequenceIndex: h.Index,
		SequenceID:    h.ID,
		Sequence:      h.Sequence,
		HSPs:          make([]api.HSPV1, 0, len(hsps)),
	}
	for _, p := range hsps {
		v.HSPs = append(v.HSPs, api.HSPV1{
			HSP:         p.Value,
			Score:       p.Score(),
			Occurrences: p.Count,
			QueryStart:  p.Location.Query.Start,
			QueryEnd:    p.Location.Query.End,
			DBStart:     p.Location.Subject.Start,
			DBEnd:       p.Location.Subject.End,
		})
	}
	return v
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, hits []engine.Hit) error {
	out := make([]api.SequenceHitsV1, 0, len(hits))
	for _, h := range hits {
		out = append(out, ToAPIHits(h))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
