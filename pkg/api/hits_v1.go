// pkg/api/hits_v1.go
package api

// HSPV1 is the stable JSON/JSONL schema for one high-scoring pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Coordinates are 0-based and inclusive.
type HSPV1 struct {
	HSP         string `json:"hsp"`
	Score       int    `json:"score"`
	Occurrences int    `json:"occurrences"`
	QueryStart  int    `json:"query_start"`
	QueryEnd    int    `json:"query_end"`
	DBStart     int    `json:"db_start"`
	DBEnd       int    `json:"db_end"`
}

// SequenceHitsV1 groups the HSPs found in one database sequence, in the
// order they were first discovered.
type SequenceHitsV1 struct {
	SequenceIndex int     `json:"sequence_index"`
	SequenceID    string  `json:"sequence_id,omitempty"`
	Sequence      string  `json:"sequence"`
	HSPs          []HSPV1 `json:"hsps"`
}
