package output

// Output format names.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_index\tsequence_id\thsp\tscore\toccurrences\tquery_start\tquery_end\tdb_start\tdb_end"
