// core/records/paragraph.go
package records

import (
	"fmt"
	"strings"
)

// SplitParagraphs splits text on blank lines ("\n\n"). CRLF line endings
// are normalized first and line breaks at either end of a record are
// dropped; anything else, including single newlines inside a record, is
// kept. The classic script kept those edge newlines (its last record
// usually ended in "\n", which could match and was echoed in the report);
// trimming them is a deliberate difference. Empty input yields one empty
// record, and empty records between consecutive separators are kept so
// numbering stays stable.
func SplitParagraphs(text string) []Record {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n\n")
	out := make([]Record, len(parts))
	for i, p := range parts {
		out[i] = Record{ID: paragraphID(i), Seq: strings.Trim(p, "\n")}
	}
	return out
}

func paragraphID(i int) string { return fmt.Sprintf("record_%d", i+1) }
