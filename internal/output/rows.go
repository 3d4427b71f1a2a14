// internal/output/rows.go
package output

import (
	"fmt"
	"io"

	"miniblast/core/engine"
)

// FormatRowTSV returns the TSV columns for one HSP (no trailing newline).
func FormatRowTSV(h engine.Hit, p engine.HSP) string {
	return fmt.Sprintf("%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d",
		h.Index, h.ID, p.Value, p.Score(), p.Count,
		p.Location.Query.Start, p.Location.Query.End,
		p.Location.Subject.Start, p.Location.Subject.End,
	)
}

// WriteRowsTSV writes one row per HSP of h.
func WriteRowsTSV(w io.Writer, h engine.Hit) error {
	for _, p := range h.HSPs.HSPs() {
		if _, err := io.WriteString(w, FormatRowTSV(h, p)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes the optional header, then rows as hits arrive.
func StreamTSV(w io.Writer, in <-chan engine.Hit, header bool) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for h := range in {
		if err := WriteRowsTSV(w, h); err != nil {
			return err
		}
	}
	return nil
}
