// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"miniblast/core/engine"
)

// WriteTextBlock writes the report block for one database sequence: a
// header naming the sequence, then one line per HSP in discovery order.
// The wording ("occurance" included) is kept stable for downstream parsers.
func WriteTextBlock(w io.Writer, h engine.Hit) error {
	if _, err := fmt.Fprintf(w, "We found a HSP in sequence: \n\n%s\n\n", h.Sequence); err != nil {
		return err
	}
	for _, p := range h.HSPs.HSPs() {
		if _, err := fmt.Fprintf(w, "We found an occurance of %s at %s.\n", p.Value, p.Location); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes one block per hit. Hits without HSPs are skipped.
func WriteText(w io.Writer, hits []engine.Hit) error {
	for _, h := range hits {
		if h.Empty() {
			continue
		}
		if err := WriteTextBlock(w, h); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes blocks as hits arrive on in.
func StreamText(w io.Writer, in <-chan engine.Hit) error {
	for h := range in {
		if h.Empty() {
			continue
		}
		if err := WriteTextBlock(w, h); err != nil {
			return err
		}
	}
	return nil
}
