// Package records loads query and database sequences from disk.
//
// Two layouts are understood: the paragraph layout, where records are
// separated by a blank line, and FASTA. Either may be gzip-compressed.
package records

import (
	"fmt"
	"strings"
)

// Record is one input sequence.
type Record struct {
	ID  string
	Seq string
}

// Input layouts.
const (
	FormatParagraph = "paragraph"
	FormatFASTA     = "fasta"
)

// Formats lists the accepted input layouts.
var Formats = []string{FormatParagraph, FormatFASTA}

// CheckFormat returns an error for an unknown layout name.
func CheckFormat(f string) error {
	for _, known := range Formats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("unknown input format %q (want %s)", f, strings.Join(Formats, " or "))
}
