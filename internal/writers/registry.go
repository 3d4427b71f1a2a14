// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"miniblast/core/engine"
)

// Options carries format-independent writer settings.
type Options struct {
	Header bool // TSV header row
}

// HitWriter consumes hits from in until it is closed and renders them to w.
// Implementations must drain in even after a write error.
type HitWriter func(w io.Writer, in <-chan engine.Hit, opt Options) error

// Writer registry (format → handler). Register in init() blocks of the format files.
var hitWriters = map[string]HitWriter{}

// Register adds or replaces the writer for format (idempotent last-wins).
func Register(format string, fn HitWriter) { hitWriters[format] = fn }

// Lookup returns the writer for format.
func Lookup(format string) (HitWriter, error) {
	fn, ok := hitWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn, nil
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(hitWriters))
	for f := range hitWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
