// Package pipeline fans database records out to scanning workers and
// restores database order before results reach the writer.
//
// The query and its seed index are shared read-only by all workers; each
// worker owns the result set of the record it is scanning.
package pipeline
