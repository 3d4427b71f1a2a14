// internal/pipeline/scanner.go
package pipeline

import "miniblast/core/engine"

// Scanner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Scanner interface {
	ScanRecord(index int, id, seq string) engine.Hit
}
