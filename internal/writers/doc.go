// Package writers turns scan results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text report, TSV, JSON/JSONL).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Each format registers itself; StartHitWriter dispatches by name.
package writers
