// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads resolves the worker count: 0 means all CPUs, and there is
// never more than one worker per job (but always at least one).
func EffectiveThreads(threads, jobs int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if jobs > 0 && threads > jobs {
		threads = jobs
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

// Notes returns non-fatal remarks about a parameter combination that is
// legal but probably not what the user meant.
func Notes(queryLen, k, cutoff int) []string {
	var notes []string
	if queryLen < k {
		notes = append(notes, fmt.Sprintf("query is %d bases, shorter than seed length %d; nothing can match", queryLen, k))
	}
	if cutoff < k {
		notes = append(notes, fmt.Sprintf("cutoff %d is below seed length %d; every seed match qualifies", cutoff, k))
	}
	return notes
}
