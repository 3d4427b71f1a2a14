// internal/writers/hits.go
package writers

import (
	"io"

	"miniblast/core/engine"
	"miniblast/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		return drainAfter(in, output.StreamText(w, in))
	})
	Register(output.FormatTSV, func(w io.Writer, in <-chan engine.Hit, opt Options) error {
		return drainAfter(in, output.StreamTSV(w, in, opt.Header))
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		var buf []engine.Hit
		for h := range in {
			if !h.Empty() {
				buf = append(buf, h)
			}
		}
		return output.WriteJSON(w, buf)
	})
}

// StartHitWriter spins up a writer goroutine for the given format. The
// returned channel must be closed by the caller; the error channel then
// yields exactly one value.
func StartHitWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := Lookup(format)
		if err != nil {
			errCh <- drainAfter(in, err)
			return
		}
		errCh <- fn(out, in, opt)
	}()

	return in, errCh
}

// drainAfter empties in when err is non-nil so producers never block, then
// returns err.
func drainAfter(in <-chan engine.Hit, err error) error {
	if err != nil {
		for range in {
		}
	}
	return err
}
