// Package progress draws an optional stderr progress bar over database records.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is a no-op when disabled, so callers never need to nil-check it.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar for total records on w. It returns a disabled Bar when
// enabled is false or there is nothing to count.
func New(w io.Writer, enabled bool, total int) *Bar {
	if !enabled || total <= 0 {
		return &Bar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("scanned sequences: ", decor.WC{W: len("scanned sequences: "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

func (b *Bar) Enabled() bool { return b.bar != nil }

// Increment records one scanned sequence.
func (b *Bar) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

// Wait flushes the bar. A bar that did not reach its total (cancelled run)
// is aborted in place first.
func (b *Bar) Wait() {
	if b.p == nil {
		return
	}
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
