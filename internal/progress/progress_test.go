package progress

import (
	"bytes"
	"testing"
)

func TestDisabledBarIsNoop(t *testing.T) {
	var b bytes.Buffer
	bar := New(&b, false, 10)
	bar.Increment()
	bar.Wait()
	if bar.Enabled() || b.Len() != 0 {
		t.Fatalf("disabled bar wrote %q", b.String())
	}
	if New(&b, true, 0).Enabled() {
		t.Fatal("zero total must disable the bar")
	}
}

func TestBarCompletes(t *testing.T) {
	var b bytes.Buffer
	bar := New(&b, true, 3)
	for i := 0; i < 3; i++ {
		bar.Increment()
	}
	bar.Wait()
	if !bar.Enabled() {
		t.Fatal("bar should be enabled")
	}
}

func TestAbortedBarReturns(t *testing.T) {
	var b bytes.Buffer
	bar := New(&b, true, 5)
	bar.Increment()
	bar.Wait() // must not block on an unfinished bar
}
