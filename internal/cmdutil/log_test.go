package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnfQuiet(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "dropped %d", 3)
	if b.Len() != 0 {
		t.Fatalf("quiet should suppress, got %q", b.String())
	}
	Warnf(&b, false, "dropped %d", 3)
	if b.String() != "WARN: dropped 3\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestInfofVerbose(t *testing.T) {
	var b bytes.Buffer
	Infof(&b, false, "k=%d", 4)
	if b.Len() != 0 {
		t.Fatalf("non-verbose should suppress, got %q", b.String())
	}
	Infof(&b, true, "k=%d", 4)
	if b.String() != "INFO: k=4\n" {
		t.Fatalf("got %q", b.String())
	}
}
