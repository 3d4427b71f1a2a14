package writers

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"miniblast/core/engine"
	"miniblast/pkg/api"
)

func scan(t *testing.T, query string, db ...string) []engine.Hit {
	t.Helper()
	e, err := engine.New(query, engine.Config{K: 4, Cutoff: 4})
	if err != nil {
		t.Fatal(err)
	}
	var out []engine.Hit
	for i, s := range db {
		out = append(out, e.ScanRecord(i, "", s))
	}
	return out
}

func run(t *testing.T, format string, opt Options, hits []engine.Hit) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartHitWriter(&buf, format, opt, 4)
	for _, h := range hits {
		in <- h
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer err: %v", format, err)
	}
	return buf.String()
}

func TestTextWriter(t *testing.T) {
	got := run(t, "text", Options{}, scan(t, "ACGT", "ACGT", "GGGG"))
	want := "We found a HSP in sequence: \n\nACGT\n\nWe found an occurance of ACGT at ((0, 3), (0, 3)).\n"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestTSVWriterHeader(t *testing.T) {
	hits := scan(t, "ACGT", "ACGT")
	with := run(t, "tsv", Options{Header: true}, hits)
	without := run(t, "tsv", Options{}, hits)
	if !strings.HasPrefix(with, "sequence_index\t") || strings.HasPrefix(without, "sequence_index\t") {
		t.Fatalf("header handling wrong:\n%q\n%q", with, without)
	}
}

func TestJSONWriter(t *testing.T) {
	out := run(t, "json", Options{}, scan(t, "ACGT", "ACGT"))
	var got []api.SequenceHitsV1
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 1 || got[0].HSPs[0].HSP != "ACGT" {
		t.Fatalf("json: %v %+v", err, got)
	}
}

func TestJSONLWriter(t *testing.T) {
	out := run(t, "jsonl", Options{}, scan(t, "ACGT", "ACGT", "TACGTA"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", out)
	}
	var second api.SequenceHitsV1
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second.SequenceIndex != 1 || second.HSPs[0].DBStart != 1 {
		t.Fatalf("got %+v", second)
	}
}

func TestCreate(t *testing.T) {
	var stdout bytes.Buffer
	w, err := Create("-", &stdout)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte("x"))
	if err := w.Close(); err != nil || stdout.String() != "x" {
		t.Fatalf("stdout passthrough: %v %q", err, stdout.String())
	}

	fn := filepath.Join(t.TempDir(), "out.txt")
	f, err := Create(fn, &stdout)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.Write([]byte("report"))
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(fn); string(data) != "report" {
		t.Fatalf("file content %q", data)
	}
}
