// internal/cli/options_test.go
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resolve(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("test")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return Resolve(fs, fs.Args())
}

func mustResolve(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := resolve(t, args...)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustResolve(t)
	if o.QueryPath != "query.txt" || o.DatabasePath != "database.txt" || o.OutPath != "BLAST_OUTPUT.txt" {
		t.Errorf("bad default paths %+v", o)
	}
	if o.SeedLength != 4 || o.Cutoff != 5 {
		t.Errorf("bad default parameters k=%d cutoff=%d", o.SeedLength, o.Cutoff)
	}
	if o.Format != "text" || o.InputFormat != "paragraph" || !o.Header {
		t.Errorf("bad default formats %+v", o)
	}
}

func TestShortFlags(t *testing.T) {
	o := mustResolve(t, "-q", "a.txt", "-d", "b.txt", "-o", "-", "-k", "6", "-c", "10", "-f", "tsv", "-t", "3")
	if o.QueryPath != "a.txt" || o.DatabasePath != "b.txt" || o.OutPath != "-" {
		t.Errorf("bad paths %+v", o)
	}
	if o.SeedLength != 6 || o.Cutoff != 10 || o.Format != "tsv" || o.Threads != 3 {
		t.Errorf("bad values %+v", o)
	}
}

func TestPositionals(t *testing.T) {
	o := mustResolve(t, "q.fa", "db.fa")
	if o.QueryPath != "q.fa" || o.DatabasePath != "db.fa" {
		t.Errorf("positionals not applied: %+v", o)
	}
	if _, err := resolve(t, "-q", "x.txt", "q.fa"); err == nil {
		t.Error("expected conflict between --query and positional")
	}
	if _, err := resolve(t, "a", "b", "c"); err == nil {
		t.Error("expected error for three positionals")
	}
}

func TestValidation(t *testing.T) {
	cases := [][]string{
		{"-k", "0"},
		{"--threads", "-1"},
		{"--format", "xml"},
		{"--input-format", "genbank"},
		{"--no-match-exit-code", "256"},
		{"-q", "-", "-d", "-"},
		{"-o", ""},
	}
	for _, args := range cases {
		if _, err := resolve(t, args...); err == nil {
			t.Errorf("%v: expected validation error", args)
		}
	}
}

func TestNegativeCutoffAccepted(t *testing.T) {
	if o := mustResolve(t, "-c", "-3"); o.Cutoff != -3 {
		t.Errorf("cutoff=%d", o.Cutoff)
	}
}

func TestEnvironmentPrecedence(t *testing.T) {
	t.Setenv("MINIBLAST_K", "7")
	t.Setenv("MINIBLAST_CUTOFF", "9")
	t.Setenv("MINIBLAST_NO_HEADER", "true")

	o := mustResolve(t)
	if o.SeedLength != 7 || o.Cutoff != 9 || o.Header {
		t.Errorf("env not applied: %+v", o)
	}
	o = mustResolve(t, "-k", "3")
	if o.SeedLength != 3 {
		t.Errorf("flag must beat env, got k=%d", o.SeedLength)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "miniblast.yaml")
	body := "seed-length: 5\ncutoff: 8\nformat: jsonl\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustResolve(t, "--config", cfg)
	if o.SeedLength != 5 || o.Cutoff != 8 || o.Format != "jsonl" {
		t.Errorf("config not applied: %+v", o)
	}

	t.Setenv("MINIBLAST_CUTOFF", "12")
	o = mustResolve(t, "--config", cfg, "-f", "tsv")
	if o.Cutoff != 12 || o.Format != "tsv" {
		t.Errorf("env and flag must beat config: %+v", o)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := resolve(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("want reading-config error, got %v", err)
	}
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "run.env")
	if err := os.WriteFile(env, []byte("MINIBLAST_SEED_LENGTH=11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override set variables; start from a clean slate.
	t.Setenv("MINIBLAST_SEED_LENGTH", "")
	os.Unsetenv("MINIBLAST_SEED_LENGTH")

	o := mustResolve(t, "--env-file", env)
	if o.SeedLength != 11 {
		t.Errorf("env file not applied: k=%d", o.SeedLength)
	}
	os.Unsetenv("MINIBLAST_SEED_LENGTH")

	if _, err := resolve(t, "--env-file", filepath.Join(dir, "missing.env")); err == nil {
		t.Error("explicit missing env file must fail")
	}
}
