// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"miniblast/core/records"
	"miniblast/internal/config"
	"miniblast/internal/output"
)

// Flags that steer configuration loading rather than the search itself.
const (
	FlagConfig  = "config"
	FlagEnvFile = "env-file"
)

// Options holds the resolved run settings.
type Options struct {
	// Input / output
	QueryPath    string
	DatabasePath string
	OutPath      string
	InputFormat  string

	// Search parameters
	SeedLength int
	Cutoff     int

	// Performance
	Threads int

	// Output
	Format          string
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Diagnostics
	Progress bool
	Verbose  bool
	Quiet    bool

	ConfigFile string
	EnvFile    string
}

// RegisterFlags defines every command-line flag on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	// Input / output
	fs.StringP(config.KeyQuery, "q", config.DefaultQueryPath, "query file; its first record is the query ('-' = stdin)")
	fs.StringP(config.KeyDatabase, "d", config.DefaultDatabasePath, "database file ('-' = stdin)")
	fs.StringP(config.KeyOut, "o", config.DefaultOutPath, "report file ('-' = stdout)")
	fs.String(config.KeyInputFormat, config.DefaultInputFormat, "input layout: "+strings.Join(records.Formats, " | "))

	// Search parameters
	fs.IntP(config.KeySeedLength, "k", config.DefaultSeedLength, "seed length (>= 1)")
	fs.IntP(config.KeyCutoff, "c", config.DefaultCutoff, "minimum HSP length; values below the seed length act as the seed length")

	// Performance
	fs.IntP(config.KeyThreads, "t", 0, "worker threads (0 = all CPUs)")

	// Output
	fs.StringP(config.KeyFormat, "f", config.DefaultFormat, "report format: text | tsv | json | jsonl")
	fs.Bool(config.KeyNoHeader, false, "suppress the TSV header row")
	fs.Int(config.KeyNoMatchExitCode, 0, "exit code when no sequence has an HSP")

	// Diagnostics
	fs.Bool(config.KeyProgress, false, "show a progress bar on stderr")
	fs.Bool(config.KeyVerbose, false, "log run parameters and a summary to stderr")
	fs.Bool(config.KeyQuiet, false, "suppress warnings and the progress bar")

	fs.String(FlagConfig, "", "config file (yaml, toml or json)")
	fs.String(FlagEnvFile, "", "dotenv file to load (default: "+config.DefaultEnvFile+" if present)")
}

// Resolve merges parsed flags with the environment, an optional config file
// and defaults, applies positional [query] [database] arguments, and
// validates the result.
func Resolve(fs *pflag.FlagSet, args []string) (Options, error) {
	envFile, _ := fs.GetString(FlagEnvFile)
	if err := config.LoadEnvFile(envFile); err != nil {
		return Options{}, fmt.Errorf("loading env file: %w", err)
	}

	v := config.New()
	if err := v.BindPFlags(fs); err != nil {
		return Options{}, err
	}
	cfgFile, _ := fs.GetString(FlagConfig)
	if err := config.ReadFile(v, cfgFile); err != nil {
		return Options{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	s, err := config.Decode(v)
	if err != nil {
		return Options{}, fmt.Errorf("decoding config: %w", err)
	}

	opt := Options{
		QueryPath:       s.Query,
		DatabasePath:    s.Database,
		OutPath:         s.Out,
		InputFormat:     s.InputFormat,
		SeedLength:      s.SeedLength,
		Cutoff:          s.Cutoff,
		Threads:         s.Threads,
		Format:          s.Format,
		Header:          !s.NoHeader,
		NoMatchExitCode: s.NoMatchExitCode,
		Progress:        s.Progress,
		Verbose:         s.Verbose,
		Quiet:           s.Quiet,
		ConfigFile:      cfgFile,
		EnvFile:         envFile,
	}

	if len(args) > 2 {
		return opt, fmt.Errorf("at most two positional arguments (query, database), got %d", len(args))
	}
	if len(args) > 0 {
		if fs.Changed(config.KeyQuery) {
			return opt, errors.New("query given both as --query and as an argument")
		}
		opt.QueryPath = args[0]
	}
	if len(args) > 1 {
		if fs.Changed(config.KeyDatabase) {
			return opt, errors.New("database given both as --database and as an argument")
		}
		opt.DatabasePath = args[1]
	}
	return opt, Validate(opt)
}

// Validate applies the run invariants. It runs before any file is opened.
func Validate(o Options) error {
	if o.SeedLength < 1 {
		return fmt.Errorf("--seed-length must be ≥ 1 (got %d)", o.SeedLength)
	}
	if o.QueryPath == "" {
		return errors.New("a query file is required")
	}
	if o.DatabasePath == "" {
		return errors.New("a database file is required")
	}
	if o.QueryPath == records.Stdin && o.DatabasePath == records.Stdin {
		return errors.New("query and database cannot both be read from stdin")
	}
	if o.OutPath == "" {
		return errors.New("--out must not be empty (use '-' for stdout)")
	}
	if err := records.CheckFormat(o.InputFormat); err != nil {
		return err
	}
	switch o.Format {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
