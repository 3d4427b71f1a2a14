// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"miniblast/internal/appcore"
	"miniblast/internal/cli"
	"miniblast/internal/version"
)

// NewCommand builds the root command. The exit code of a completed search is
// stored in *code.
func NewCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miniblast [query-file] [database-file]",
		Short: "Seed-and-extend search of a query sequence against a database",
		Long: `miniblast indexes every length-k substring of the query, looks each one up
in every database sequence, extends the exact seed match in both directions
and reports the maximal matches (HSPs) at least --cutoff characters long.
A match found several times in one database sequence is reported once, at the
location where it was first found; tsv and json output carry the count.`,
		Example:       cli.Examples,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cli.Resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			wf := appcore.NewHitWriterFactory(opts.Format, opts.Header)
			*code = appcore.Run(cmd.Context(), stdout, stderr, coreOptions(opts), wf)
			return nil
		},
	}
	cli.RegisterFlags(cmd.Flags())
	cmd.SetVersionTemplate("miniblast version {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func coreOptions(o cli.Options) appcore.Options {
	return appcore.Options{
		QueryPath:       o.QueryPath,
		DatabasePath:    o.DatabasePath,
		OutPath:         o.OutPath,
		InputFormat:     o.InputFormat,
		SeedLength:      o.SeedLength,
		Cutoff:          o.Cutoff,
		Threads:         o.Threads,
		Progress:        o.Progress,
		Verbose:         o.Verbose,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}
}

// RunContext parses argv, runs the search and returns the exit code:
// 0 success, 2 usage or input error, 3 output error, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}
	code := 0
	cmd := NewCommand(stdout, stderr, &code)
	cmd.SetArgs(argv)
	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintln(stderr, "Run 'miniblast --help' for usage.")
		return 2
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
