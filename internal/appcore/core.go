// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"miniblast/core/engine"
	"miniblast/core/records"
	"miniblast/internal/cmdutil"
	"miniblast/internal/pipeline"
	"miniblast/internal/progress"
	"miniblast/internal/runutil"
	"miniblast/internal/writers"
)

type Options struct {
	QueryPath    string
	DatabasePath string
	OutPath      string
	InputFormat  string

	SeedLength int
	Cutoff     int

	Threads int

	Progress        bool
	Verbose         bool
	Quiet           bool
	NoMatchExitCode int
}

// Run executes one search and returns the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
) int {
	start := time.Now()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	queries, err := records.Load(ctx, o.QueryPath, o.InputFormat)
	if err != nil {
		return loadFailed(parent, stderr, err)
	}
	var query string
	switch len(queries) {
	case 0:
		cmdutil.Warnf(stderr, o.Quiet, "%s holds no records; searching with an empty query", o.QueryPath)
	case 1:
		query = queries[0].Seq
	default:
		query = queries[0].Seq
		cmdutil.Infof(stderr, o.Verbose, "%s holds %d records; using the first as the query", o.QueryPath, len(queries))
	}
	query = engine.UpperASCII(query)

	db, err := records.Load(ctx, o.DatabasePath, o.InputFormat)
	if err != nil {
		return loadFailed(parent, stderr, err)
	}

	eng, err := engine.New(query, engine.Config{K: o.SeedLength, Cutoff: o.Cutoff})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	for _, n := range runutil.Notes(len(query), o.SeedLength, o.Cutoff) {
		cmdutil.Warnf(stderr, o.Quiet, "%s", n)
	}

	thr := runutil.EffectiveThreads(o.Threads, len(db))
	cmdutil.Infof(stderr, o.Verbose, "query: %s bases, %s distinct seeds (k=%d, effective cutoff=%d)",
		humanize.Comma(int64(len(query))), humanize.Comma(int64(eng.Index().Len())), o.SeedLength, eng.EffectiveCutoff())
	cmdutil.Infof(stderr, o.Verbose, "database: %s sequences, %d worker(s)", humanize.Comma(int64(len(db))), thr)

	dst, err := writers.Create(o.OutPath, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	closed := false
	defer func() {
		if !closed {
			_ = dst.Close()
		}
	}()
	outw := bufio.NewWriter(dst)

	inCh, writeErr := wf.Start(outw, thr*4)
	bar := progress.New(stderr, o.Progress && !o.Quiet, len(db))

	var scanned int
	var bases int64
	total, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{
			Threads: thr,
			Observe: func(h engine.Hit) {
				scanned++
				bases += int64(len(h.Sequence))
				bar.Increment()
			},
		},
		db,
		eng,
		func(h engine.Hit) error {
			select {
			case inCh <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bar.Wait()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return 3
	}
	closed = true
	if e := dst.Close(); e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", perr)
		return 3
	}

	cmdutil.Infof(stderr, o.Verbose, "scanned %s sequences (%s bases) in %s; %s with HSPs",
		humanize.Comma(int64(scanned)), humanize.Comma(bases),
		time.Since(start).Round(time.Millisecond), humanize.Comma(int64(total)))

	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

// loadFailed maps an input error to 130 when the run was interrupted and to
// 2 otherwise.
func loadFailed(parent context.Context, stderr io.Writer, err error) int {
	if parent.Err() != nil || errors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintln(stderr, "error:", err)
	return 2
}
