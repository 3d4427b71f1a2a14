// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"miniblast/core/engine"
	"miniblast/core/records"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)

	// Observe, if set, is called for every scanned record in database
	// order, including records that produced no HSPs.
	Observe func(engine.Hit)
}

// ForEachHit scans db with eng on cfg.Threads workers and calls visit for
// every hit that retained at least one HSP. Workers may finish in any order;
// visit always sees hits in database order. It returns the first error from
// visit, or the context error if ctx was cancelled.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	db []records.Record,
	eng Scanner,
	visit func(engine.Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx int
		rec records.Record
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan engine.Hit, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					hit := eng.ScanRecord(j.idx, j.rec.ID, j.rec.Seq)
					select {
					case results <- hit:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: release hits strictly in database order.
	var (
		cerr    error
		cwg     sync.WaitGroup
		pending = make(map[int]engine.Hit)
		next    int
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for h := range results {
			if cerr != nil {
				continue
			}
			pending[h.Index] = h
			for {
				ready, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cfg.Observe != nil {
					cfg.Observe(ready)
				}
				if ready.Empty() {
					continue
				}
				if err := visit(ready); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i, rec := range db {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, rec: rec}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return parent.Err()
}
