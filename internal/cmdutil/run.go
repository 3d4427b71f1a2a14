package cmdutil

import (
	"context"

	"miniblast/core/engine"
	"miniblast/core/records"
	"miniblast/internal/pipeline"
)

// RunStream runs the shared pipeline and streams every non-empty hit via send.
// It returns the number of hits sent and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	db []records.Record,
	eng pipeline.Scanner,
	send func(engine.Hit) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachHit(ctx, cfg, db, eng, func(h engine.Hit) error {
		if err := send(h); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
