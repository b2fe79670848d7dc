package dirichlet

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyseFrames analyses a sequence of identity fields over the same grid,
// e.g. successive frames of a simulation. Frames are analysed concurrently,
// each with a private candidate pool; the grid is only read. Reports are
// returned in frame order.
//
// The first frame failing (wrong field length) or ctx being cancelled stops
// the frames not yet started.
func AnalyseFrames(ctx context.Context, g Grid, frames [][]float64, opts ...Option) ([]*Report, error) {
	c := configure(opts)
	limit := c.concurrency
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	reports := make([]*Report, len(frames))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, ids := range frames {
		if egCtx.Err() != nil {
			break
		}
		i, ids := i, ids
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r, err := Analyse(g, ids, opts...)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("analysed %d frames", len(frames))
	return reports, nil
}
