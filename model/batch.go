package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ForwardAll advances every world by n generations. Worlds are independent, so up to
// limit of them run at once; limit <= 0 means one per CPU. Each world is still stepped
// sequentially. Results keep the input order.
func ForwardAll(ctx context.Context, worlds []World, n uint, limit int) ([]World, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var (
		results  = make([]World, len(worlds))
		eg, gctx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(limit)

	for i, w := range worlds {
		eg.Go(func() error {
			for range n {
				if err := gctx.Err(); err != nil {
					return errors.Wrapf(err, "[ForwardAll] world %d cancelled", i)
				}
				w = w.Step()
			}
			results[i] = w
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
