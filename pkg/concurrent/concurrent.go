package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run starts every fn in its own goroutine with a shared context that is
// cancelled as soon as one of them fails or the parent is done. It waits for
// all of them and returns the first error encountered.
func Run(ctx context.Context, fns ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(func() error {
			return fn(gctx)
		})
	}
	return g.Wait()
}

// Each runs action for every item with at most limit goroutines in flight.
// A non-positive limit means no limit. Unlike Run, a failing item does not
// cancel the others; every result is returned in input order.
func Each[T any](items []T, limit int, action func(T) error) []error {
	errs := make([]error, len(items))
	g := errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	for idx, item := range items {
		g.Go(func() error {
			errs[idx] = action(item)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
