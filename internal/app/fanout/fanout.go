// Package fanout runs one pipeline per record across a batch with bounded
// concurrency. The admin CLI uses it to clone or remove many articles at once.
//
// Every item gets its own root transaction scope: a *sql.Tx is not safe for
// concurrent use, so Run refuses a context that already carries a scope.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
)

// ErrSharedScope is reported for every item when Run is called inside a
// transaction scope.
var ErrSharedScope = errors.New("fanout: context already carries a transaction scope")

// Result holds the outcome of processing a single item.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run calls fn for each item using at most maxWorkers goroutines and returns
// results in input order. A panic in fn is recorded as that item's error.
//
// Items still waiting for a worker when ctx is done record ctx.Err() without
// calling fn. Run blocks until every started call returns. maxWorkers below
// one is treated as one.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	for i, item := range items {
		results[i].Item = item
	}
	if len(items) == 0 {
		return results
	}

	if _, ok := txscope.From(ctx); ok {
		for i := range results {
			results[i].Err = ErrSharedScope
		}
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			results[i].Value, results[i].Err = call(ctx, items[i], fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (value R, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("fanout: item %v panicked: %v", item, v)
		}
	}()
	return fn(ctx, item)
}

// Errors joins the failures in results, each prefixed with its item. It
// returns nil when every item succeeded.
func Errors[T, R any](results []Result[T, R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", r.Item, r.Err))
		}
	}
	return errors.Join(errs...)
}
