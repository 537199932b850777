package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one batch request.
type Result struct {
	Output []byte
	Err    error
}

// GenerateBatch renders requests concurrently with at most jobs workers
// (GOMAXPROCS when jobs <= 0). Results keep the request order. A failing
// request does not stop the others; the returned error joins every failure.
// Cancelling ctx stops requests that have not started.
func (o *Orchestrator) GenerateBatch(ctx context.Context, requests []Request, jobs int) ([]Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	started := time.Now()
	results := make([]Result, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range requests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Output, results[i].Err = o.Generate(gctx, requests[i])
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for i, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("request %d (%s): %w", i, inputName(requests[i]), result.Err))
		}
	}
	o.logger.BatchCompleted(len(requests), len(errs), time.Since(started))
	return results, errors.Join(errs...)
}
