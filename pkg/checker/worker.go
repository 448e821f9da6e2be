package checker

import (
	"context"
	"log/slog"
	"sync"
)

type job struct {
	index int
	link  Link
}

// CheckAll runs every link through Check and returns one result per link,
// in input order. One worker keeps validation strictly sequential; more
// workers change throughput only, never output order, because results are
// written back by index.
func (c *Checker) CheckAll(ctx context.Context, links []Link, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(links))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			slog.Debug("checker worker started", slog.Int("id", id))
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					results[j.index] = c.Check(ctx, j.link)
				}
			}
		}(i)
	}

dispatch:
	for i, link := range links {
		select {
		case jobs <- job{index: i, link: link}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	// Links never dispatched after a cancellation still get a result.
	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Link == (Link{}) {
				results[i] = Result{Link: links[i], Err: err}
			}
		}
	}

	return results
}
