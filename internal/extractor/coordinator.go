package extractor

import (
	"context"
	"sync/atomic"
)

type candidateResult struct {
	url  string
	path string
	err  error
}

// ExtractFirstAvailable runs extractions for the candidate URLs under the
// concurrency bound and returns the first path to complete successfully.
// Losers are not cancelled once a winner lands: they run to completion under
// their own transcode deadlines and their results are discarded. The waste is
// bounded by the semaphore and accepted in exchange for a simpler lifecycle.
// The results channel is buffered to len(urls) so an abandoned worker can
// always deposit its result and exit.
func (c *implCoordinator) ExtractFirstAvailable(ctx context.Context, urls []string) (string, bool) {
	if len(urls) == 0 {
		return "", false
	}

	results := make(chan candidateResult, len(urls))
	sem := newSemaphore(c.maxConcurrent)

	for _, url := range urls {
		go func(url string) {
			if err := sem.acquire(ctx); err != nil {
				results <- candidateResult{url: url, err: err}
				return
			}
			defer sem.release()

			atomic.AddInt64(&c.active, 1)
			path, err := c.extractor.Extract(ctx, url)
			atomic.AddInt64(&c.active, -1)

			if err != nil {
				atomic.AddInt64(&c.failed, 1)
			} else {
				atomic.AddInt64(&c.completed, 1)
			}

			results <- candidateResult{url: url, path: path, err: err}
		}(url)
	}

	// Consume in completion order, not submission order.
	failures := 0
	for range urls {
		r := <-results
		if r.err == nil {
			c.logger.Info(ctx, "Audio sample ready: %s (from %s, %d candidates failed first)",
				r.path, r.url, failures)
			return r.path, true
		}
		failures++
		c.logger.Warn(ctx, "Candidate %s failed: %v", r.url, r.err)
	}

	c.logger.Warn(ctx, "No audio produced from %d candidates", len(urls))
	return "", false
}

// Stats reports extraction counters for the health endpoint.
func (c *implCoordinator) Stats() CoordinatorStats {
	return CoordinatorStats{
		Active:    atomic.LoadInt64(&c.active),
		Completed: atomic.LoadInt64(&c.completed),
		Failed:    atomic.LoadInt64(&c.failed),
	}
}
