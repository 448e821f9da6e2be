package checker

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Checker struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func New(timeout time.Duration, userAgent string) *Checker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
			// Report a redirect's own status instead of chasing it,
			// so 3xx classifies like any other non-200.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Check issues one HEAD request for the target, no retries. The target is
// used as-is; anything that is not a fetchable URL fails at request build
// or transport and comes back as an error Result.
func (c *Checker) Check(ctx context.Context, link Link) Result {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, link.Target, nil)
	if err != nil {
		return Result{Link: link, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return Result{Link: link, Err: fmt.Errorf("head request: %w", err), Elapsed: elapsed}
	}
	resp.Body.Close()

	return Result{Link: link, Status: resp.StatusCode, Elapsed: elapsed}
}
