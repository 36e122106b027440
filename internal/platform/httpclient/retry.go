package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay.
const jitterFraction = 0.25

// doWithRetry sends req until it gets a final answer or runs out of
// attempts. The body is buffered once and replayed per attempt. The response
// is written to resp so the caller owns closing it; on exhausted retries resp
// holds the last response and the error is non-nil.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr   error
		lastReply *http.Response
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			wait := c.retryCfg.delay(attempt, lastReply)
			if lastReply != nil {
				discard(lastReply)
			}
			if err := c.pause(ctx, req, attempt, wait, lastErr); err != nil {
				return err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !transientError(err) {
				return err
			}
			lastErr, lastReply = err, nil
			continue
		}
		if !transientStatus(r.StatusCode) {
			*resp = r
			return nil
		}
		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		lastReply = r
	}

	*resp = lastReply
	return lastErr
}

// snapshotBody reads and closes the request body so it can be replayed.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, wait time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// delay returns how long to wait before the given retry (1 is the first
// retry). A Retry-After header on the previous reply wins over the computed
// backoff but never exceeds maxInterval.
func (p retryConfig) delay(attempt int, prev *http.Response) time.Duration {
	if prev != nil {
		if d, ok := retryAfter(prev.Header.Get("Retry-After")); ok {
			return min(d, p.maxInterval)
		}
	}

	base := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	base = min(base, float64(p.maxInterval))

	spread := base * jitterFraction
	d := base - spread + rand.Float64()*2*spread //nolint:gosec // jitter does not need a CSPRNG
	return time.Duration(max(d, 0))
}

// retryAfter parses the delta-seconds form of Retry-After. The HTTP-date form
// is ignored.
func retryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// transientError reports whether a transport error is worth another attempt.
// Caller cancellation and deadlines are final.
func transientError(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// transientStatus reports whether a response status is worth another
// attempt: 429 and 5xx other than 501.
func transientStatus(code int) bool {
	switch {
	case code == http.StatusTooManyRequests:
		return true
	case code == http.StatusNotImplemented:
		return false
	default:
		return code >= http.StatusInternalServerError
	}
}
