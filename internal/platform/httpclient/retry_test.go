package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func testRetryConfig() retryConfig {
	return retryConfig{
		maxAttempts:     3,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     2 * time.Second,
		multiplier:      2,
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt int
		header  string
		wantMin time.Duration
		wantMax time.Duration
	}{
		{name: "first retry", attempt: 1, wantMin: 75 * time.Millisecond, wantMax: 125 * time.Millisecond},
		{name: "third retry doubles twice", attempt: 3, wantMin: 300 * time.Millisecond, wantMax: 500 * time.Millisecond},
		{name: "capped", attempt: 12, wantMin: 1500 * time.Millisecond, wantMax: 2500 * time.Millisecond},
		{name: "retry-after seconds", attempt: 1, header: "1", wantMin: time.Second, wantMax: time.Second},
		{name: "retry-after capped", attempt: 1, header: "60", wantMin: 2 * time.Second, wantMax: 2 * time.Second},
		{name: "retry-after http-date ignored", attempt: 1, header: "Wed, 21 Oct 2026 07:28:00 GMT", wantMin: 75 * time.Millisecond, wantMax: 125 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var prev *http.Response
			if tt.header != "" {
				prev = &http.Response{Header: http.Header{"Retry-After": []string{tt.header}}}
			}

			for range 200 {
				got := testRetryConfig().delay(tt.attempt, prev)
				if got < tt.wantMin || got > tt.wantMax {
					t.Fatalf("delay(%d) = %v, want in [%v, %v]", tt.attempt, got, tt.wantMin, tt.wantMax)
				}
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   time.Duration
		wantOK bool
	}{
		{in: "", wantOK: false},
		{in: "0", want: 0, wantOK: true},
		{in: "5", want: 5 * time.Second, wantOK: true},
		{in: "-1", wantOK: false},
		{in: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()

			got, ok := retryAfter(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("retryAfter(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTransientError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
		{name: "dial refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("eof"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := transientError(tt.err); got != tt.want {
				t.Errorf("transientError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestTransientStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want bool
	}{
		{code: http.StatusOK, want: false},
		{code: http.StatusUnauthorized, want: false},
		{code: http.StatusForbidden, want: false},
		{code: http.StatusNotFound, want: false},
		{code: http.StatusTooManyRequests, want: true},
		{code: http.StatusInternalServerError, want: true},
		{code: http.StatusNotImplemented, want: false},
		{code: http.StatusBadGateway, want: true},
		{code: http.StatusServiceUnavailable, want: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			t.Parallel()
			if got := transientStatus(tt.code); got != tt.want {
				t.Errorf("transientStatus(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
