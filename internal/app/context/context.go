// Package appctx provides request-scoped memoization for application
// services.
//
// A RequestContext is created per HTTP request by middleware and stored in
// the request's context.Context. Services then memoize lookups that several
// steps of one request need, such as the caller's board membership:
//
//	m, err := appctx.GetOrFetch(ctx, "membership:4:17", fetchMembership)
//
// Nothing is shared between requests, so a role change is always seen by
// the next request.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext holds the memoized values of one request. It is safe for
// concurrent use so fan-out work within a request can share it.
type RequestContext struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same request.
type cacheEntry struct {
	value any
	err   error
}

type requestContextKey struct{}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{cache: make(map[string]cacheEntry)}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext carried by ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the value cached under key in the RequestContext
// carried by ctx, or calls fetchFn and caches its result. Without a
// RequestContext it simply calls fetchFn.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use DataProvider for type-safe, reusable fetch bindings that prevent this.
func GetOrFetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return fetchFn(ctx)
	}

	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()

	return val, err
}

// Invalidate drops every cached entry whose key starts with prefix. Services
// call it after a write that changes a memoized value.
func Invalidate(ctx context.Context, prefix string) {
	rc := FromContext(ctx)
	if rc == nil {
		return
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	for key := range rc.cache {
		if strings.HasPrefix(key, prefix) {
			delete(rc.cache, key)
		}
	}
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together, allowing callers
// to retrieve data without specifying the key and function each time.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it using the provider's fetch
// function.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	return GetOrFetch(ctx, p.key, p.fetchFn)
}
