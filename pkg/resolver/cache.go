/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/cenkalti/backoff/v4"

	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("resolver")

// entry is the value the TTL cache holds: either a Ready result or a Failed marker.
// The spec's third state, InFlight(Waiters), is modeled by the inflight map below
// rather than by a cache entry, since gcache has no notion of a pending write.
type entry struct {
	keys []JWK
	err  error
}

type inflight struct {
	done chan struct{}
	res  entry
}

// CachingResolver wraps a Resolver with a read-mostly, bounded-TTL cache and
// at-most-one in-flight fetch per (identifier, kid) key, fanning the result out
// to every waiter, per spec §5/§9.
type CachingResolver struct {
	upstream   Resolver
	cache      gcache.Cache
	failureTTL time.Duration

	mu        sync.Mutex
	inFlights map[string]*inflight

	maxRetries uint64
}

// CachingResolverOpt configures a CachingResolver.
type CachingResolverOpt func(*CachingResolver)

// WithFailureTTL sets how long a failed resolution is cached before being retried.
// Defaults to 30s so a transient outage doesn't wedge every exchange that shares the key.
func WithFailureTTL(d time.Duration) CachingResolverOpt {
	return func(c *CachingResolver) { c.failureTTL = d }
}

// WithMaxRetries bounds the exponential backoff retries around each upstream fetch.
func WithMaxRetries(n uint64) CachingResolverOpt {
	return func(c *CachingResolver) { c.maxRetries = n }
}

// NewCachingResolver builds a CachingResolver over upstream, with cache entries expiring
// after ttl and holding up to size distinct (identifier, kid) keys.
func NewCachingResolver(upstream Resolver, size int, ttl time.Duration, opts ...CachingResolverOpt) *CachingResolver {
	c := &CachingResolver{
		upstream:   upstream,
		cache:      gcache.New(size).LRU().Expiration(ttl).Build(),
		failureTTL: 30 * time.Second,
		inFlights:  make(map[string]*inflight),
		maxRetries: 3,
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Resolve implements Resolver, sharing at most one in-flight upstream fetch per key.
func (c *CachingResolver) Resolve(ctx context.Context, identifier, kid string) ([]JWK, error) {
	key := cacheKey(identifier, kid)

	if v, err := c.cache.Get(key); err == nil {
		e := v.(entry) //nolint:forcetypeassert
		return e.keys, e.err
	}

	c.mu.Lock()

	if fl, ok := c.inFlights[key]; ok {
		c.mu.Unlock()

		select {
		case <-fl.done:
			return fl.res.keys, fl.res.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fl := &inflight{done: make(chan struct{})}
	c.inFlights[key] = fl
	c.mu.Unlock()

	keys, err := c.fetchWithRetry(ctx, identifier, kid)

	fl.res = entry{keys: keys, err: err}

	ttl := c.failureTTL
	if err == nil {
		ttl = 0 // use the cache's default Expiration set at construction
	}

	if err == nil {
		_ = c.cache.Set(key, entry{keys: keys})
	} else {
		_ = c.cache.SetWithExpire(key, entry{err: err}, ttl)
	}

	c.mu.Lock()
	delete(c.inFlights, key)
	c.mu.Unlock()

	close(fl.done)

	return keys, err
}

func (c *CachingResolver) fetchWithRetry(ctx context.Context, identifier, kid string) ([]JWK, error) {
	var (
		keys []JWK
		err  error
	)

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)

	err = backoff.Retry(func() error {
		keys, err = c.upstream.Resolve(ctx, identifier, kid)
		if err != nil {
			logger.Debugc(ctx, "key resolution failed, retrying", log.WithError(err))
		}

		return err
	}, backoff.WithContext(bo, ctx))

	if err != nil {
		return nil, fmt.Errorf("resolve %s#%s: %w", identifier, kid, err)
	}

	return keys, nil
}

func cacheKey(identifier, kid string) string {
	return identifier + "#" + kid
}
