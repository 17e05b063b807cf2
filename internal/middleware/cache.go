package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/city-issue-tracker/internal/config"
)

// captureWriter captures the response body while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
	over   bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.over {
		if cw.limit > 0 && cw.buf.Len()+len(b) > cw.limit {
			// Over the cap: give up on caching this response entirely
			// rather than store a truncated body.
			cw.buf.Reset()
			cw.over = true
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

// ListingCache caches successful GET listing responses in Redis and
// drops every cached entry when a mutation changes the underlying
// collection. With no Redis client or caching disabled it degrades to
// a pass-through and Invalidate becomes a no-op.
type ListingCache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

func NewListingCache(cfg config.CacheConfig, rdb *redis.Client) *ListingCache {
	return &ListingCache{cfg: cfg, rdb: rdb}
}

func (lc *ListingCache) enabled() bool {
	return lc != nil && lc.cfg.Enabled && lc.rdb != nil
}

// cacheKey hashes route, query and the authenticated user so each
// account sees its own listing snapshot. The admin's unfiltered view
// and a user's personal view never share an entry.
func (lc *ListingCache) cacheKey(c echo.Context) string {
	email, _ := c.Get("user_email").(string)
	tail := c.Path() + "?" + c.Request().URL.RawQuery + "@" + email
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", lc.cfg.Prefix, sum[:])
}

// Middleware returns the caching handler wrapper. Listings are
// recomputed from the store on every miss; the cache only bounds how
// often, and mutations clear it via Invalidate.
func (lc *ListingCache) Middleware() echo.MiddlewareFunc {
	if !lc.enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := lc.cacheKey(c)

			if body, err := lc.rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: lc.cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && !cw.over && cw.buf.Len() > 0 {
				_ = lc.rdb.SetEx(context.Background(), key, cw.buf.Bytes(), lc.cfg.TTL).Err()
			}
			return nil
		}
	}
}

// Invalidate removes every cached listing under the configured
// prefix. Called after any mutation of the complaint collection so a
// status change or new submission is visible to the next read
// immediately instead of after the TTL.
func (lc *ListingCache) Invalidate(ctx context.Context) {
	if !lc.enabled() {
		return
	}
	iter := lc.rdb.Scan(ctx, 0, lc.cfg.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		_ = lc.rdb.Del(ctx, iter.Val()).Err()
	}
}
