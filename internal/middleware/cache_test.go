package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/city-issue-tracker/internal/config"
)

func newCacheUnderTest(t *testing.T) *ListingCache {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewListingCache(config.CacheConfig{
		Enabled:      true,
		TTL:          time.Minute,
		Prefix:       "listing",
		MaxBodyBytes: 1 << 20,
	}, rdb)
}

// runListing sends one GET through the cache middleware on behalf of
// the given user and reports the recorder plus whether the wrapped
// handler actually ran.
func runListing(t *testing.T, lc *ListingCache, email string, hits *int) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/complaints", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/complaints")
	c.Set("user_email", email)

	h := lc.Middleware()(func(c echo.Context) error {
		*hits++
		return c.JSON(http.StatusOK, echo.Map{"serving": *hits})
	})
	require.NoError(t, h(c))
	return rec
}

// TestListingCacheServesSecondRead checks that a repeated read for the
// same user is answered from the cache without rerunning the handler.
func TestListingCacheServesSecondRead(t *testing.T) {
	lc := newCacheUnderTest(t)
	hits := 0

	first := runListing(t, lc, "anna@example.com", &hits)
	second := runListing(t, lc, "anna@example.com", &hits)

	assert.Equal(t, 1, hits)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

// TestInvalidateDropsCachedListings checks that a mutation between two
// reads makes the second read recompute instead of serving the stale
// snapshot.
func TestInvalidateDropsCachedListings(t *testing.T) {
	lc := newCacheUnderTest(t)
	hits := 0

	runListing(t, lc, "anna@example.com", &hits)
	lc.Invalidate(context.Background())
	after := runListing(t, lc, "anna@example.com", &hits)

	assert.Equal(t, 2, hits)
	assert.Equal(t, "MISS", after.Header().Get("X-Cache"))
	assert.Contains(t, after.Body.String(), `"serving":2`)
}

// TestListingCacheIsPerUser checks that two users never share a cache
// entry for the same route.
func TestListingCacheIsPerUser(t *testing.T) {
	lc := newCacheUnderTest(t)
	hits := 0

	runListing(t, lc, "anna@example.com", &hits)
	other := runListing(t, lc, "bob@example.com", &hits)

	assert.Equal(t, 2, hits)
	assert.Equal(t, "MISS", other.Header().Get("X-Cache"))
}

// TestListingCacheDisabledPassesThrough checks the degraded mode with
// no Redis client: every read runs the handler and Invalidate is a
// harmless no-op.
func TestListingCacheDisabledPassesThrough(t *testing.T) {
	lc := NewListingCache(config.CacheConfig{Enabled: true}, nil)
	hits := 0

	runListing(t, lc, "anna@example.com", &hits)
	lc.Invalidate(context.Background())
	runListing(t, lc, "anna@example.com", &hits)

	assert.Equal(t, 2, hits)
}
