//go:build integration

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/cache"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func newCacheTestClient(t *testing.T) *cache.Cache {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	c, err := cache.New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
	})

	if err := testutil.FlushRedis(ctx, c.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return c
}

// countingResolver tracks store lookups so tests can tell a cache hit
// from a miss.
type countingResolver struct {
	users map[string]*model.User
	calls int
}

func (f *countingResolver) GetUserByID(_ context.Context, id string) (*model.User, error) {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func TestIntegrationAuth_IdentityCacheHit(t *testing.T) {
	cacheClient := newCacheTestClient(t)

	tokens := auth.NewTokenService([]byte("integration-secret"), time.Hour)
	resolver := &countingResolver{users: map[string]*model.User{
		"user-a": {ID: "user-a", Name: "Alice", Email: "a@x.com"},
	}}
	recorder := metrics.NewInMemory()

	cfg := AuthConfig{
		Logger:  discardLogger(),
		Tokens:  tokens,
		Users:   resolver,
		Cache:   cacheClient,
		Metrics: recorder,
	}

	token, err := tokens.Issue("user-a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	send := func() (*model.Identity, int) {
		var got *model.Identity
		handler := Auth(cfg)(identityEcho(&got))
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return got, rec.Code
	}

	// First request misses the cache and hits the store.
	got, code := send()
	if code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if got == nil || got.UserID != "user-a" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if resolver.calls != 1 {
		t.Fatalf("store lookups after first request = %d, want 1", resolver.calls)
	}

	// Second request is served from the cache.
	got, code = send()
	if code != http.StatusOK {
		t.Fatalf("second request status = %d, want 200", code)
	}
	if got == nil || got.UserID != "user-a" || got.Email != "a@x.com" {
		t.Errorf("cached identity differs: %+v", got)
	}
	if resolver.calls != 1 {
		t.Errorf("store lookups after second request = %d, want 1 (cache hit)", resolver.calls)
	}

	snap := recorder.Snapshot()
	if snap.AuthCacheMisses != 1 {
		t.Errorf("cache misses = %d, want 1", snap.AuthCacheMisses)
	}
	if snap.AuthCacheHits != 1 {
		t.Errorf("cache hits = %d, want 1", snap.AuthCacheHits)
	}
}

// TestIntegrationAuth_DeletedUserCacheWindow pins the documented
// trade-off: a deleted account keeps authenticating through the cache
// until its entry expires or is evicted, and is rejected right after.
func TestIntegrationAuth_DeletedUserCacheWindow(t *testing.T) {
	cacheClient := newCacheTestClient(t)

	tokens := auth.NewTokenService([]byte("integration-secret"), time.Hour)
	resolver := &countingResolver{users: map[string]*model.User{
		"user-b": {ID: "user-b", Name: "Bob", Email: "b@x.com"},
	}}

	cfg := AuthConfig{
		Logger: discardLogger(),
		Tokens: tokens,
		Users:  resolver,
		Cache:  cacheClient,
	}

	token, err := tokens.Issue("user-b")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	send := func() int {
		handler := Auth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("initial request status = %d, want 200", code)
	}

	// Delete the account. The cached identity still answers.
	delete(resolver.users, "user-b")

	if code := send(); code != http.StatusOK {
		t.Fatalf("request within cache window status = %d, want 200", code)
	}

	// Once the entry is gone the store is consulted again and rejects.
	ctx := context.Background()
	if err := cacheClient.DeleteIdentity(ctx, auth.QuickHash(token)); err != nil {
		t.Fatalf("DeleteIdentity error: %v", err)
	}

	if code := send(); code != http.StatusUnauthorized {
		t.Errorf("request after eviction status = %d, want 401", code)
	}
}
