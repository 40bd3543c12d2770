package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeStore struct {
	counters map[string]int64
	expires  map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{counters: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeStore) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusCmd(ctx)
}

func (f *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetErr(redis.Nil)
	return cmd
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.counters[key]++
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(f.counters[key])
	return cmd
}

func (f *fakeStore) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expires[key] = ttl
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntCmd(ctx)
}

func TestKeyBuilders(t *testing.T) {
	t.Parallel()

	c := &Client{}
	if got := c.PreviewKey("abc123"); got != "sb:preview:abc123" {
		t.Fatalf("preview key: got %q", got)
	}
	if got := c.AssetKey("abc123"); got != "sb:asset:abc123" {
		t.Fatalf("asset key: got %q", got)
	}
	if got := c.RateLimitKey("preview:1.2.3.4"); got != "sb:rate_limit:preview:1.2.3.4" {
		t.Fatalf("rate limit key: got %q", got)
	}
}

func TestFixedWindowAllow(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	c := &Client{store: store}
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		allowed, count, err := c.FixedWindowAllow(ctx, "preview:1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed || count != int64(i) {
			t.Fatalf("request %d: allowed=%v count=%d", i, allowed, count)
		}
	}

	allowed, count, err := c.FixedWindowAllow(ctx, "preview:1.2.3.4", 3, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed || count != 4 {
		t.Fatalf("expected 4th request denied, allowed=%v count=%d", allowed, count)
	}

	// Window TTL is set once, on the first increment.
	key := c.RateLimitKey("preview:1.2.3.4")
	if store.expires[key] != time.Minute {
		t.Fatalf("expected 1m window ttl, got %v", store.expires[key])
	}
}

func TestNilClientIsInert(t *testing.T) {
	t.Parallel()

	var c *Client
	ctx := context.Background()

	if err := c.Ping(ctx); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if _, err := c.Get(ctx, "k"); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close on uninitialized client must be a no-op: %v", err)
	}
}
