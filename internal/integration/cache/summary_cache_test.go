package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisSummaryCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSummaryCache(client), server
}

func TestRedisSummaryCacheGetSet(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	if _, found, err := c.Get(ctx, "2025/2026:all"); err != nil || found {
		t.Fatalf("empty cache: found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "2025/2026:all", []byte(`{"grand_total":"100"}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	payload, found, err := c.Get(ctx, "2025/2026:all")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if string(payload) != `{"grand_total":"100"}` {
		t.Errorf("payload = %s", payload)
	}

	server.FastForward(2 * time.Minute)
	if _, found, _ := c.Get(ctx, "2025/2026:all"); found {
		t.Error("entry should expire after its ttl")
	}
}

func TestRedisSummaryCacheInvalidateFiscalYear(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{"2025/2026:all", "2025/2026:Received", "2025/2026:Pending,Received", "2024/2025:all"} {
		if err := c.Set(ctx, key, []byte("x"), time.Hour); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	if err := c.InvalidateFiscalYear(ctx, "2025/2026"); err != nil {
		t.Fatalf("InvalidateFiscalYear: %v", err)
	}

	for _, key := range []string{"2025/2026:all", "2025/2026:Received", "2025/2026:Pending,Received"} {
		if _, found, _ := c.Get(ctx, key); found {
			t.Errorf("%s should be invalidated", key)
		}
	}
	if _, found, _ := c.Get(ctx, "2024/2025:all"); !found {
		t.Error("other fiscal years must stay cached")
	}
}

func TestRedisSummaryCachePing(t *testing.T) {
	c, server := newTestCache(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	server.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail once redis is down")
	}
}

func TestNoopSummaryCache(t *testing.T) {
	var c NoopSummaryCache
	ctx := context.Background()
	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, found, err := c.Get(ctx, "k"); found || err != nil {
		t.Errorf("noop cache returned found=%v err=%v", found, err)
	}
}
