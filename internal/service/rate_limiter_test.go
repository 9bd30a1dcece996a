package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestMemoryRateLimiter(t *testing.T) {
	l := NewMemoryRateLimiter(time.Minute, 2)

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatalf("expected first two requests allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("expected third request denied")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("expected other keys to have their own budget")
	}
	if l.Allow("  ") {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestMemoryRateLimiterDropsIdleKeys(t *testing.T) {
	l := NewMemoryRateLimiter(10*time.Millisecond, 1).(*memoryRateLimiter)
	for i := 0; i < 100; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	if len(l.hits) != 100 {
		t.Fatalf("expected 100 tracked keys, got %d", len(l.hits))
	}

	time.Sleep(20 * time.Millisecond)
	if !l.Allow("10.0.1.1") {
		t.Fatalf("expected new key allowed")
	}
	if len(l.hits) != 1 {
		t.Fatalf("expected idle keys dropped, got %d", len(l.hits))
	}
}

func TestRedisRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisRateLimiter
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisRateLimiter{client: &mockRedisEvaler{result: 1}, window: time.Minute, max: 3, prefix: "analyze:rl:"}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisRateLimiter{client: mock, window: 2 * time.Minute, max: 3, prefix: "analyze:rl:"}
		if !l.Allow(" Client-A ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "analyze:rl:client-a" {
			t.Fatalf("unexpected key normalization, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected TTL seconds=120, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisRateLimitScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisRateLimiter{client: &mockRedisEvaler{result: 4}, window: time.Minute, max: 3, prefix: "analyze:rl:"}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisRateLimiter{client: &mockRedisEvaler{err: errors.New("redis down")}, window: time.Minute, max: 3, prefix: "analyze:rl:"}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})

	t.Run("miniredis counts per window", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		l := NewRedisRateLimiter(client, time.Minute, 2)
		if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
			t.Fatalf("expected first two requests allowed")
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected third request denied")
		}
		if ttl := mr.TTL("analyze:rl:10.0.0.1"); ttl != time.Minute {
			t.Fatalf("expected window TTL of 1m, got %v", ttl)
		}

		mr.FastForward(time.Minute + time.Second)
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected allow after window expires")
		}
	})

	t.Run("nil client returns nil limiter", func(t *testing.T) {
		if NewRedisRateLimiter(nil, time.Minute, 1) != nil {
			t.Fatalf("expected nil limiter for nil client")
		}
	})
}
