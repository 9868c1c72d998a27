package service

import (
	"context"
	"errors"
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

func TestRedisSubmissionRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisSubmissionRateLimiter
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("nil client returns nil limiter", func(t *testing.T) {
		if l := NewRedisSubmissionRateLimiter(nil, time.Minute, 3); l != nil {
			t.Fatalf("expected nil limiter without client")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{result: 1}, window: time.Minute, max: 3, prefix: "submit:rl:"}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisSubmissionRateLimiter{client: mock, window: 2 * time.Minute, max: 3, prefix: "submit:rl:"}
		if !l.Allow(" 10.0.0.1 ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "submit:rl:10.0.0.1" {
			t.Fatalf("unexpected key normalization, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected TTL seconds=120, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisSubmissionAllowScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{result: 4}, window: time.Minute, max: 3, prefix: "submit:rl:"}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{err: errors.New("redis down")}, window: time.Minute, max: 3, prefix: "submit:rl:"}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}

func TestRedisSubmissionRateLimiter_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	l := NewRedisSubmissionRateLimiter(client, 30*time.Second, 2)
	if !l.Allow("1.2.3.4") || !l.Allow("1.2.3.4") {
		t.Fatalf("expected first two submissions to pass")
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("expected third submission to be limited")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatalf("expected other clients to be unaffected")
	}
	if ttl := mr.TTL("submit:rl:1.2.3.4"); ttl != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %v", ttl)
	}

	mr.FastForward(31 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Fatalf("expected window to reset after expiry")
	}
}

func TestMemorySubmissionRateLimiter(t *testing.T) {
	l := NewMemorySubmissionRateLimiter(time.Minute, 2).(*memorySubmissionRateLimiter)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || !l.Allow("A ") {
		t.Fatalf("expected two allowed calls")
	}
	if l.Allow("a") {
		t.Fatalf("expected third call to be limited")
	}
	if l.Allow("") {
		t.Fatalf("expected empty key to be rejected")
	}

	now = now.Add(time.Minute)
	if !l.Allow("a") {
		t.Fatalf("expected reset after window")
	}
}
