package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionRateLimiter limita cuántas parejas o lados puede enviar un cliente
// por ventana de tiempo.
type SubmissionRateLimiter interface {
	Allow(key string) bool
}

var ErrRateLimited = errors.New("rate limited")

const redisSubmissionAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisSubmissionRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisSubmissionRateLimiter(client redisEvaler, window time.Duration, max int) SubmissionRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisSubmissionRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "submit:rl:",
	}
}

func (l *redisSubmissionRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisSubmissionAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		// Si Redis falla no bloqueamos envíos.
		return true
	}
	return count <= l.max
}

// memorySubmissionRateLimiter es la ventana fija en memoria para un solo proceso.
type memorySubmissionRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	items  map[string]rateWindow
	now    func() time.Time
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

func NewMemorySubmissionRateLimiter(window time.Duration, max int) SubmissionRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &memorySubmissionRateLimiter{
		window: window,
		max:    max,
		items:  make(map[string]rateWindow),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *memorySubmissionRateLimiter) Allow(key string) bool {
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.items[normalizedKey]
	if !ok || !now.Before(w.resetAt) {
		w = rateWindow{resetAt: now.Add(l.window)}
	}
	w.count++
	l.items[normalizedKey] = w

	// Limpieza perezosa de ventanas vencidas.
	if len(l.items) > 1024 {
		for k, v := range l.items {
			if !now.Before(v.resetAt) {
				delete(l.items, k)
			}
		}
	}
	return w.count <= l.max
}
