package token_bucket

import (
	"sync"
	"time"
)

/*
token bucket на каждый ключ (адрес клиента): Allow(key) либо пропускает запрос, либо отклоняет.
Бакеты простаивающих клиентов удаляются по TTL, чтобы map не росла бесконечно.
*/

type Limiter interface {
	Allow(key string) bool
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Config struct {
	Capacity   int           // burst
	RefillRate float64       // токенов в секунду
	TTL        time.Duration // 0 - не чистим
}

type KeyedLimiter struct {
	cfg   Config
	clock Clock

	mu          sync.Mutex
	buckets     map[string]*TokenBucket
	lastCleanup time.Time
}

func NewKeyedLimiter(clock Clock, cfg Config) *KeyedLimiter {
	if clock == nil {
		clock = realClock{}
	}
	return &KeyedLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*TokenBucket),
	}
}

func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.cleanup(now)
	b, ok := l.buckets[key]
	if !ok {
		b = newTokenBucket(l.cfg.Capacity, l.cfg.RefillRate, now)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	return b.allow(now)
}

// Len число живых бакетов.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// cleanup вызывается под l.mu.
func (l *KeyedLimiter) cleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < l.cfg.TTL/2 {
		return
	}
	l.lastCleanup = now

	for key, b := range l.buckets {
		if now.Sub(b.seen()) > l.cfg.TTL {
			delete(l.buckets, key)
		}
	}
}

type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now,
	}
}

func (t *TokenBucket) allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

func (t *TokenBucket) seen() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRefill
}
